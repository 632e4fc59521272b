package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	assistantHTTP "travel-backoffice/internal/assistant/delivery/http"
	assistantUC "travel-backoffice/internal/assistant/usecase"
	bookingHTTP "travel-backoffice/internal/booking/delivery/http"
	bookingRepo "travel-backoffice/internal/booking/repository/sqlite"
	bookingUC "travel-backoffice/internal/booking/usecase"
	dashboardHTTP "travel-backoffice/internal/dashboard/delivery/http"
	dashboardUC "travel-backoffice/internal/dashboard/usecase"
	invoiceHTTP "travel-backoffice/internal/invoice/delivery/http"
	invoiceRepo "travel-backoffice/internal/invoice/repository/sqlite"
	invoiceUC "travel-backoffice/internal/invoice/usecase"
	"travel-backoffice/internal/middleware"
	operatorHTTP "travel-backoffice/internal/operator/delivery/http"
	operatorRepo "travel-backoffice/internal/operator/repository/sqlite"
	operatorUC "travel-backoffice/internal/operator/usecase"
	paymentHTTP "travel-backoffice/internal/payment/delivery/http"
	paymentRepo "travel-backoffice/internal/payment/repository/sqlite"
	paymentUC "travel-backoffice/internal/payment/usecase"
	"travel-backoffice/pkg/chatbackend"
)

// setupOperatorDomain registers /auth.
func (srv HTTPServer) setupOperatorDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := operatorRepo.New(srv.db, srv.l)
	uc := operatorUC.New(repo, srv.jwtManager, srv.l)
	h := operatorHTTP.New(srv.l, uc)
	operatorHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Operator domain registered")
}

// setupBackofficeDomains registers /payments, /invoices, /bookings and /dashboard.
// Use cases are built bottom-up: booking reads invoices and payments, the dashboard reads all three.
func (srv HTTPServer) setupBackofficeDomains(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	// Repositories
	paymentR := paymentRepo.New(srv.db, srv.l)
	invoiceR := invoiceRepo.New(srv.db, srv.l)
	bookingR := bookingRepo.New(srv.db, srv.l)

	// UseCases
	paymentU := paymentUC.New(paymentR, srv.l)
	invoiceU := invoiceUC.New(invoiceR, paymentU, srv.l)
	bookingU := bookingUC.New(bookingR, invoiceU, paymentU, srv.calendar, srv.l)
	dashboardU := dashboardUC.New(bookingU, invoiceR, paymentR, srv.dashboardCacheTTL, srv.l)

	// Routes
	paymentHTTP.RegisterRoutes(api, paymentHTTP.New(srv.l, paymentU), mw)
	invoiceHTTP.RegisterRoutes(api, invoiceHTTP.New(srv.l, invoiceU), mw)
	bookingHTTP.RegisterRoutes(api, bookingHTTP.New(srv.l, bookingU), mw)
	dashboardHTTP.RegisterRoutes(api, dashboardHTTP.New(srv.l, dashboardU), mw)

	srv.l.Infof(ctx, "Booking, invoice, payment and dashboard domains registered")
}

// setupAssistantDomain registers /assistant/sessions.
func (srv HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	backend := srv.chatBackend
	if backend == nil {
		srv.l.Warnf(ctx, "Chat backend not configured, assistant messages will fail")
		backend = unconfiguredBackend{}
	}

	uc := assistantUC.New(backend, srv.hub, srv.sessionTTL, srv.maxSessions, srv.l)
	h := assistantHTTP.New(srv.l, uc, srv.hub)
	assistantHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Assistant domain registered")
}

// unconfiguredBackend answers every call with chatbackend.ErrUnavailable.
type unconfiguredBackend struct{}

func (unconfiguredBackend) Send(context.Context, chatbackend.SendRequest) (chatbackend.Reply, error) {
	return chatbackend.Reply{}, chatbackend.ErrUnavailable
}

func (unconfiguredBackend) Poll(context.Context, string) (chatbackend.Reply, error) {
	return chatbackend.Reply{}, chatbackend.ErrUnavailable
}
