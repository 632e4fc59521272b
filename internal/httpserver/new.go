package httpserver

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	assistantHTTP "travel-backoffice/internal/assistant/delivery/http"
	assistantUC "travel-backoffice/internal/assistant/usecase"
	bookingUC "travel-backoffice/internal/booking/usecase"
	"travel-backoffice/pkg/log"
	"travel-backoffice/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Infrastructure
	db         *sql.DB
	jwtManager scope.Manager

	// Integrations
	chatBackend assistantUC.Backend
	calendar    bookingUC.Calendar

	// Assistant
	hub                 *assistantHTTP.Hub
	sessionTTL          time.Duration
	maxSessions         int
	submitsPerMin       int
	dashboardCacheTTL   time.Duration
	shutdownGracePeriod time.Duration
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	DB         *sql.DB
	JWTManager scope.Manager

	// ChatBackend is optional. Without it the assistant routes answer 502.
	ChatBackend assistantUC.Backend
	// Calendar is optional. Without it stays are not mirrored.
	Calendar bookingUC.Calendar

	SessionTTL        time.Duration
	MaxSessions       int
	SubmitsPerMin     int
	DashboardCacheTTL time.Duration
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                   logger,
		gin:                 gin.New(),
		port:                cfg.Port,
		mode:                cfg.Mode,
		environment:         cfg.Environment,
		db:                  cfg.DB,
		jwtManager:          cfg.JWTManager,
		chatBackend:         cfg.ChatBackend,
		calendar:            cfg.Calendar,
		hub:                 assistantHTTP.NewHub(logger),
		sessionTTL:          cfg.SessionTTL,
		maxSessions:         cfg.MaxSessions,
		submitsPerMin:       cfg.SubmitsPerMin,
		dashboardCacheTTL:   cfg.DashboardCacheTTL,
		shutdownGracePeriod: 30 * time.Second,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() http.Handler {
	return srv.gin
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("db is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.maxSessions <= 0 {
		return errors.New("max sessions must be positive")
	}
	return nil
}
