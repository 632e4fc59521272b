package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"travel-backoffice/internal/booking"
	"travel-backoffice/internal/dashboard"
	invoicerepo "travel-backoffice/internal/invoice/repository"
	paymentrepo "travel-backoffice/internal/payment/repository"
	"travel-backoffice/pkg/log"
)

const cacheSize = 256

// implUseCase is the private implementation of dashboard.UseCase.
type implUseCase struct {
	bookingUC   booking.UseCase
	invoiceRepo invoicerepo.Repository
	paymentRepo paymentrepo.Repository
	summaries   *expirable.LRU[string, dashboard.SummaryOutput]
	revenues    *expirable.LRU[int, dashboard.RevenueOutput]
	l           log.Logger
}

// New creates a new dashboard UseCase. Results are cached for cacheTTL; zero disables caching.
func New(
	bookingUC booking.UseCase,
	invoiceRepo invoicerepo.Repository,
	paymentRepo paymentrepo.Repository,
	cacheTTL time.Duration,
	l log.Logger,
) *implUseCase {
	uc := &implUseCase{
		bookingUC:   bookingUC,
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
		l:           l,
	}
	if cacheTTL > 0 {
		uc.summaries = expirable.NewLRU[string, dashboard.SummaryOutput](cacheSize, nil, cacheTTL)
		uc.revenues = expirable.NewLRU[int, dashboard.RevenueOutput](cacheSize, nil, cacheTTL)
	}
	return uc
}
