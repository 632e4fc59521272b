package usecase

import (
	"context"

	"github.com/google/uuid"

	"travel-backoffice/internal/booking/repository"
	"travel-backoffice/internal/invoice"
	"travel-backoffice/internal/payment"
	"travel-backoffice/pkg/gcalendar"
	"travel-backoffice/pkg/log"
)

// Calendar mirrors stays into an external calendar. *gcalendar.Client satisfies it.
type Calendar interface {
	UpsertStay(ctx context.Context, stay gcalendar.StayEvent) (*gcalendar.Event, error)
}

// implUseCase is the private implementation of booking.UseCase.
type implUseCase struct {
	repo      repository.Repository
	invoiceUC invoice.UseCase
	paymentUC payment.UseCase
	calendar  Calendar
	l         log.Logger
	newID     func() string
}

// New creates a new booking UseCase implementation. calendar may be nil.
func New(
	repo repository.Repository,
	invoiceUC invoice.UseCase,
	paymentUC payment.UseCase,
	calendar Calendar,
	l log.Logger,
) *implUseCase {
	return &implUseCase{
		repo:      repo,
		invoiceUC: invoiceUC,
		paymentUC: paymentUC,
		calendar:  calendar,
		l:         l,
		newID:     uuid.NewString,
	}
}
