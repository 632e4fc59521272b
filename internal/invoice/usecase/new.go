package usecase

import (
	"github.com/google/uuid"

	"travel-backoffice/internal/invoice/repository"
	"travel-backoffice/internal/payment"
	"travel-backoffice/pkg/log"
)

// implUseCase is the private implementation of invoice.UseCase.
type implUseCase struct {
	repo      repository.Repository
	paymentUC payment.UseCase
	l         log.Logger
	newID     func() string
}

// New creates a new invoice UseCase implementation.
func New(repo repository.Repository, paymentUC payment.UseCase, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:      repo,
		paymentUC: paymentUC,
		l:         l,
		newID:     uuid.NewString,
	}
}
