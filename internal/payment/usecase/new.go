package usecase

import (
	"github.com/google/uuid"

	"travel-backoffice/internal/payment/repository"
	"travel-backoffice/pkg/log"
)

// implUseCase is the private implementation of payment.UseCase.
type implUseCase struct {
	repo  repository.Repository
	l     log.Logger
	newID func() string
}

// New creates a new payment UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:  repo,
		l:     l,
		newID: uuid.NewString,
	}
}
