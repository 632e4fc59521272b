package usecase

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"travel-backoffice/internal/operator/repository"
	"travel-backoffice/pkg/log"
	"travel-backoffice/pkg/scope"
)

// implUseCase is the private implementation of operator.UseCase.
type implUseCase struct {
	repo       repository.Repository
	jwtManager scope.Manager
	l          log.Logger
	newID      func() string
	hashCost   int
}

// New creates a new operator UseCase implementation.
func New(repo repository.Repository, jwtManager scope.Manager, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:       repo,
		jwtManager: jwtManager,
		l:          l,
		newID:      uuid.NewString,
		hashCost:   bcrypt.DefaultCost,
	}
}
