package operator

import (
	"context"

	"travel-backoffice/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Register creates the first operator. Later calls return ErrRegistrationClosed.
	Register(ctx context.Context, input RegisterInput) (RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
	Me(ctx context.Context, sc model.Scope) (Operator, error)
}
