package assistant

import (
	"context"

	"travel-backoffice/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Start(ctx context.Context, sc model.Scope) (StartOutput, error)
	Session(ctx context.Context, sc model.Scope, id string) (Session, error)
	// Submit returns ErrBusy together with the session state, whose Draft holds the rejected text.
	Submit(ctx context.Context, sc model.Scope, in SubmitInput) (Session, error)
	Refresh(ctx context.Context, sc model.Scope, id string) (Session, error)
	Clear(ctx context.Context, sc model.Scope, id string) (Session, error)
}

// Notifier receives every state change of a session.
type Notifier interface {
	Publish(state Session)
}
