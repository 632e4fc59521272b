package booking

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, id string) (DetailOutput, error)
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	Upsert(ctx context.Context, input UpsertInput) (UpsertOutput, error)
	// ListComplete returns every booking whose completion status is complete.
	ListComplete(ctx context.Context) ([]Booking, error)
}
