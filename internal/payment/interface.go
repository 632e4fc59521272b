package payment

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, id string) (DetailOutput, error)
	Upsert(ctx context.Context, input UpsertInput) (UpsertOutput, error)
}
