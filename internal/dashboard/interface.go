package dashboard

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Summary(ctx context.Context, input SummaryInput) (SummaryOutput, error)
	Revenue(ctx context.Context, input RevenueInput) (RevenueOutput, error)
}
