package repository

import (
	"context"

	"travel-backoffice/internal/operator"
)

// Repository is the composed interface for the operator data store.
type Repository interface {
	OperatorRepository
}

// OperatorRepository defines all data access methods for the Operator entity.
type OperatorRepository interface {
	// CreateFirstOperator inserts opt only while the table is empty, else ErrNotFirst.
	CreateFirstOperator(ctx context.Context, opt CreateOperatorOptions) (operator.Operator, error)
	GetOneOperator(ctx context.Context, opt GetOneOperatorOptions) (operator.Operator, error)
}
