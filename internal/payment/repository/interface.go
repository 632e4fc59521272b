package repository

import (
	"context"

	"travel-backoffice/internal/payment"
)

// Repository is the composed interface for the payment data store.
type Repository interface {
	PaymentRepository
}

// PaymentRepository defines all data access methods for the Payment entity.
type PaymentRepository interface {
	UpsertPayment(ctx context.Context, opt UpsertPaymentOptions) (payment.Payment, error)
	GetOnePayment(ctx context.Context, opt GetOnePaymentOptions) (payment.Payment, error)
	ListPayments(ctx context.Context, opt ListPaymentsOptions) ([]payment.Payment, int, error)
	CountPayments(ctx context.Context, opt CountPaymentsOptions) (int, error)
}
