package repository

import "time"

// UpsertPaymentOptions holds the values written for a payment keyed by ExternalID.
// BookingReference and InvoiceNumber are resolved to ids inside the statement.
type UpsertPaymentOptions struct {
	ID               string
	ExternalID       string
	BookingReference string
	InvoiceNumber    string
	Amount           string
	Currency         string
	Method           string
	Status           string
	PaidAt           *time.Time
}

// GetOnePaymentOptions holds filter parameters for fetching a single Payment.
// All non-empty fields are applied as AND conditions.
type GetOnePaymentOptions struct {
	ID         string
	ExternalID string
}

// ListPaymentsOptions holds filter and pagination parameters for listing Payments.
type ListPaymentsOptions struct {
	BookingID string
	InvoiceID string
	Status    string
	Limit     int
	Offset    int
}

// CountPaymentsOptions restricts the count to payments paid in [PaidFrom, PaidTo).
// Payments without a paid_at are excluded once either bound is set.
type CountPaymentsOptions struct {
	Status   string
	PaidFrom time.Time
	PaidTo   time.Time
}
