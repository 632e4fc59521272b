package repository

import "time"

// UpsertInvoiceOptions holds the values written for an invoice keyed by Number.
type UpsertInvoiceOptions struct {
	ID               string
	Number           string
	BookingReference string
	Amount           string
	Currency         string
	Status           string
	IssuedAt         time.Time
	DueAt            *time.Time
}

// GetOneInvoiceOptions holds filter parameters for fetching a single Invoice.
// All non-empty fields are applied as AND conditions.
type GetOneInvoiceOptions struct {
	ID     string
	Number string
}

// ListInvoicesOptions holds filter and pagination parameters for listing Invoices.
type ListInvoicesOptions struct {
	BookingID string
	Status    string
	Limit     int
	Offset    int
}

// CountInvoicesOptions restricts the count to invoices issued in [IssuedFrom, IssuedTo).
// Zero times leave that side open.
type CountInvoicesOptions struct {
	Status     string
	IssuedFrom time.Time
	IssuedTo   time.Time
}
