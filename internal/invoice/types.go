package invoice

import (
	"time"

	"travel-backoffice/internal/payment"
)

// --- Invoice Domain Model ---

const (
	StatusUnpaid = "unpaid"
	StatusPaid   = "paid"
	StatusVoid   = "void"
)

// Invoice is a bill raised against a booking.
type Invoice struct {
	ID               string
	BookingID        string
	BookingReference string
	Number           string
	Amount           string
	Currency         string
	Status           string
	IssuedAt         time.Time
	DueAt            *time.Time
	CreatedAt        time.Time
}

// --- UseCase Inputs ---

type ListInput struct {
	BookingID string
	Status    string
	Limit     int
	Offset    int
}

type UpsertInput struct {
	Number           string
	BookingReference string
	Amount           string
	Currency         string
	Status           string
	IssuedAt         time.Time
	DueAt            *time.Time
}

// --- UseCase Outputs ---

type ListOutput struct {
	Invoices []Invoice
	Total    int
	Limit    int
	Offset   int
}

type DetailOutput struct {
	Invoice  Invoice
	Payments []payment.Payment
}

type UpsertOutput struct {
	Invoice Invoice
}
