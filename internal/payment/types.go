package payment

import "time"

// --- Payment Domain Model ---

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusRefunded  = "refunded"
)

// Payment is money received against a booking, optionally settling an invoice.
type Payment struct {
	ID         string
	ExternalID string
	BookingID  string
	InvoiceID  string
	Amount     string
	Currency   string
	Method     string
	Status     string
	PaidAt     *time.Time
	CreatedAt  time.Time

	// Invoice is set on detail reads when the payment settles an invoice.
	Invoice *LinkedInvoice
}

// LinkedInvoice is the invoice summary shown next to a payment.
type LinkedInvoice struct {
	ID       string
	Number   string
	Amount   string
	Currency string
	Status   string
}

// --- UseCase Inputs ---

type ListInput struct {
	BookingID string
	InvoiceID string
	Status    string
	Limit     int
	Offset    int
}

type UpsertInput struct {
	ExternalID       string
	BookingReference string
	InvoiceNumber    string
	Amount           string
	Currency         string
	Method           string
	Status           string
	PaidAt           *time.Time
}

// --- UseCase Outputs ---

type ListOutput struct {
	Payments []Payment
	Total    int
	Limit    int
	Offset   int
}

type DetailOutput struct {
	Payment Payment
}

type UpsertOutput struct {
	Payment Payment
}
