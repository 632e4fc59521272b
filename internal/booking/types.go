package booking

import (
	"time"

	"travel-backoffice/internal/invoice"
	"travel-backoffice/internal/payment"
	"travel-backoffice/pkg/stay"
)

// --- Booking Domain Model ---

// Booking is a hotel reservation. Dates and total are kept exactly as received.
type Booking struct {
	ID               string
	Reference        string
	CustomerName     string
	CustomerEmail    string
	Hotel            string
	CheckIn          string
	CheckOut         string
	Total            string
	Currency         string
	CompletionStatus string
	CalendarEventID  string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Stay returns the fields the stay aggregations read.
func (b Booking) Stay() stay.Booking {
	return stay.Booking{
		CheckIn:          b.CheckIn,
		CheckOut:         b.CheckOut,
		Hotel:            b.Hotel,
		Total:            b.Total,
		CompletionStatus: b.CompletionStatus,
	}
}

// --- UseCase Inputs ---

// ListInput filters bookings. Month and Year together select bookings checking in that month.
type ListInput struct {
	Status string
	Hotel  string
	Month  int
	Year   int
	Limit  int
	Offset int
}

type CreateInput struct {
	Reference        string
	CustomerName     string
	CustomerEmail    string
	Hotel            string
	CheckIn          string
	CheckOut         string
	Total            string
	Currency         string
	CompletionStatus string
}

// UpsertInput carries a booking from the reservations system, keyed by Reference.
type UpsertInput struct {
	Reference        string
	CustomerName     string
	CustomerEmail    string
	Hotel            string
	CheckIn          string
	CheckOut         string
	Total            string
	Currency         string
	CompletionStatus string
}

// --- UseCase Outputs ---

type ListOutput struct {
	Bookings []Booking
	Total    int
	Limit    int
	Offset   int
}

type DetailOutput struct {
	Booking  Booking
	Invoices []invoice.Invoice
	Payments []payment.Payment
}

type CreateOutput struct {
	Booking Booking
}

type UpsertOutput struct {
	Booking Booking
}
