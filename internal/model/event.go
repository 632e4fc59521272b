package model

import (
	"encoding/json"
	"errors"
	"time"
)

// EventType is the kind of change announced by the reservations system.
type EventType string

const (
	EventBookingUpserted EventType = "booking.upserted"
	EventInvoiceUpserted EventType = "invoice.upserted"
	EventPaymentUpserted EventType = "payment.upserted"
)

var ErrEventPayloadMissing = errors.New("event payload does not match its type")

// Event is the envelope published by the reservations system for each record change.
// Exactly one payload is set, matching Type.
type Event struct {
	Type       EventType       `json:"type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Booking    *BookingPayload `json:"booking,omitempty"`
	Invoice    *InvoicePayload `json:"invoice,omitempty"`
	Payment    *PaymentPayload `json:"payment,omitempty"`
}

// BookingPayload carries a booking as the reservations system knows it.
// Dates and totals are forwarded verbatim.
type BookingPayload struct {
	Reference        string `json:"reference"`
	CustomerName     string `json:"customer_name"`
	CustomerEmail    string `json:"customer_email"`
	Hotel            string `json:"hotel"`
	CheckIn          string `json:"check_in"`
	CheckOut         string `json:"check_out"`
	Total            string `json:"total"`
	Currency         string `json:"currency"`
	CompletionStatus string `json:"completion_status"`
}

// InvoicePayload references its booking by reference.
type InvoicePayload struct {
	Number           string     `json:"number"`
	BookingReference string     `json:"booking_reference"`
	Amount           string     `json:"amount"`
	Currency         string     `json:"currency"`
	Status           string     `json:"status"`
	IssuedAt         time.Time  `json:"issued_at"`
	DueAt            *time.Time `json:"due_at,omitempty"`
}

// PaymentPayload references its booking by reference and optionally an invoice by number.
type PaymentPayload struct {
	ExternalID       string     `json:"external_id"`
	BookingReference string     `json:"booking_reference"`
	InvoiceNumber    string     `json:"invoice_number,omitempty"`
	Amount           string     `json:"amount"`
	Currency         string     `json:"currency"`
	Method           string     `json:"method"`
	Status           string     `json:"status"`
	PaidAt           *time.Time `json:"paid_at,omitempty"`
}

// ToJSON encodes the event.
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// EventFromJSON decodes an event body and checks its payload matches its type.
func EventFromJSON(data []byte) (Event, error) {
	var e Event
	if err := json.Unmarshal(data, &e); err != nil {
		return Event{}, err
	}
	switch {
	case e.Type == EventBookingUpserted && e.Booking != nil,
		e.Type == EventInvoiceUpserted && e.Invoice != nil,
		e.Type == EventPaymentUpserted && e.Payment != nil:
		return e, nil
	}
	return Event{}, ErrEventPayloadMissing
}
