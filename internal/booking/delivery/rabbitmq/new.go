package rabbitmq

import (
	"travel-backoffice/internal/booking"
	"travel-backoffice/internal/invoice"
	"travel-backoffice/internal/payment"
	"travel-backoffice/pkg/log"
)

// Consumer applies reservation events to the booking, invoice and payment stores.
type Consumer struct {
	l         log.Logger
	bookingUC booking.UseCase
	invoiceUC invoice.UseCase
	paymentUC payment.UseCase
}

// New creates a new reservation event consumer.
func New(l log.Logger, bookingUC booking.UseCase, invoiceUC invoice.UseCase, paymentUC payment.UseCase) *Consumer {
	return &Consumer{
		l:         l,
		bookingUC: bookingUC,
		invoiceUC: invoiceUC,
		paymentUC: paymentUC,
	}
}
