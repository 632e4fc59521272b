package rabbitmq

import (
	"context"
	"errors"

	"travel-backoffice/internal/booking"
	"travel-backoffice/internal/invoice"
	"travel-backoffice/internal/model"
	"travel-backoffice/internal/payment"
	pkgRabbit "travel-backoffice/pkg/rabbitmq"
)

// Source is the broker side of the consumer. *rabbitmq.Client satisfies it.
type Source interface {
	Consume(ctx context.Context, handle func(ctx context.Context, body []byte) pkgRabbit.Ack) error
}

// Run consumes events from src until ctx is done or the channel closes.
func (c *Consumer) Run(ctx context.Context, src Source) error {
	return src.Consume(ctx, c.Handle)
}

// Handle applies one event and chooses how the delivery is settled.
// Messages that can never succeed are dropped, transient failures are requeued.
func (c *Consumer) Handle(ctx context.Context, body []byte) pkgRabbit.Ack {
	event, err := model.EventFromJSON(body)
	if err != nil {
		c.l.Warnf(ctx, "booking.delivery.rabbitmq.Handle: dropping malformed event: %v", err)
		return pkgRabbit.AckDrop
	}

	switch event.Type {
	case model.EventBookingUpserted:
		err = c.upsertBooking(ctx, event.Booking)
	case model.EventInvoiceUpserted:
		err = c.upsertInvoice(ctx, event.Invoice)
	case model.EventPaymentUpserted:
		err = c.upsertPayment(ctx, event.Payment)
	}

	switch {
	case err == nil:
		return pkgRabbit.AckDone
	case isPermanent(err):
		c.l.Warnf(ctx, "booking.delivery.rabbitmq.Handle: dropping %s event: %v", event.Type, err)
		return pkgRabbit.AckDrop
	default:
		c.l.Errorf(ctx, "booking.delivery.rabbitmq.Handle: requeue %s event: %v", event.Type, err)
		return pkgRabbit.AckRequeue
	}
}

func isPermanent(err error) bool {
	return errors.Is(err, booking.ErrInvalidPayload) ||
		errors.Is(err, invoice.ErrInvalidPayload) ||
		errors.Is(err, invoice.ErrBookingNotFound) ||
		errors.Is(err, payment.ErrInvalidPayload) ||
		errors.Is(err, payment.ErrBookingNotFound)
}

func (c *Consumer) upsertBooking(ctx context.Context, p *model.BookingPayload) error {
	_, err := c.bookingUC.Upsert(ctx, booking.UpsertInput{
		Reference:        p.Reference,
		CustomerName:     p.CustomerName,
		CustomerEmail:    p.CustomerEmail,
		Hotel:            p.Hotel,
		CheckIn:          p.CheckIn,
		CheckOut:         p.CheckOut,
		Total:            p.Total,
		Currency:         p.Currency,
		CompletionStatus: p.CompletionStatus,
	})
	return err
}

func (c *Consumer) upsertInvoice(ctx context.Context, p *model.InvoicePayload) error {
	_, err := c.invoiceUC.Upsert(ctx, invoice.UpsertInput{
		Number:           p.Number,
		BookingReference: p.BookingReference,
		Amount:           p.Amount,
		Currency:         p.Currency,
		Status:           p.Status,
		IssuedAt:         p.IssuedAt,
		DueAt:            p.DueAt,
	})
	return err
}

func (c *Consumer) upsertPayment(ctx context.Context, p *model.PaymentPayload) error {
	_, err := c.paymentUC.Upsert(ctx, payment.UpsertInput{
		ExternalID:       p.ExternalID,
		BookingReference: p.BookingReference,
		InvoiceNumber:    p.InvoiceNumber,
		Amount:           p.Amount,
		Currency:         p.Currency,
		Method:           p.Method,
		Status:           p.Status,
		PaidAt:           p.PaidAt,
	})
	return err
}
