package usecase

import (
	"context"
	"errors"
	"strings"

	"travel-backoffice/internal/invoice"
	repo "travel-backoffice/internal/invoice/repository"
	"travel-backoffice/internal/payment"
)

// List returns a page of invoices.
func (uc *implUseCase) List(ctx context.Context, input invoice.ListInput) (invoice.ListOutput, error) {
	invoices, total, err := uc.repo.ListInvoices(ctx, repo.ListInvoicesOptions{
		BookingID: input.BookingID,
		Status:    input.Status,
		Limit:     input.Limit,
		Offset:    input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListInvoices: %v", err)
		return invoice.ListOutput{}, err
	}

	return invoice.ListOutput{
		Invoices: invoices,
		Total:    total,
		Limit:    input.Limit,
		Offset:   input.Offset,
	}, nil
}

// Detail retrieves an invoice and every payment recorded against it.
// Returns ErrInvoiceNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (invoice.DetailOutput, error) {
	inv, err := uc.repo.GetOneInvoice(ctx, repo.GetOneInvoiceOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneInvoice: %v", err)
		return invoice.DetailOutput{}, err
	}
	if inv.ID == "" {
		return invoice.DetailOutput{}, invoice.ErrInvoiceNotFound
	}

	payments, err := uc.paymentUC.List(ctx, payment.ListInput{InvoiceID: inv.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail paymentUC.List: %v", err)
		return invoice.DetailOutput{}, err
	}

	return invoice.DetailOutput{Invoice: inv, Payments: payments.Payments}, nil
}

// Upsert stores an invoice reported by the reservations system.
func (uc *implUseCase) Upsert(ctx context.Context, input invoice.UpsertInput) (invoice.UpsertOutput, error) {
	if strings.TrimSpace(input.Number) == "" || strings.TrimSpace(input.BookingReference) == "" || input.IssuedAt.IsZero() {
		return invoice.UpsertOutput{}, invoice.ErrInvalidPayload
	}

	status := input.Status
	if status == "" {
		status = invoice.StatusUnpaid
	}

	inv, err := uc.repo.UpsertInvoice(ctx, repo.UpsertInvoiceOptions{
		ID:               uc.newID(),
		Number:           input.Number,
		BookingReference: input.BookingReference,
		Amount:           input.Amount,
		Currency:         input.Currency,
		Status:           status,
		IssuedAt:         input.IssuedAt,
		DueAt:            input.DueAt,
	})
	if errors.Is(err, repo.ErrUnknownBooking) {
		return invoice.UpsertOutput{}, invoice.ErrBookingNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Upsert UpsertInvoice: %v", err)
		return invoice.UpsertOutput{}, err
	}
	return invoice.UpsertOutput{Invoice: inv}, nil
}
