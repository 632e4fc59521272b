package usecase

import (
	"context"
	"errors"
	"strings"

	"travel-backoffice/internal/payment"
	repo "travel-backoffice/internal/payment/repository"
)

// List returns a page of payments.
func (uc *implUseCase) List(ctx context.Context, input payment.ListInput) (payment.ListOutput, error) {
	payments, total, err := uc.repo.ListPayments(ctx, repo.ListPaymentsOptions{
		BookingID: input.BookingID,
		InvoiceID: input.InvoiceID,
		Status:    input.Status,
		Limit:     input.Limit,
		Offset:    input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListPayments: %v", err)
		return payment.ListOutput{}, err
	}

	return payment.ListOutput{
		Payments: payments,
		Total:    total,
		Limit:    input.Limit,
		Offset:   input.Offset,
	}, nil
}

// Detail retrieves a payment with its linked invoice. Returns ErrPaymentNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (payment.DetailOutput, error) {
	p, err := uc.repo.GetOnePayment(ctx, repo.GetOnePaymentOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOnePayment: %v", err)
		return payment.DetailOutput{}, err
	}
	if p.ID == "" {
		return payment.DetailOutput{}, payment.ErrPaymentNotFound
	}
	return payment.DetailOutput{Payment: p}, nil
}

// Upsert stores a payment reported by the reservations system.
func (uc *implUseCase) Upsert(ctx context.Context, input payment.UpsertInput) (payment.UpsertOutput, error) {
	if strings.TrimSpace(input.ExternalID) == "" || strings.TrimSpace(input.BookingReference) == "" {
		return payment.UpsertOutput{}, payment.ErrInvalidPayload
	}

	status := input.Status
	if status == "" {
		status = payment.StatusPending
	}

	p, err := uc.repo.UpsertPayment(ctx, repo.UpsertPaymentOptions{
		ID:               uc.newID(),
		ExternalID:       input.ExternalID,
		BookingReference: input.BookingReference,
		InvoiceNumber:    input.InvoiceNumber,
		Amount:           input.Amount,
		Currency:         input.Currency,
		Method:           input.Method,
		Status:           status,
		PaidAt:           input.PaidAt,
	})
	if errors.Is(err, repo.ErrUnknownBooking) {
		return payment.UpsertOutput{}, payment.ErrBookingNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Upsert UpsertPayment: %v", err)
		return payment.UpsertOutput{}, err
	}
	return payment.UpsertOutput{Payment: p}, nil
}
