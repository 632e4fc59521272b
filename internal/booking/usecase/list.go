package usecase

import (
	"context"
	"fmt"

	"travel-backoffice/internal/booking"
	repo "travel-backoffice/internal/booking/repository"
	"travel-backoffice/internal/invoice"
	"travel-backoffice/internal/payment"
	"travel-backoffice/pkg/stay"
)

// List returns a page of bookings.
func (uc *implUseCase) List(ctx context.Context, input booking.ListInput) (booking.ListOutput, error) {
	if (input.Month == 0) != (input.Year == 0) {
		return booking.ListOutput{}, booking.ErrInvalidPeriodFilter
	}

	opt := repo.ListBookingsOptions{
		Status: input.Status,
		Hotel:  input.Hotel,
		Limit:  input.Limit,
		Offset: input.Offset,
	}
	if input.Month != 0 {
		opt.CheckInPrefix = fmt.Sprintf("%04d-%02d", input.Year, input.Month)
	}

	bookings, total, err := uc.repo.ListBookings(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListBookings: %v", err)
		return booking.ListOutput{}, err
	}

	return booking.ListOutput{
		Bookings: bookings,
		Total:    total,
		Limit:    input.Limit,
		Offset:   input.Offset,
	}, nil
}

// ListComplete returns every complete booking, unpaginated.
func (uc *implUseCase) ListComplete(ctx context.Context) ([]booking.Booking, error) {
	bookings, _, err := uc.repo.ListBookings(ctx, repo.ListBookingsOptions{Status: stay.CompletionComplete})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListComplete ListBookings: %v", err)
		return nil, err
	}
	return bookings, nil
}

// Detail retrieves a booking with its invoices and payments.
// Returns ErrBookingNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (booking.DetailOutput, error) {
	b, err := uc.repo.GetOneBooking(ctx, repo.GetOneBookingOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneBooking: %v", err)
		return booking.DetailOutput{}, err
	}
	if b.ID == "" {
		return booking.DetailOutput{}, booking.ErrBookingNotFound
	}

	invoices, err := uc.invoiceUC.List(ctx, invoice.ListInput{BookingID: b.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail invoiceUC.List: %v", err)
		return booking.DetailOutput{}, err
	}
	payments, err := uc.paymentUC.List(ctx, payment.ListInput{BookingID: b.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail paymentUC.List: %v", err)
		return booking.DetailOutput{}, err
	}

	return booking.DetailOutput{
		Booking:  b,
		Invoices: invoices.Invoices,
		Payments: payments.Payments,
	}, nil
}
