package usecase

import (
	"context"
	"errors"
	"strings"

	"travel-backoffice/internal/booking"
	repo "travel-backoffice/internal/booking/repository"
	"travel-backoffice/pkg/stay"
)

const defaultCompletionStatus = "pending"

// Create validates and stores a booking entered by an operator.
func (uc *implUseCase) Create(ctx context.Context, input booking.CreateInput) (booking.CreateOutput, error) {
	if strings.TrimSpace(input.Hotel) == "" {
		return booking.CreateOutput{}, booking.ErrInvalidPayload
	}
	if err := validateStay(input.CheckIn, input.CheckOut, input.Total); err != nil {
		return booking.CreateOutput{}, err
	}

	id := uc.newID()
	reference := strings.TrimSpace(input.Reference)
	if reference == "" {
		reference = "BK-" + strings.ToUpper(id[:8])
	}

	existing, err := uc.repo.GetOneBooking(ctx, repo.GetOneBookingOptions{Reference: reference})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneBooking: %v", err)
		return booking.CreateOutput{}, err
	}
	if existing.ID != "" {
		return booking.CreateOutput{}, booking.ErrDuplicateReference
	}

	b, err := uc.repo.CreateBooking(ctx, repo.CreateBookingOptions{
		ID: id,
		BookingFields: repo.BookingFields{
			Reference:        reference,
			CustomerName:     strings.TrimSpace(input.CustomerName),
			CustomerEmail:    strings.TrimSpace(input.CustomerEmail),
			Hotel:            strings.TrimSpace(input.Hotel),
			CheckIn:          strings.TrimSpace(input.CheckIn),
			CheckOut:         strings.TrimSpace(input.CheckOut),
			Total:            strings.TrimSpace(input.Total),
			Currency:         strings.ToUpper(strings.TrimSpace(input.Currency)),
			CompletionStatus: coalesce(input.CompletionStatus, defaultCompletionStatus),
		},
	})
	if errors.Is(err, repo.ErrDuplicate) {
		return booking.CreateOutput{}, booking.ErrDuplicateReference
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateBooking: %v", err)
		return booking.CreateOutput{}, err
	}

	return booking.CreateOutput{Booking: uc.mirror(ctx, b)}, nil
}

// Upsert stores a booking reported by the reservations system as received.
func (uc *implUseCase) Upsert(ctx context.Context, input booking.UpsertInput) (booking.UpsertOutput, error) {
	if strings.TrimSpace(input.Reference) == "" {
		return booking.UpsertOutput{}, booking.ErrInvalidPayload
	}

	b, err := uc.repo.UpsertBooking(ctx, repo.UpsertBookingOptions{
		ID: uc.newID(),
		BookingFields: repo.BookingFields{
			Reference:        input.Reference,
			CustomerName:     input.CustomerName,
			CustomerEmail:    input.CustomerEmail,
			Hotel:            input.Hotel,
			CheckIn:          input.CheckIn,
			CheckOut:         input.CheckOut,
			Total:            input.Total,
			Currency:         input.Currency,
			CompletionStatus: input.CompletionStatus,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Upsert UpsertBooking: %v", err)
		return booking.UpsertOutput{}, err
	}

	return booking.UpsertOutput{Booking: uc.mirror(ctx, b)}, nil
}

func validateStay(checkIn, checkOut, total string) error {
	in, okIn := stay.ParseDay(checkIn)
	out, okOut := stay.ParseDay(checkOut)
	if !okIn || !okOut || !out.After(in) {
		return booking.ErrInvalidDates
	}
	amount, ok := stay.ParseAmount(total)
	if !ok || amount < 0 {
		return booking.ErrInvalidTotal
	}
	return nil
}
