package repository

import (
	"context"

	"travel-backoffice/internal/booking"
)

// Repository is the composed interface for the booking data store.
type Repository interface {
	BookingRepository
}

// BookingRepository defines all data access methods for the Booking entity.
type BookingRepository interface {
	CreateBooking(ctx context.Context, opt CreateBookingOptions) (booking.Booking, error)
	UpsertBooking(ctx context.Context, opt UpsertBookingOptions) (booking.Booking, error)
	GetOneBooking(ctx context.Context, opt GetOneBookingOptions) (booking.Booking, error)
	ListBookings(ctx context.Context, opt ListBookingsOptions) ([]booking.Booking, int, error)
	SetCalendarEvent(ctx context.Context, id, eventID string) error
}
