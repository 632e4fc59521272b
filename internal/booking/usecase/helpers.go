package usecase

import (
	"context"
	"strings"

	"travel-backoffice/internal/booking"
	"travel-backoffice/pkg/gcalendar"
	"travel-backoffice/pkg/stay"
)

// coalesce returns val unless it is blank.
func coalesce(val, fallback string) string {
	if strings.TrimSpace(val) != "" {
		return strings.TrimSpace(val)
	}
	return fallback
}

// mirror copies a complete stay to the calendar and returns b with its event id.
// Calendar failures are logged and leave b untouched.
func (uc *implUseCase) mirror(ctx context.Context, b booking.Booking) booking.Booking {
	if uc.calendar == nil || b.CompletionStatus != stay.CompletionComplete {
		return b
	}

	checkIn, okIn := stay.ParseDay(b.CheckIn)
	checkOut, okOut := stay.ParseDay(b.CheckOut)
	if !okIn || !okOut || !checkOut.After(checkIn) {
		uc.l.Warnf(ctx, "uc.mirror: booking %s has no usable stay dates", b.Reference)
		return b
	}

	event, err := uc.calendar.UpsertStay(ctx, gcalendar.StayEvent{
		EventID:   b.CalendarEventID,
		Reference: b.Reference,
		Hotel:     b.Hotel,
		Customer:  b.CustomerName,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.mirror UpsertStay %s: %v", b.Reference, err)
		return b
	}
	if event.ID == b.CalendarEventID {
		return b
	}

	if err := uc.repo.SetCalendarEvent(ctx, b.ID, event.ID); err != nil {
		uc.l.Warnf(ctx, "uc.mirror SetCalendarEvent %s: %v", b.Reference, err)
		return b
	}
	b.CalendarEventID = event.ID
	return b
}
