package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"travel-backoffice/internal/booking"
	repo "travel-backoffice/internal/booking/repository"
)

const selectBooking = `
	SELECT b.id, b.reference, b.customer_name, b.customer_email, b.hotel, b.check_in, b.check_out,
	       b.total, b.currency, b.completion_status, b.calendar_event_id, b.created_at, b.updated_at
	FROM bookings b`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(s rowScanner) (booking.Booking, error) {
	var b booking.Booking
	err := s.Scan(
		&b.ID, &b.Reference, &b.CustomerName, &b.CustomerEmail, &b.Hotel, &b.CheckIn, &b.CheckOut,
		&b.Total, &b.Currency, &b.CompletionStatus, &b.CalendarEventID, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

// CreateBooking inserts a new booking. Returns ErrDuplicate when the reference exists.
func (r *implRepository) CreateBooking(ctx context.Context, opt repo.CreateBookingOptions) (booking.Booking, error) {
	const query = `
		INSERT INTO bookings (id, reference, customer_name, customer_email, hotel, check_in, check_out,
		                      total, currency, completion_status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (reference) DO NOTHING`

	now := time.Now().UTC()
	f := opt.BookingFields
	res, err := r.db.ExecContext(ctx, query,
		opt.ID, f.Reference, f.CustomerName, f.CustomerEmail, f.Hotel, f.CheckIn, f.CheckOut,
		f.Total, f.Currency, f.CompletionStatus, now, now,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateBooking"), err)
		return booking.Booking{}, repo.ErrFailedToInsert
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return booking.Booking{}, repo.ErrDuplicate
	}

	return r.mustGet(ctx, "CreateBooking", repo.GetOneBookingOptions{ID: opt.ID}, repo.ErrFailedToInsert)
}

// UpsertBooking inserts or updates a booking keyed by reference. The id and created_at
// of an existing row are preserved.
func (r *implRepository) UpsertBooking(ctx context.Context, opt repo.UpsertBookingOptions) (booking.Booking, error) {
	const query = `
		INSERT INTO bookings (id, reference, customer_name, customer_email, hotel, check_in, check_out,
		                      total, currency, completion_status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (reference) DO UPDATE SET
			customer_name     = excluded.customer_name,
			customer_email    = excluded.customer_email,
			hotel             = excluded.hotel,
			check_in          = excluded.check_in,
			check_out         = excluded.check_out,
			total             = excluded.total,
			currency          = excluded.currency,
			completion_status = excluded.completion_status,
			updated_at        = excluded.updated_at`

	now := time.Now().UTC()
	f := opt.BookingFields
	_, err := r.db.ExecContext(ctx, query,
		opt.ID, f.Reference, f.CustomerName, f.CustomerEmail, f.Hotel, f.CheckIn, f.CheckOut,
		f.Total, f.Currency, f.CompletionStatus, now, now,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertBooking"), err)
		return booking.Booking{}, repo.ErrFailedToUpsert
	}

	return r.mustGet(ctx, "UpsertBooking", repo.GetOneBookingOptions{Reference: f.Reference}, repo.ErrFailedToUpsert)
}

func (r *implRepository) mustGet(ctx context.Context, method string, opt repo.GetOneBookingOptions, missing error) (booking.Booking, error) {
	b, err := r.GetOneBooking(ctx, opt)
	if err != nil {
		return booking.Booking{}, err
	}
	if b.ID == "" {
		r.l.Errorf(ctx, "%s: row vanished after write", r.dsn(method))
		return booking.Booking{}, missing
	}
	return b, nil
}

// GetOneBooking retrieves a single Booking by the provided filters (AND condition).
// Returns zero-value Booking (ID == "") when not found.
func (r *implRepository) GetOneBooking(ctx context.Context, opt repo.GetOneBookingOptions) (booking.Booking, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("%s WHERE %s LIMIT 1", selectBooking, mods)

	b, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return booking.Booking{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneBooking"), err)
		return booking.Booking{}, repo.ErrFailedToGet
	}
	return b, nil
}

// ListBookings returns a page of Bookings ordered by check-in, and the total count.
func (r *implRepository) ListBookings(ctx context.Context, opt repo.ListBookingsOptions) ([]booking.Booking, int, error) {
	where, whereArgs := r.buildWhere(opt)

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM bookings b %s", where)
	if err := r.db.QueryRowContext(ctx, countQuery, whereArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListBookings"), err)
		return nil, 0, repo.ErrFailedToList
	}

	page, pageArgs := r.buildPage(opt)
	query := fmt.Sprintf("%s %s ORDER BY b.check_in DESC, b.reference %s", selectBooking, where, page)
	rows, err := r.db.QueryContext(ctx, query, append(whereArgs, pageArgs...)...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListBookings"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	bookings := make([]booking.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListBookings"), err)
			return nil, 0, repo.ErrFailedToList
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListBookings"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return bookings, total, nil
}

// SetCalendarEvent records the calendar event mirroring a booking.
func (r *implRepository) SetCalendarEvent(ctx context.Context, id, eventID string) error {
	const query = `UPDATE bookings SET calendar_event_id = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, eventID, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetCalendarEvent"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
