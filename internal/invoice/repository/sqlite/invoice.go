package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"travel-backoffice/internal/invoice"
	repo "travel-backoffice/internal/invoice/repository"
)

const selectInvoice = `
	SELECT i.id, i.booking_id, b.reference, i.number, i.amount, i.currency, i.status,
	       i.issued_at, i.due_at, i.created_at
	FROM invoices i
	JOIN bookings b ON b.id = i.booking_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInvoice(s rowScanner) (invoice.Invoice, error) {
	var (
		inv   invoice.Invoice
		dueAt sql.NullTime
	)
	err := s.Scan(
		&inv.ID, &inv.BookingID, &inv.BookingReference, &inv.Number, &inv.Amount, &inv.Currency, &inv.Status,
		&inv.IssuedAt, &dueAt, &inv.CreatedAt,
	)
	if err != nil {
		return invoice.Invoice{}, err
	}
	if dueAt.Valid {
		t := dueAt.Time
		inv.DueAt = &t
	}
	return inv, nil
}

// UpsertInvoice inserts or updates an invoice keyed by its number.
// Returns ErrUnknownBooking when the booking reference matches nothing.
func (r *implRepository) UpsertInvoice(ctx context.Context, opt repo.UpsertInvoiceOptions) (invoice.Invoice, error) {
	const query = `
		INSERT INTO invoices (id, booking_id, number, amount, currency, status, issued_at, due_at, created_at)
		SELECT ?, b.id, ?, ?, ?, ?, ?, ?, ?
		FROM bookings b
		WHERE b.reference = ?
		ON CONFLICT (number) DO UPDATE SET
			booking_id = excluded.booking_id,
			amount     = excluded.amount,
			currency   = excluded.currency,
			status     = excluded.status,
			issued_at  = excluded.issued_at,
			due_at     = excluded.due_at`

	var dueAt *time.Time
	if opt.DueAt != nil {
		d := opt.DueAt.UTC()
		dueAt = &d
	}

	res, err := r.db.ExecContext(ctx, query,
		opt.ID, opt.Number, opt.Amount, opt.Currency, opt.Status, opt.IssuedAt.UTC(), dueAt, time.Now().UTC(),
		opt.BookingReference,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertInvoice"), err)
		return invoice.Invoice{}, repo.ErrFailedToUpsert
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return invoice.Invoice{}, repo.ErrUnknownBooking
	}

	inv, err := r.GetOneInvoice(ctx, repo.GetOneInvoiceOptions{Number: opt.Number})
	if err != nil {
		return invoice.Invoice{}, err
	}
	if inv.ID == "" {
		return invoice.Invoice{}, repo.ErrFailedToUpsert
	}
	return inv, nil
}

// GetOneInvoice retrieves a single Invoice by the provided filters (AND condition).
// Returns zero-value Invoice (ID == "") when not found.
func (r *implRepository) GetOneInvoice(ctx context.Context, opt repo.GetOneInvoiceOptions) (invoice.Invoice, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("%s WHERE %s LIMIT 1", selectInvoice, mods)

	inv, err := scanInvoice(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return invoice.Invoice{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneInvoice"), err)
		return invoice.Invoice{}, repo.ErrFailedToGet
	}
	return inv, nil
}

// ListInvoices returns a page of Invoices and the total count.
func (r *implRepository) ListInvoices(ctx context.Context, opt repo.ListInvoicesOptions) ([]invoice.Invoice, int, error) {
	where, whereArgs := r.buildWhere(opt)

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM invoices i %s", where)
	if err := r.db.QueryRowContext(ctx, countQuery, whereArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListInvoices"), err)
		return nil, 0, repo.ErrFailedToList
	}

	page, pageArgs := r.buildPage(opt)
	query := fmt.Sprintf("%s %s ORDER BY i.issued_at DESC, i.id %s", selectInvoice, where, page)
	rows, err := r.db.QueryContext(ctx, query, append(whereArgs, pageArgs...)...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListInvoices"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	invoices := make([]invoice.Invoice, 0)
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListInvoices"), err)
			return nil, 0, repo.ErrFailedToList
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListInvoices"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return invoices, total, nil
}

// CountInvoices counts invoices matching opt.
func (r *implRepository) CountInvoices(ctx context.Context, opt repo.CountInvoicesOptions) (int, error) {
	where, args := r.buildCountWhere(opt)

	var total int
	query := fmt.Sprintf("SELECT COUNT(*) FROM invoices i %s", where)
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountInvoices"), err)
		return 0, repo.ErrFailedToList
	}
	return total, nil
}
