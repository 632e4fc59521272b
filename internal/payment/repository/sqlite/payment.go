package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"travel-backoffice/internal/payment"
	repo "travel-backoffice/internal/payment/repository"
)

const selectPayment = `
	SELECT p.id, p.external_id, p.booking_id, COALESCE(p.invoice_id, ''), p.amount, p.currency,
	       p.method, p.status, p.paid_at, p.created_at,
	       COALESCE(i.number, ''), COALESCE(i.amount, ''), COALESCE(i.currency, ''), COALESCE(i.status, '')
	FROM payments p
	LEFT JOIN invoices i ON i.id = p.invoice_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPayment(s rowScanner) (payment.Payment, error) {
	var (
		p      payment.Payment
		paidAt sql.NullTime
		inv    payment.LinkedInvoice
	)
	err := s.Scan(
		&p.ID, &p.ExternalID, &p.BookingID, &p.InvoiceID, &p.Amount, &p.Currency,
		&p.Method, &p.Status, &paidAt, &p.CreatedAt,
		&inv.Number, &inv.Amount, &inv.Currency, &inv.Status,
	)
	if err != nil {
		return payment.Payment{}, err
	}
	if paidAt.Valid {
		t := paidAt.Time
		p.PaidAt = &t
	}
	if p.InvoiceID != "" {
		inv.ID = p.InvoiceID
		p.Invoice = &inv
	}
	return p, nil
}

// UpsertPayment inserts or updates a payment keyed by its external id.
// Returns ErrUnknownBooking when the booking reference matches nothing.
func (r *implRepository) UpsertPayment(ctx context.Context, opt repo.UpsertPaymentOptions) (payment.Payment, error) {
	const query = `
		INSERT INTO payments (id, external_id, booking_id, invoice_id, amount, currency, method, status, paid_at, created_at)
		SELECT ?, ?, b.id, (SELECT i.id FROM invoices i WHERE i.number = ? AND i.booking_id = b.id), ?, ?, ?, ?, ?, ?
		FROM bookings b
		WHERE b.reference = ?
		ON CONFLICT (external_id) DO UPDATE SET
			booking_id = excluded.booking_id,
			invoice_id = excluded.invoice_id,
			amount     = excluded.amount,
			currency   = excluded.currency,
			method     = excluded.method,
			status     = excluded.status,
			paid_at    = excluded.paid_at`

	res, err := r.db.ExecContext(ctx, query,
		opt.ID, opt.ExternalID, opt.InvoiceNumber, opt.Amount, opt.Currency, opt.Method, opt.Status,
		opt.PaidAt, time.Now().UTC(), opt.BookingReference,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertPayment"), err)
		return payment.Payment{}, repo.ErrFailedToUpsert
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return payment.Payment{}, repo.ErrUnknownBooking
	}

	p, err := r.GetOnePayment(ctx, repo.GetOnePaymentOptions{ExternalID: opt.ExternalID})
	if err != nil {
		return payment.Payment{}, err
	}
	if p.ID == "" {
		return payment.Payment{}, repo.ErrFailedToUpsert
	}
	return p, nil
}

// GetOnePayment retrieves a single Payment by the provided filters (AND condition).
// Returns zero-value Payment (ID == "") when not found.
func (r *implRepository) GetOnePayment(ctx context.Context, opt repo.GetOnePaymentOptions) (payment.Payment, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("%s WHERE %s LIMIT 1", selectPayment, mods)

	p, err := scanPayment(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return payment.Payment{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOnePayment"), err)
		return payment.Payment{}, repo.ErrFailedToGet
	}
	return p, nil
}

// ListPayments returns a page of Payments and the total count.
func (r *implRepository) ListPayments(ctx context.Context, opt repo.ListPaymentsOptions) ([]payment.Payment, int, error) {
	where, whereArgs := r.buildWhere(opt)

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM payments p %s", where)
	if err := r.db.QueryRowContext(ctx, countQuery, whereArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListPayments"), err)
		return nil, 0, repo.ErrFailedToList
	}

	page, pageArgs := r.buildPage(opt)
	query := fmt.Sprintf("%s %s ORDER BY p.created_at DESC, p.id %s", selectPayment, where, page)
	rows, err := r.db.QueryContext(ctx, query, append(whereArgs, pageArgs...)...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListPayments"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	payments := make([]payment.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListPayments"), err)
			return nil, 0, repo.ErrFailedToList
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListPayments"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return payments, total, nil
}

// CountPayments counts payments matching opt.
func (r *implRepository) CountPayments(ctx context.Context, opt repo.CountPaymentsOptions) (int, error) {
	where, args := r.buildCountWhere(opt)

	var total int
	query := fmt.Sprintf("SELECT COUNT(*) FROM payments p %s", where)
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountPayments"), err)
		return 0, repo.ErrFailedToList
	}
	return total, nil
}
