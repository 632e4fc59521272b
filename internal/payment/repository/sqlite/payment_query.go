package sqlite

import (
	"strings"

	repo "travel-backoffice/internal/payment/repository"
)

// buildGetOneQuery builds the WHERE clause + args for GetOnePayment.
func (r *implRepository) buildGetOneQuery(opt repo.GetOnePaymentOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.ID != "" {
		conditions = append(conditions, "p.id = ?")
		args = append(args, opt.ID)
	}
	if opt.ExternalID != "" {
		conditions = append(conditions, "p.external_id = ?")
		args = append(args, opt.ExternalID)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildWhere builds the filter clause shared by the count and page queries.
func (r *implRepository) buildWhere(opt repo.ListPaymentsOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.BookingID != "" {
		conditions = append(conditions, "p.booking_id = ?")
		args = append(args, opt.BookingID)
	}
	if opt.InvoiceID != "" {
		conditions = append(conditions, "p.invoice_id = ?")
		args = append(args, opt.InvoiceID)
	}
	if opt.Status != "" {
		conditions = append(conditions, "p.status = ?")
		args = append(args, opt.Status)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

func (r *implRepository) buildCountWhere(opt repo.CountPaymentsOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.Status != "" {
		conditions = append(conditions, "p.status = ?")
		args = append(args, opt.Status)
	}
	if !opt.PaidFrom.IsZero() {
		conditions = append(conditions, "p.paid_at >= ?")
		args = append(args, opt.PaidFrom.UTC())
	}
	if !opt.PaidTo.IsZero() {
		conditions = append(conditions, "p.paid_at < ?")
		args = append(args, opt.PaidTo.UTC())
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// buildPage builds LIMIT/OFFSET. SQLite needs a LIMIT before any OFFSET.
func (r *implRepository) buildPage(opt repo.ListPaymentsOptions) (string, []any) {
	if opt.Limit <= 0 {
		if opt.Offset > 0 {
			return "LIMIT -1 OFFSET ?", []any{opt.Offset}
		}
		return "", nil
	}
	return "LIMIT ? OFFSET ?", []any{opt.Limit, opt.Offset}
}
