package sqlite

import (
	"strings"

	repo "travel-backoffice/internal/invoice/repository"
)

// buildGetOneQuery builds the WHERE clause + args for GetOneInvoice.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneInvoiceOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.ID != "" {
		conditions = append(conditions, "i.id = ?")
		args = append(args, opt.ID)
	}
	if opt.Number != "" {
		conditions = append(conditions, "i.number = ?")
		args = append(args, opt.Number)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildWhere builds the filter clause shared by the count and page queries.
func (r *implRepository) buildWhere(opt repo.ListInvoicesOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.BookingID != "" {
		conditions = append(conditions, "i.booking_id = ?")
		args = append(args, opt.BookingID)
	}
	if opt.Status != "" {
		conditions = append(conditions, "i.status = ?")
		args = append(args, opt.Status)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

func (r *implRepository) buildCountWhere(opt repo.CountInvoicesOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.Status != "" {
		conditions = append(conditions, "i.status = ?")
		args = append(args, opt.Status)
	}
	if !opt.IssuedFrom.IsZero() {
		conditions = append(conditions, "i.issued_at >= ?")
		args = append(args, opt.IssuedFrom.UTC())
	}
	if !opt.IssuedTo.IsZero() {
		conditions = append(conditions, "i.issued_at < ?")
		args = append(args, opt.IssuedTo.UTC())
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// buildPage builds LIMIT/OFFSET. SQLite needs a LIMIT before any OFFSET.
func (r *implRepository) buildPage(opt repo.ListInvoicesOptions) (string, []any) {
	if opt.Limit <= 0 {
		if opt.Offset > 0 {
			return "LIMIT -1 OFFSET ?", []any{opt.Offset}
		}
		return "", nil
	}
	return "LIMIT ? OFFSET ?", []any{opt.Limit, opt.Offset}
}
