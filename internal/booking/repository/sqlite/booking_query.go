package sqlite

import (
	"strings"

	repo "travel-backoffice/internal/booking/repository"
)

// buildGetOneQuery builds the WHERE clause + args for GetOneBooking.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneBookingOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.ID != "" {
		conditions = append(conditions, "b.id = ?")
		args = append(args, opt.ID)
	}
	if opt.Reference != "" {
		conditions = append(conditions, "b.reference = ?")
		args = append(args, opt.Reference)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildWhere builds the filter clause shared by the count and page queries.
func (r *implRepository) buildWhere(opt repo.ListBookingsOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.Status != "" {
		conditions = append(conditions, "b.completion_status = ?")
		args = append(args, opt.Status)
	}
	if opt.Hotel != "" {
		conditions = append(conditions, "b.hotel = ?")
		args = append(args, opt.Hotel)
	}
	if opt.CheckInPrefix != "" {
		conditions = append(conditions, "substr(b.check_in, 1, ?) = ?")
		args = append(args, len(opt.CheckInPrefix), opt.CheckInPrefix)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// buildPage builds LIMIT/OFFSET. SQLite needs a LIMIT before any OFFSET.
func (r *implRepository) buildPage(opt repo.ListBookingsOptions) (string, []any) {
	if opt.Limit <= 0 {
		if opt.Offset > 0 {
			return "LIMIT -1 OFFSET ?", []any{opt.Offset}
		}
		return "", nil
	}
	return "LIMIT ? OFFSET ?", []any{opt.Limit, opt.Offset}
}
