package http

import (
	"errors"
	"net/http"

	"travel-backoffice/internal/booking"
	pkgErrors "travel-backoffice/pkg/errors"
)

var (
	errWrongQuery = pkgErrors.NewHTTPError(110001, "Wrong query")
	errWrongBody  = pkgErrors.NewHTTPError(110002, "Wrong body")
)

// mapError translates use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, booking.ErrBookingNotFound):
		return pkgErrors.NewHTTPErrorWithStatus(110004, "booking not found", http.StatusNotFound)
	case errors.Is(err, booking.ErrDuplicateReference):
		return pkgErrors.NewHTTPErrorWithStatus(110009, "booking reference already exists", http.StatusConflict)
	case errors.Is(err, booking.ErrInvalidDates):
		return pkgErrors.NewHTTPError(110010, "check-out must be a date after check-in")
	case errors.Is(err, booking.ErrInvalidTotal):
		return pkgErrors.NewHTTPError(110011, "total must be a non-negative decimal")
	case errors.Is(err, booking.ErrInvalidPayload):
		return pkgErrors.NewHTTPError(110012, "hotel is required")
	case errors.Is(err, booking.ErrInvalidPeriodFilter):
		return pkgErrors.NewHTTPError(110013, "month and year must be given together")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
