package http

import (
	"errors"

	"travel-backoffice/internal/dashboard"
	pkgErrors "travel-backoffice/pkg/errors"
)

var (
	errWrongQuery    = pkgErrors.NewHTTPError(150001, "Wrong query")
	errInvalidPeriod = pkgErrors.NewHTTPError(150002, "month must be 1-12 and year 1970-9999")
)

// mapError translates use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, dashboard.ErrInvalidPeriod):
		return errInvalidPeriod
	default:
		return pkgErrors.ErrInternalServerError
	}
}
