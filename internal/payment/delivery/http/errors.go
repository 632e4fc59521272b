package http

import (
	"errors"

	"travel-backoffice/internal/payment"
	pkgErrors "travel-backoffice/pkg/errors"
)

var errWrongQuery = pkgErrors.NewHTTPError(140001, "Wrong query")

// mapError translates use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, payment.ErrPaymentNotFound):
		return pkgErrors.NewHTTPErrorWithStatus(140004, "payment not found", 404)
	default:
		return pkgErrors.ErrInternalServerError
	}
}
