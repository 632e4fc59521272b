package http

import (
	"errors"

	"travel-backoffice/internal/invoice"
	pkgErrors "travel-backoffice/pkg/errors"
)

var errWrongQuery = pkgErrors.NewHTTPError(130001, "Wrong query")

// mapError translates use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, invoice.ErrInvoiceNotFound):
		return pkgErrors.NewHTTPErrorWithStatus(130004, "invoice not found", 404)
	default:
		return pkgErrors.ErrInternalServerError
	}
}
