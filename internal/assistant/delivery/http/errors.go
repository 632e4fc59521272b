package http

import (
	"errors"
	"net/http"

	"travel-backoffice/internal/assistant"
	pkgErrors "travel-backoffice/pkg/errors"
)

var (
	errWrongBody = pkgErrors.NewHTTPError(160002, "Wrong body")
	errBusy      = pkgErrors.NewHTTPErrorWithStatus(160009, "assistant is still working on the previous request", http.StatusConflict)
)

// mapError translates use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, assistant.ErrSessionNotFound):
		return pkgErrors.NewHTTPErrorWithStatus(160004, "assistant session not found", http.StatusNotFound)
	case errors.Is(err, assistant.ErrBusy):
		return errBusy
	case errors.Is(err, assistant.ErrEmptyMessage):
		return pkgErrors.NewHTTPError(160010, "message is empty")
	case errors.Is(err, assistant.ErrBackendUnavailable):
		return pkgErrors.NewHTTPErrorWithStatus(160502, "assistant is unavailable, try again", http.StatusBadGateway)
	default:
		return pkgErrors.ErrInternalServerError
	}
}
