package http

import (
	"errors"
	"net/http"

	"travel-backoffice/internal/operator"
	pkgErrors "travel-backoffice/pkg/errors"
)

var errWrongBody = pkgErrors.NewHTTPError(100001, "Wrong body")

// mapError translates use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, operator.ErrRegistrationClosed):
		return pkgErrors.NewHTTPErrorWithStatus(100003, "registration is closed", http.StatusForbidden)
	case errors.Is(err, operator.ErrInvalidCredentials):
		return pkgErrors.NewHTTPErrorWithStatus(100002, "invalid username or password", http.StatusUnauthorized)
	case errors.Is(err, operator.ErrOperatorNotFound):
		return pkgErrors.ErrUnauthorized
	case errors.Is(err, operator.ErrInvalidUsername):
		return pkgErrors.NewHTTPError(100010, "username must be 3 to 64 characters")
	case errors.Is(err, operator.ErrWeakPassword):
		return pkgErrors.NewHTTPError(100011, "password must be at least 8 characters")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
