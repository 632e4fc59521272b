package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is an error that already knows how it should be rendered over HTTP.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError builds an HTTPError whose business code doubles as the HTTP status.
func NewHTTPError(code int, message string) *HTTPError {
	status := code
	if http.StatusText(status) == "" {
		status = http.StatusBadRequest
	}
	return &HTTPError{Code: code, Message: message, StatusCode: status}
}

// NewHTTPErrorWithStatus builds an HTTPError with a business code distinct from the status.
func NewHTTPErrorWithStatus(code int, message string, status int) *HTTPError {
	return &HTTPError{Code: code, Message: message, StatusCode: status}
}

var (
	ErrInternalServerError = NewHTTPErrorWithStatus(500, "Something went wrong", http.StatusInternalServerError)
	ErrUnauthorized        = NewHTTPErrorWithStatus(401, "Unauthorized", http.StatusUnauthorized)
	ErrForbidden           = NewHTTPErrorWithStatus(403, "Forbidden", http.StatusForbidden)
	ErrNotFound            = NewHTTPErrorWithStatus(404, "Not found", http.StatusNotFound)
	ErrTooManyRequests     = NewHTTPErrorWithStatus(429, "Too many requests", http.StatusTooManyRequests)
)

// AsHTTPError reports whether err wraps an *HTTPError and returns it.
func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	if errors.As(err, &he) {
		return he, true
	}
	return nil, false
}

// NewValidationError wraps a binding or validation failure as a 400.
func NewValidationError(field string, err error) *HTTPError {
	return NewHTTPErrorWithStatus(400, fmt.Sprintf("invalid %s: %v", field, err), http.StatusBadRequest)
}
