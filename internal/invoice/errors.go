package invoice

import "errors"

var (
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrBookingNotFound = errors.New("invoice references an unknown booking")
	ErrInvalidPayload  = errors.New("invalid invoice payload")
)
