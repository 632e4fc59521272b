package payment

import "errors"

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrBookingNotFound = errors.New("payment references an unknown booking")
	ErrInvalidPayload  = errors.New("invalid payment payload")
)
