package booking

import "errors"

var (
	ErrBookingNotFound     = errors.New("booking not found")
	ErrDuplicateReference  = errors.New("booking reference already exists")
	ErrInvalidDates        = errors.New("check-out must be a date after check-in")
	ErrInvalidTotal        = errors.New("total must be a non-negative decimal")
	ErrInvalidPayload      = errors.New("invalid booking payload")
	ErrInvalidPeriodFilter = errors.New("month and year must be given together")
)
