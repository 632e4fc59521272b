package operator

import "errors"

var (
	ErrRegistrationClosed = errors.New("registration is closed")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrOperatorNotFound   = errors.New("operator not found")
	ErrInvalidUsername    = errors.New("username must be 3 to 64 characters")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
)
