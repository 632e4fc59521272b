package assistant

import "errors"

var (
	ErrSessionNotFound    = errors.New("assistant session not found")
	ErrEmptyMessage       = errors.New("message is empty")
	ErrBusy               = errors.New("assistant is still working on the previous request")
	ErrBackendUnavailable = errors.New("chat backend unavailable")
)
