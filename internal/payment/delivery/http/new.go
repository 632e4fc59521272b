package http

import (
	"travel-backoffice/internal/payment"
	"travel-backoffice/pkg/log"
)

type handler struct {
	l  log.Logger
	uc payment.UseCase
}

// New creates a new HTTP handler for the payment domain.
func New(l log.Logger, uc payment.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
