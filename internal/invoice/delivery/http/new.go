package http

import (
	"travel-backoffice/internal/invoice"
	"travel-backoffice/pkg/log"
)

type handler struct {
	l  log.Logger
	uc invoice.UseCase
}

// New creates a new HTTP handler for the invoice domain.
func New(l log.Logger, uc invoice.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
