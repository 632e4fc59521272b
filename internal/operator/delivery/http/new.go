package http

import (
	"travel-backoffice/internal/operator"
	"travel-backoffice/pkg/log"
)

type handler struct {
	l  log.Logger
	uc operator.UseCase
}

// New creates a new HTTP handler for operator authentication.
func New(l log.Logger, uc operator.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
