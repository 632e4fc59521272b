package http

import (
	"travel-backoffice/internal/assistant"
	"travel-backoffice/pkg/log"
)

type handler struct {
	l   log.Logger
	uc  assistant.UseCase
	hub *Hub
}

// New creates a new HTTP handler for the booking assistant. hub streams session state over websockets.
func New(l log.Logger, uc assistant.UseCase, hub *Hub) *handler {
	return &handler{
		l:   l,
		uc:  uc,
		hub: hub,
	}
}
