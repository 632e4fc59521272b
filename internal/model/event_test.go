package model_test

import (
	"errors"
	"testing"

	"travel-backoffice/internal/model"
)

func TestEventFromJSON(t *testing.T) {
	t.Run("booking", func(t *testing.T) {
		e, err := model.EventFromJSON([]byte(`{"type":"booking.upserted","booking":{"reference":"BK-1","hotel":"Ritz","total":"12.50"}}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Booking.Reference != "BK-1" || e.Booking.Total != "12.50" {
			t.Errorf("unexpected payload: %+v", e.Booking)
		}
	})

	t.Run("payload mismatch", func(t *testing.T) {
		_, err := model.EventFromJSON([]byte(`{"type":"invoice.upserted","booking":{"reference":"BK-1"}}`))
		if !errors.Is(err, model.ErrEventPayloadMissing) {
			t.Errorf("expected ErrEventPayloadMissing, got %v", err)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := model.EventFromJSON([]byte(`{"type":"booking.deleted","booking":{"reference":"BK-1"}}`))
		if !errors.Is(err, model.ErrEventPayloadMissing) {
			t.Errorf("expected ErrEventPayloadMissing, got %v", err)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		if _, err := model.EventFromJSON([]byte(`{`)); err == nil {
			t.Errorf("expected decode error")
		}
	})
}
