package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"travel-backoffice/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 1, 31, 23, 30, 0, 0, time.UTC)

	b, err := json.Marshal(response.Date(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling Date: %v", err)
	}
	if string(b) != `"2024-01-31"` {
		t.Errorf("unexpected date: %s", b)
	}
}

func TestDateTimeMarshalJSON(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	tm := time.Date(2024, 2, 1, 6, 30, 0, 0, loc)

	b, err := json.Marshal(response.DateTime(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}
	if string(b) != `"2024-01-31 23:30:00"` {
		t.Errorf("expected value normalised to UTC, got %s", b)
	}
}
