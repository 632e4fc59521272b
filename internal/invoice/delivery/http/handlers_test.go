package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"travel-backoffice/internal/invoice"
	"travel-backoffice/internal/payment"
	"travel-backoffice/pkg/log"
)

type fakeUseCase struct {
	listIn invoice.ListInput
	detail invoice.DetailOutput
	err    error
}

func (f *fakeUseCase) List(_ context.Context, in invoice.ListInput) (invoice.ListOutput, error) {
	f.listIn = in
	return invoice.ListOutput{Invoices: []invoice.Invoice{{ID: "i1", IssuedAt: time.Now()}}, Total: 1, Limit: in.Limit}, f.err
}

func (f *fakeUseCase) Detail(_ context.Context, _ string) (invoice.DetailOutput, error) {
	return f.detail, f.err
}

func (f *fakeUseCase) Upsert(_ context.Context, _ invoice.UpsertInput) (invoice.UpsertOutput, error) {
	return invoice.UpsertOutput{}, f.err
}

func newTestRouter(uc invoice.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(log.NewNop(), uc)
	r := gin.New()
	r.GET("/invoices", h.List)
	r.GET("/invoices/:id", h.Detail)
	return r
}

func TestList(t *testing.T) {
	uc := &fakeUseCase{}
	w := httptest.NewRecorder()
	newTestRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/invoices?status=paid&offset=-3", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if uc.listIn.Status != "paid" || uc.listIn.Offset != 0 || uc.listIn.Limit != 20 {
		t.Errorf("unexpected input: %+v", uc.listIn)
	}

	w = httptest.NewRecorder()
	newTestRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/invoices?status=overdue", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown status, got %d", w.Code)
	}
}

func TestDetail(t *testing.T) {
	t.Run("lists payments", func(t *testing.T) {
		uc := &fakeUseCase{detail: invoice.DetailOutput{
			Invoice:  invoice.Invoice{ID: "i1", Number: "INV-1"},
			Payments: []payment.Payment{{ID: "p1", ExternalID: "PAY-1"}},
		}}
		w := httptest.NewRecorder()
		newTestRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/invoices/i1", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Data struct {
				Payments []struct {
					ExternalID string `json:"external_id"`
				} `json:"payments"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if len(body.Data.Payments) != 1 || body.Data.Payments[0].ExternalID != "PAY-1" {
			t.Errorf("unexpected payments: %+v", body.Data.Payments)
		}
	})

	t.Run("not found", func(t *testing.T) {
		w := httptest.NewRecorder()
		newTestRouter(&fakeUseCase{err: invoice.ErrInvoiceNotFound}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/invoices/x", nil))
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})
}
