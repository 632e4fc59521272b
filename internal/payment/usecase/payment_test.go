package usecase

import (
	"context"
	"errors"
	"testing"

	"travel-backoffice/internal/payment"
	repo "travel-backoffice/internal/payment/repository"
	"travel-backoffice/pkg/log"
)

type fakeRepo struct {
	upserted repo.UpsertPaymentOptions
	upsertFn func(opt repo.UpsertPaymentOptions) (payment.Payment, error)
	one      payment.Payment
	list     []payment.Payment
	listOpt  repo.ListPaymentsOptions
	err      error
}

func (f *fakeRepo) UpsertPayment(_ context.Context, opt repo.UpsertPaymentOptions) (payment.Payment, error) {
	f.upserted = opt
	if f.upsertFn != nil {
		return f.upsertFn(opt)
	}
	return payment.Payment{ID: opt.ID, ExternalID: opt.ExternalID, Status: opt.Status}, f.err
}

func (f *fakeRepo) GetOnePayment(_ context.Context, _ repo.GetOnePaymentOptions) (payment.Payment, error) {
	return f.one, f.err
}

func (f *fakeRepo) ListPayments(_ context.Context, opt repo.ListPaymentsOptions) ([]payment.Payment, int, error) {
	f.listOpt = opt
	return f.list, len(f.list), f.err
}

func (f *fakeRepo) CountPayments(_ context.Context, _ repo.CountPaymentsOptions) (int, error) {
	return len(f.list), f.err
}

func newTestUseCase(r *fakeRepo) *implUseCase {
	uc := New(r, log.NewNop())
	uc.newID = func() string { return "fixed-id" }
	return uc
}

func TestDetail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		uc := newTestUseCase(&fakeRepo{one: payment.Payment{ID: "p1"}})
		out, err := uc.Detail(context.Background(), "p1")
		if err != nil || out.Payment.ID != "p1" {
			t.Fatalf("unexpected result %+v %v", out, err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc := newTestUseCase(&fakeRepo{})
		if _, err := uc.Detail(context.Background(), "p1"); !errors.Is(err, payment.ErrPaymentNotFound) {
			t.Errorf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		uc := newTestUseCase(&fakeRepo{err: repo.ErrFailedToGet})
		if _, err := uc.Detail(context.Background(), "p1"); !errors.Is(err, repo.ErrFailedToGet) {
			t.Errorf("expected ErrFailedToGet, got %v", err)
		}
	})
}

func TestList(t *testing.T) {
	r := &fakeRepo{list: []payment.Payment{{ID: "a"}, {ID: "b"}}}
	uc := newTestUseCase(r)

	out, err := uc.List(context.Background(), payment.ListInput{BookingID: "b1", Limit: 20, Offset: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Total != 2 || out.Limit != 20 || out.Offset != 5 {
		t.Errorf("unexpected output: %+v", out)
	}
	if r.listOpt.BookingID != "b1" {
		t.Errorf("filter not forwarded: %+v", r.listOpt)
	}
}

func TestUpsert(t *testing.T) {
	t.Run("defaults status and assigns id", func(t *testing.T) {
		r := &fakeRepo{}
		uc := newTestUseCase(r)

		out, err := uc.Upsert(context.Background(), payment.UpsertInput{ExternalID: "PAY-1", BookingReference: "BK-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.upserted.ID != "fixed-id" || r.upserted.Status != payment.StatusPending {
			t.Errorf("unexpected options: %+v", r.upserted)
		}
		if out.Payment.ExternalID != "PAY-1" {
			t.Errorf("unexpected payment: %+v", out.Payment)
		}
	})

	t.Run("missing keys", func(t *testing.T) {
		uc := newTestUseCase(&fakeRepo{})
		if _, err := uc.Upsert(context.Background(), payment.UpsertInput{ExternalID: " "}); !errors.Is(err, payment.ErrInvalidPayload) {
			t.Errorf("expected ErrInvalidPayload, got %v", err)
		}
	})

	t.Run("unknown booking", func(t *testing.T) {
		uc := newTestUseCase(&fakeRepo{err: repo.ErrUnknownBooking})
		_, err := uc.Upsert(context.Background(), payment.UpsertInput{ExternalID: "PAY-1", BookingReference: "BK-9"})
		if !errors.Is(err, payment.ErrBookingNotFound) {
			t.Errorf("expected ErrBookingNotFound, got %v", err)
		}
	})
}
