package usecase

import (
	"context"
	"errors"
	"testing"

	"travel-backoffice/internal/booking"
	repo "travel-backoffice/internal/booking/repository"
	"travel-backoffice/internal/invoice"
	"travel-backoffice/internal/payment"
	"travel-backoffice/pkg/gcalendar"
	"travel-backoffice/pkg/log"
)

type fakeRepo struct {
	byRef     map[string]booking.Booking
	created   repo.CreateBookingOptions
	upserted  repo.UpsertBookingOptions
	listOpt   repo.ListBookingsOptions
	list      []booking.Booking
	eventSets map[string]string
	err       error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byRef: map[string]booking.Booking{}, eventSets: map[string]string{}}
}

func fromFields(id string, f repo.BookingFields) booking.Booking {
	return booking.Booking{
		ID: id, Reference: f.Reference, Hotel: f.Hotel, CustomerName: f.CustomerName,
		CheckIn: f.CheckIn, CheckOut: f.CheckOut, Total: f.Total, Currency: f.Currency,
		CompletionStatus: f.CompletionStatus,
	}
}

func (f *fakeRepo) CreateBooking(_ context.Context, opt repo.CreateBookingOptions) (booking.Booking, error) {
	f.created = opt
	if f.err != nil {
		return booking.Booking{}, f.err
	}
	b := fromFields(opt.ID, opt.BookingFields)
	f.byRef[b.Reference] = b
	return b, nil
}

func (f *fakeRepo) UpsertBooking(_ context.Context, opt repo.UpsertBookingOptions) (booking.Booking, error) {
	f.upserted = opt
	if f.err != nil {
		return booking.Booking{}, f.err
	}
	b := fromFields(opt.ID, opt.BookingFields)
	if existing, ok := f.byRef[b.Reference]; ok {
		b.ID = existing.ID
		b.CalendarEventID = existing.CalendarEventID
	}
	f.byRef[b.Reference] = b
	return b, nil
}

func (f *fakeRepo) GetOneBooking(_ context.Context, opt repo.GetOneBookingOptions) (booking.Booking, error) {
	if f.err != nil {
		return booking.Booking{}, f.err
	}
	for _, b := range f.byRef {
		if b.ID == opt.ID || b.Reference == opt.Reference {
			return b, nil
		}
	}
	return booking.Booking{}, nil
}

func (f *fakeRepo) ListBookings(_ context.Context, opt repo.ListBookingsOptions) ([]booking.Booking, int, error) {
	f.listOpt = opt
	return f.list, len(f.list), f.err
}

func (f *fakeRepo) SetCalendarEvent(_ context.Context, id, eventID string) error {
	f.eventSets[id] = eventID
	return nil
}

type fakeInvoiceUC struct{ listIn invoice.ListInput }

func (f *fakeInvoiceUC) List(_ context.Context, in invoice.ListInput) (invoice.ListOutput, error) {
	f.listIn = in
	return invoice.ListOutput{Invoices: []invoice.Invoice{{ID: "i1"}}}, nil
}
func (f *fakeInvoiceUC) Detail(context.Context, string) (invoice.DetailOutput, error) {
	return invoice.DetailOutput{}, nil
}
func (f *fakeInvoiceUC) Upsert(context.Context, invoice.UpsertInput) (invoice.UpsertOutput, error) {
	return invoice.UpsertOutput{}, nil
}

type fakePaymentUC struct{ listIn payment.ListInput }

func (f *fakePaymentUC) List(_ context.Context, in payment.ListInput) (payment.ListOutput, error) {
	f.listIn = in
	return payment.ListOutput{Payments: []payment.Payment{{ID: "p1"}, {ID: "p2"}}}, nil
}
func (f *fakePaymentUC) Detail(context.Context, string) (payment.DetailOutput, error) {
	return payment.DetailOutput{}, nil
}
func (f *fakePaymentUC) Upsert(context.Context, payment.UpsertInput) (payment.UpsertOutput, error) {
	return payment.UpsertOutput{}, nil
}

type fakeCalendar struct {
	calls []gcalendar.StayEvent
	err   error
}

func (f *fakeCalendar) UpsertStay(_ context.Context, s gcalendar.StayEvent) (*gcalendar.Event, error) {
	f.calls = append(f.calls, s)
	if f.err != nil {
		return nil, f.err
	}
	return &gcalendar.Event{ID: "evt-1"}, nil
}

func newTestUseCase(r *fakeRepo, cal Calendar) *implUseCase {
	uc := New(r, &fakeInvoiceUC{}, &fakePaymentUC{}, cal, log.NewNop())
	uc.newID = func() string { return "0123abcd-0000-0000-0000-000000000000" }
	return uc
}

func TestCreate(t *testing.T) {
	valid := booking.CreateInput{
		Hotel: " Ritz ", CheckIn: "2024-01-28", CheckOut: "2024-02-03", Total: "600.00", Currency: "eur",
	}

	t.Run("generates reference and defaults status", func(t *testing.T) {
		r := newFakeRepo()
		out, err := newTestUseCase(r, nil).Create(context.Background(), valid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Booking.Reference != "BK-0123ABCD" {
			t.Errorf("unexpected reference %q", out.Booking.Reference)
		}
		if r.created.Hotel != "Ritz" || r.created.Currency != "EUR" || r.created.CompletionStatus != "pending" {
			t.Errorf("unexpected fields: %+v", r.created.BookingFields)
		}
	})

	cases := []struct {
		name string
		mod  func(*booking.CreateInput)
		want error
	}{
		{"missing hotel", func(in *booking.CreateInput) { in.Hotel = "" }, booking.ErrInvalidPayload},
		{"check-out before check-in", func(in *booking.CreateInput) { in.CheckOut = "2024-01-27" }, booking.ErrInvalidDates},
		{"same day", func(in *booking.CreateInput) { in.CheckOut = "2024-01-28T18:00:00Z" }, booking.ErrInvalidDates},
		{"unparseable date", func(in *booking.CreateInput) { in.CheckIn = "soon" }, booking.ErrInvalidDates},
		{"negative total", func(in *booking.CreateInput) { in.Total = "-1" }, booking.ErrInvalidTotal},
		{"non-numeric total", func(in *booking.CreateInput) { in.Total = "abc" }, booking.ErrInvalidTotal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.mod(&in)
			if _, err := newTestUseCase(newFakeRepo(), nil).Create(context.Background(), in); !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("duplicate reference", func(t *testing.T) {
		r := newFakeRepo()
		r.byRef["BK-1"] = booking.Booking{ID: "b0", Reference: "BK-1"}
		in := valid
		in.Reference = "BK-1"
		if _, err := newTestUseCase(r, nil).Create(context.Background(), in); !errors.Is(err, booking.ErrDuplicateReference) {
			t.Errorf("expected ErrDuplicateReference, got %v", err)
		}
	})

	t.Run("mirrors complete stays", func(t *testing.T) {
		r := newFakeRepo()
		cal := &fakeCalendar{}
		in := valid
		in.CompletionStatus = "complete"

		out, err := newTestUseCase(r, cal).Create(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cal.calls) != 1 || cal.calls[0].CheckIn.Day() != 28 {
			t.Fatalf("unexpected calendar calls: %+v", cal.calls)
		}
		if out.Booking.CalendarEventID != "evt-1" || r.eventSets[out.Booking.ID] != "evt-1" {
			t.Errorf("event id not recorded: %+v", out.Booking)
		}
	})
}

func TestUpsert(t *testing.T) {
	t.Run("stores values verbatim", func(t *testing.T) {
		r := newFakeRepo()
		_, err := newTestUseCase(r, nil).Upsert(context.Background(), booking.UpsertInput{
			Reference: "BK-1", Hotel: "Ritz", CheckIn: "not a date", Total: "n/a",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.upserted.CheckIn != "not a date" || r.upserted.Total != "n/a" {
			t.Errorf("values altered: %+v", r.upserted.BookingFields)
		}
	})

	t.Run("missing reference", func(t *testing.T) {
		if _, err := newTestUseCase(newFakeRepo(), nil).Upsert(context.Background(), booking.UpsertInput{}); !errors.Is(err, booking.ErrInvalidPayload) {
			t.Errorf("expected ErrInvalidPayload, got %v", err)
		}
	})

	t.Run("calendar failure is not returned", func(t *testing.T) {
		cal := &fakeCalendar{err: errors.New("quota")}
		out, err := newTestUseCase(newFakeRepo(), cal).Upsert(context.Background(), booking.UpsertInput{
			Reference: "BK-1", Hotel: "Ritz", CheckIn: "2024-03-01", CheckOut: "2024-03-04", CompletionStatus: "complete",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cal.calls) != 1 || out.Booking.CalendarEventID != "" {
			t.Errorf("unexpected mirror result: %+v", out.Booking)
		}
	})

	t.Run("skips stays that are not complete", func(t *testing.T) {
		cal := &fakeCalendar{}
		_, err := newTestUseCase(newFakeRepo(), cal).Upsert(context.Background(), booking.UpsertInput{
			Reference: "BK-1", CheckIn: "2024-03-01", CheckOut: "2024-03-04", CompletionStatus: "pending",
		})
		if err != nil || len(cal.calls) != 0 {
			t.Errorf("expected no calendar call, got %d (%v)", len(cal.calls), err)
		}
	})
}

func TestList(t *testing.T) {
	r := newFakeRepo()
	uc := newTestUseCase(r, nil)

	if _, err := uc.List(context.Background(), booking.ListInput{Month: 3, Year: 2024, Limit: 20}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.listOpt.CheckInPrefix != "2024-03" {
		t.Errorf("unexpected prefix %q", r.listOpt.CheckInPrefix)
	}

	if _, err := uc.List(context.Background(), booking.ListInput{Month: 3}); !errors.Is(err, booking.ErrInvalidPeriodFilter) {
		t.Errorf("expected ErrInvalidPeriodFilter, got %v", err)
	}

	if _, err := uc.ListComplete(context.Background()); err != nil || r.listOpt.Status != "complete" || r.listOpt.Limit != 0 {
		t.Errorf("unexpected ListComplete options %+v (%v)", r.listOpt, err)
	}
}

func TestDetail(t *testing.T) {
	r := newFakeRepo()
	r.byRef["BK-1"] = booking.Booking{ID: "b1", Reference: "BK-1"}
	inv, pay := &fakeInvoiceUC{}, &fakePaymentUC{}
	uc := New(r, inv, pay, nil, log.NewNop())

	out, err := uc.Detail(context.Background(), "b1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Invoices) != 1 || len(out.Payments) != 2 {
		t.Errorf("unexpected related records: %+v", out)
	}
	if inv.listIn.BookingID != "b1" || pay.listIn.BookingID != "b1" {
		t.Errorf("related lookups not filtered by booking")
	}

	if _, err := uc.Detail(context.Background(), "missing"); !errors.Is(err, booking.ErrBookingNotFound) {
		t.Errorf("expected ErrBookingNotFound, got %v", err)
	}
}
