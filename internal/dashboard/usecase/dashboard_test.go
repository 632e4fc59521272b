package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-backoffice/internal/booking"
	"travel-backoffice/internal/dashboard"
	invoicerepo "travel-backoffice/internal/invoice/repository"
	paymentrepo "travel-backoffice/internal/payment/repository"
	"travel-backoffice/pkg/log"
	"travel-backoffice/pkg/stay"
)

type fakeBookingUC struct {
	booking.UseCase
	bookings []booking.Booking
	calls    atomic.Int32
	err      error
}

func (f *fakeBookingUC) ListComplete(context.Context) ([]booking.Booking, error) {
	f.calls.Add(1)
	return f.bookings, f.err
}

type fakeInvoiceRepo struct {
	invoicerepo.Repository
	opt invoicerepo.CountInvoicesOptions
	n   int
}

func (f *fakeInvoiceRepo) CountInvoices(_ context.Context, opt invoicerepo.CountInvoicesOptions) (int, error) {
	f.opt = opt
	return f.n, nil
}

type fakePaymentRepo struct {
	paymentrepo.Repository
	opt paymentrepo.CountPaymentsOptions
	n   int
}

func (f *fakePaymentRepo) CountPayments(_ context.Context, opt paymentrepo.CountPaymentsOptions) (int, error) {
	f.opt = opt
	return f.n, nil
}

func complete(hotel, in, out, total string) booking.Booking {
	return booking.Booking{Hotel: hotel, CheckIn: in, CheckOut: out, Total: total, CompletionStatus: stay.CompletionComplete}
}

func TestSummary(t *testing.T) {
	b := &fakeBookingUC{bookings: []booking.Booking{
		complete("Ritz", "2024-01-28", "2024-02-03", "600"),
		complete("Savoy", "2024-02-10", "2024-02-12", "250.50"),
	}}
	inv, pay := &fakeInvoiceRepo{n: 4}, &fakePaymentRepo{n: 2}
	uc := New(b, inv, pay, time.Minute, log.NewNop())

	out, err := uc.Summary(context.Background(), dashboard.SummaryInput{Month: 2, Year: 2024})
	require.NoError(t, err)

	assert.Equal(t, []stay.HotelNights{{Hotel: "Ritz", Nights: 3}, {Hotel: "Savoy", Nights: 2}}, out.NightsByHotel)
	assert.Equal(t, []stay.HotelTotal{{Hotel: "Savoy", Total: 250.5}}, out.TotalByHotel)
	assert.InDelta(t, 250.5, out.GrandTotal, 1e-9)
	assert.Equal(t, 2, out.CompleteBookings)
	assert.Equal(t, 4, out.InvoicesIssued)
	assert.Equal(t, 2, out.PaymentsReceived)

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), inv.opt.IssuedFrom)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), inv.opt.IssuedTo)
	assert.Equal(t, "completed", pay.opt.Status)

	t.Run("cached", func(t *testing.T) {
		_, err := uc.Summary(context.Background(), dashboard.SummaryInput{Month: 2, Year: 2024})
		require.NoError(t, err)
		assert.EqualValues(t, 1, b.calls.Load())
	})
}

func TestSummaryErrors(t *testing.T) {
	uc := New(&fakeBookingUC{err: errors.New("db down")}, &fakeInvoiceRepo{}, &fakePaymentRepo{}, 0, log.NewNop())

	for _, in := range []dashboard.SummaryInput{{Month: 0, Year: 2024}, {Month: 13, Year: 2024}, {Month: 1, Year: 1969}} {
		_, err := uc.Summary(context.Background(), in)
		assert.ErrorIs(t, err, dashboard.ErrInvalidPeriod, "%+v", in)
	}

	_, err := uc.Summary(context.Background(), dashboard.SummaryInput{Month: 1, Year: 2024})
	assert.EqualError(t, err, "db down")
}

func TestRevenue(t *testing.T) {
	b := &fakeBookingUC{bookings: []booking.Booking{
		complete("Ritz", "2024-01-28", "2024-02-03", "600"),
		complete("Savoy", "2024-03-10", "2024-03-12", "100"),
		complete("Savoy", "2023-03-10", "2023-03-12", "999"),
	}}
	uc := New(b, &fakeInvoiceRepo{}, &fakePaymentRepo{}, 0, log.NewNop())

	out, err := uc.Revenue(context.Background(), dashboard.RevenueInput{Year: 2024})
	require.NoError(t, err)
	require.Len(t, out.Months, 12)
	assert.Equal(t, 1, out.Months[0].Month)
	assert.InDelta(t, 600, out.Months[0].Total, 1e-9)
	assert.Zero(t, out.Months[1].Total)
	assert.InDelta(t, 100, out.Months[2].Total, 1e-9)

	_, err = uc.Revenue(context.Background(), dashboard.RevenueInput{Year: 10000})
	assert.ErrorIs(t, err, dashboard.ErrInvalidPeriod)
}
