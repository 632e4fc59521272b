package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"travel-backoffice/internal/booking"
	"travel-backoffice/internal/dashboard"
	invoicerepo "travel-backoffice/internal/invoice/repository"
	"travel-backoffice/internal/payment"
	paymentrepo "travel-backoffice/internal/payment/repository"
	"travel-backoffice/pkg/stay"
)

// Summary computes the figures of one month. Bookings and counts load concurrently.
func (uc *implUseCase) Summary(ctx context.Context, input dashboard.SummaryInput) (dashboard.SummaryOutput, error) {
	if !validMonth(input.Month) || !validYear(input.Year) {
		return dashboard.SummaryOutput{}, dashboard.ErrInvalidPeriod
	}

	key := fmt.Sprintf("%04d-%02d", input.Year, input.Month)
	if uc.summaries != nil {
		if out, ok := uc.summaries.Get(key); ok {
			return out, nil
		}
	}

	from := time.Date(input.Year, time.Month(input.Month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	var (
		bookings []booking.Booking
		invoices int
		payments int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bookings, err = uc.bookingUC.ListComplete(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		invoices, err = uc.invoiceRepo.CountInvoices(gctx, invoicerepo.CountInvoicesOptions{IssuedFrom: from, IssuedTo: to})
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = uc.paymentRepo.CountPayments(gctx, paymentrepo.CountPaymentsOptions{
			Status:   payment.StatusCompleted,
			PaidFrom: from,
			PaidTo:   to,
		})
		return err
	})
	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "uc.Summary: %v", err)
		return dashboard.SummaryOutput{}, err
	}

	stays := toStays(bookings)
	month := time.Month(input.Month)
	out := dashboard.SummaryOutput{
		Month:            input.Month,
		Year:             input.Year,
		NightsByHotel:    stay.NightsByHotel(stays, month, input.Year),
		TotalByHotel:     stay.TotalByHotel(stays, month, input.Year),
		GrandTotal:       stay.GrandTotal(stays, month, input.Year),
		CompleteBookings: len(bookings),
		InvoicesIssued:   invoices,
		PaymentsReceived: payments,
	}

	if uc.summaries != nil {
		uc.summaries.Add(key, out)
	}
	return out, nil
}

// Revenue returns the grand total of each month of a year.
func (uc *implUseCase) Revenue(ctx context.Context, input dashboard.RevenueInput) (dashboard.RevenueOutput, error) {
	if !validYear(input.Year) {
		return dashboard.RevenueOutput{}, dashboard.ErrInvalidPeriod
	}
	if uc.revenues != nil {
		if out, ok := uc.revenues.Get(input.Year); ok {
			return out, nil
		}
	}

	bookings, err := uc.bookingUC.ListComplete(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Revenue ListComplete: %v", err)
		return dashboard.RevenueOutput{}, err
	}

	stays := toStays(bookings)
	out := dashboard.RevenueOutput{Year: input.Year, Months: make([]dashboard.MonthRevenue, 0, 12)}
	for m := time.January; m <= time.December; m++ {
		out.Months = append(out.Months, dashboard.MonthRevenue{
			Month: int(m),
			Total: stay.GrandTotal(stays, m, input.Year),
		})
	}

	if uc.revenues != nil {
		uc.revenues.Add(input.Year, out)
	}
	return out, nil
}

func toStays(bookings []booking.Booking) []stay.Booking {
	stays := make([]stay.Booking, len(bookings))
	for i, b := range bookings {
		stays[i] = b.Stay()
	}
	return stays
}

func validMonth(m int) bool { return m >= 1 && m <= 12 }

func validYear(y int) bool { return y >= 1970 && y <= 9999 }
