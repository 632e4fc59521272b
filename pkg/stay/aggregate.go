package stay

import (
	"sort"
	"strings"
	"time"
)

// monthNights returns the interval of nights attributed to month.
// A night belongs to the month holding the morning after it, so the interval
// runs from the last day of the previous month to the last day of this one.
func monthNights(month time.Month, year int) (time.Time, time.Time) {
	start := time.Date(year, month, 0, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	return start, end
}

func eligible(b Booking) (string, bool) {
	if b.CompletionStatus != CompletionComplete {
		return "", false
	}
	hotel := strings.TrimSpace(b.Hotel)
	return hotel, hotel != ""
}

// NightsByHotel returns the nights each hotel hosted in the given month,
// prorating stays that cross a month boundary.
func NightsByHotel(bookings []Booking, month time.Month, year int) []HotelNights {
	monthStart, monthEnd := monthNights(month, year)
	acc := make(map[string]int)

	for _, b := range bookings {
		hotel, ok := eligible(b)
		if !ok {
			continue
		}
		in, ok := ParseDay(b.CheckIn)
		if !ok {
			continue
		}
		out, ok := ParseDay(b.CheckOut)
		if !ok || !out.After(in) {
			continue
		}

		from, to := in, out
		if monthStart.After(from) {
			from = monthStart
		}
		if monthEnd.Before(to) {
			to = monthEnd
		}
		nights := daysBetween(from, to)
		if nights <= 0 {
			continue
		}
		acc[hotel] += nights
	}

	out := make([]HotelNights, 0, len(acc))
	for hotel, nights := range acc {
		if nights > 0 {
			out = append(out, HotelNights{Hotel: hotel, Nights: nights})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Nights != out[j].Nights {
			return out[i].Nights > out[j].Nights
		}
		return out[i].Hotel < out[j].Hotel
	})
	return out
}

// billed calls fn for every complete booking checking in during month with a valid total.
func billed(bookings []Booking, month time.Month, year int, fn func(hotel string, amount float64)) {
	for _, b := range bookings {
		hotel, ok := eligible(b)
		if !ok {
			continue
		}
		in, ok := ParseDay(b.CheckIn)
		if !ok || in.Month() != month || in.Year() != year {
			continue
		}
		amount, ok := ParseAmount(b.Total)
		if !ok {
			continue
		}
		fn(hotel, amount)
	}
}

// TotalByHotel sums booking totals per hotel for bookings checking in during month.
func TotalByHotel(bookings []Booking, month time.Month, year int) []HotelTotal {
	acc := make(map[string]float64)
	billed(bookings, month, year, func(hotel string, amount float64) {
		acc[hotel] += amount
	})

	out := make([]HotelTotal, 0, len(acc))
	for hotel, total := range acc {
		out = append(out, HotelTotal{Hotel: hotel, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Hotel < out[j].Hotel
	})
	return out
}

// GrandTotal sums every total counted by TotalByHotel.
func GrandTotal(bookings []Booking, month time.Month, year int) float64 {
	var sum float64
	billed(bookings, month, year, func(_ string, amount float64) {
		sum += amount
	})
	return sum
}
