package dashboard

import "travel-backoffice/pkg/stay"

type SummaryInput struct {
	Month int
	Year  int
}

// SummaryOutput holds the figures of one month.
type SummaryOutput struct {
	Month            int
	Year             int
	NightsByHotel    []stay.HotelNights
	TotalByHotel     []stay.HotelTotal
	GrandTotal       float64
	CompleteBookings int
	InvoicesIssued   int
	PaymentsReceived int
}

type RevenueInput struct {
	Year int
}

// MonthRevenue is the grand total billed in one month.
type MonthRevenue struct {
	Month int
	Total float64
}

// RevenueOutput holds twelve months, January first.
type RevenueOutput struct {
	Year   int
	Months []MonthRevenue
}
