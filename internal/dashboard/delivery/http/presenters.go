package http

import (
	"travel-backoffice/internal/dashboard"
	"travel-backoffice/pkg/stay"
)

// --- Request DTOs ---

type summaryReq struct {
	Month int `form:"month" binding:"required"`
	Year  int `form:"year" binding:"required"`
}

func (r summaryReq) toInput() dashboard.SummaryInput {
	return dashboard.SummaryInput{Month: r.Month, Year: r.Year}
}

type revenueReq struct {
	Year int `form:"year" binding:"required"`
}

func (r revenueReq) toInput() dashboard.RevenueInput {
	return dashboard.RevenueInput{Year: r.Year}
}

// --- Response DTOs ---

type summaryResp struct {
	Month            int                `json:"month"`
	Year             int                `json:"year"`
	NightsByHotel    []stay.HotelNights `json:"nights_by_hotel"`
	TotalByHotel     []stay.HotelTotal  `json:"total_by_hotel"`
	GrandTotal       float64            `json:"grand_total"`
	CompleteBookings int                `json:"complete_bookings"`
	InvoicesIssued   int                `json:"invoices_issued"`
	PaymentsReceived int                `json:"payments_received"`
}

func (h *handler) newSummaryResp(out dashboard.SummaryOutput) summaryResp {
	return summaryResp{
		Month:            out.Month,
		Year:             out.Year,
		NightsByHotel:    out.NightsByHotel,
		TotalByHotel:     out.TotalByHotel,
		GrandTotal:       out.GrandTotal,
		CompleteBookings: out.CompleteBookings,
		InvoicesIssued:   out.InvoicesIssued,
		PaymentsReceived: out.PaymentsReceived,
	}
}

type monthRevenueResp struct {
	Month int     `json:"month"`
	Total float64 `json:"total"`
}

type revenueResp struct {
	Year   int                `json:"year"`
	Months []monthRevenueResp `json:"months"`
}

func (h *handler) newRevenueResp(out dashboard.RevenueOutput) revenueResp {
	months := make([]monthRevenueResp, len(out.Months))
	for i, m := range out.Months {
		months[i] = monthRevenueResp{Month: m.Month, Total: m.Total}
	}
	return revenueResp{Year: out.Year, Months: months}
}
