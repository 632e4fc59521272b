package http

import (
	"travel-backoffice/internal/booking"
	invoicehttp "travel-backoffice/internal/invoice/delivery/http"
	paymenthttp "travel-backoffice/internal/payment/delivery/http"
	"travel-backoffice/pkg/response"
)

// --- Request DTOs ---

type listReq struct {
	Status string `form:"status"`
	Hotel  string `form:"hotel"`
	Month  int    `form:"month" binding:"omitempty,min=1,max=12"`
	Year   int    `form:"year" binding:"omitempty,min=1970,max=9999"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listReq) toInput() booking.ListInput {
	limit := r.Limit
	switch {
	case limit <= 0:
		limit = 20
	case limit > 100:
		limit = 100
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return booking.ListInput{
		Status: r.Status,
		Hotel:  r.Hotel,
		Month:  r.Month,
		Year:   r.Year,
		Limit:  limit,
		Offset: offset,
	}
}

type createReq struct {
	Reference        string `json:"reference"`
	CustomerName     string `json:"customer_name" binding:"required"`
	CustomerEmail    string `json:"customer_email" binding:"omitempty,email"`
	Hotel            string `json:"hotel" binding:"required"`
	CheckIn          string `json:"check_in" binding:"required"`
	CheckOut         string `json:"check_out" binding:"required"`
	Total            string `json:"total" binding:"required"`
	Currency         string `json:"currency" binding:"omitempty,len=3"`
	CompletionStatus string `json:"completion_status"`
}

func (r createReq) toInput() booking.CreateInput {
	return booking.CreateInput{
		Reference:        r.Reference,
		CustomerName:     r.CustomerName,
		CustomerEmail:    r.CustomerEmail,
		Hotel:            r.Hotel,
		CheckIn:          r.CheckIn,
		CheckOut:         r.CheckOut,
		Total:            r.Total,
		Currency:         r.Currency,
		CompletionStatus: r.CompletionStatus,
	}
}

// --- Response DTOs ---

type bookingResp struct {
	ID               string            `json:"id"`
	Reference        string            `json:"reference"`
	CustomerName     string            `json:"customer_name"`
	CustomerEmail    string            `json:"customer_email"`
	Hotel            string            `json:"hotel"`
	CheckIn          string            `json:"check_in"`
	CheckOut         string            `json:"check_out"`
	Total            string            `json:"total"`
	Currency         string            `json:"currency"`
	CompletionStatus string            `json:"completion_status"`
	CalendarEventID  string            `json:"calendar_event_id,omitempty"`
	CreatedAt        response.DateTime `json:"created_at"`
	UpdatedAt        response.DateTime `json:"updated_at"`
}

func newBookingResp(b booking.Booking) bookingResp {
	return bookingResp{
		ID:               b.ID,
		Reference:        b.Reference,
		CustomerName:     b.CustomerName,
		CustomerEmail:    b.CustomerEmail,
		Hotel:            b.Hotel,
		CheckIn:          b.CheckIn,
		CheckOut:         b.CheckOut,
		Total:            b.Total,
		Currency:         b.Currency,
		CompletionStatus: b.CompletionStatus,
		CalendarEventID:  b.CalendarEventID,
		CreatedAt:        response.DateTime(b.CreatedAt),
		UpdatedAt:        response.DateTime(b.UpdatedAt),
	}
}

type listResp struct {
	Bookings []bookingResp `json:"bookings"`
	Total    int           `json:"total"`
	Limit    int           `json:"limit"`
	Offset   int           `json:"offset"`
}

func (h *handler) newListResp(out booking.ListOutput) listResp {
	bookings := make([]bookingResp, len(out.Bookings))
	for i, b := range out.Bookings {
		bookings[i] = newBookingResp(b)
	}
	return listResp{
		Bookings: bookings,
		Total:    out.Total,
		Limit:    out.Limit,
		Offset:   out.Offset,
	}
}

type detailResp struct {
	Booking  bookingResp               `json:"booking"`
	Invoices []invoicehttp.InvoiceResp `json:"invoices"`
	Payments []paymenthttp.PaymentResp `json:"payments"`
}

func (h *handler) newDetailResp(out booking.DetailOutput) detailResp {
	invoices := make([]invoicehttp.InvoiceResp, len(out.Invoices))
	for i, inv := range out.Invoices {
		invoices[i] = invoicehttp.NewInvoiceResp(inv)
	}
	payments := make([]paymenthttp.PaymentResp, len(out.Payments))
	for i, p := range out.Payments {
		payments[i] = paymenthttp.NewPaymentResp(p)
	}
	return detailResp{
		Booking:  newBookingResp(out.Booking),
		Invoices: invoices,
		Payments: payments,
	}
}
