package http

import (
	"travel-backoffice/internal/invoice"
	paymenthttp "travel-backoffice/internal/payment/delivery/http"
	"travel-backoffice/pkg/response"
)

// --- Request DTOs ---

type listReq struct {
	BookingID string `form:"booking_id"`
	Status    string `form:"status" binding:"omitempty,oneof=unpaid paid void"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}

func (r listReq) toInput() invoice.ListInput {
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
	return invoice.ListInput{
		BookingID: r.BookingID,
		Status:    r.Status,
		Limit:     limit,
		Offset:    offset,
	}
}

// --- Response DTOs ---

// InvoiceResp is the JSON view of an invoice, shared with the booking detail view.
type InvoiceResp struct {
	ID               string             `json:"id"`
	BookingID        string             `json:"booking_id"`
	BookingReference string             `json:"booking_reference"`
	Number           string             `json:"number"`
	Amount           string             `json:"amount"`
	Currency         string             `json:"currency"`
	Status           string             `json:"status"`
	IssuedAt         response.DateTime  `json:"issued_at"`
	DueAt            *response.DateTime `json:"due_at,omitempty"`
	CreatedAt        response.DateTime  `json:"created_at"`
}

// NewInvoiceResp renders an invoice.
func NewInvoiceResp(inv invoice.Invoice) InvoiceResp {
	resp := InvoiceResp{
		ID:               inv.ID,
		BookingID:        inv.BookingID,
		BookingReference: inv.BookingReference,
		Number:           inv.Number,
		Amount:           inv.Amount,
		Currency:         inv.Currency,
		Status:           inv.Status,
		IssuedAt:         response.DateTime(inv.IssuedAt),
		CreatedAt:        response.DateTime(inv.CreatedAt),
	}
	if inv.DueAt != nil {
		due := response.DateTime(*inv.DueAt)
		resp.DueAt = &due
	}
	return resp
}

type listResp struct {
	Invoices []InvoiceResp `json:"invoices"`
	Total    int           `json:"total"`
	Limit    int           `json:"limit"`
	Offset   int           `json:"offset"`
}

func (h *handler) newListResp(out invoice.ListOutput) listResp {
	invoices := make([]InvoiceResp, len(out.Invoices))
	for i, inv := range out.Invoices {
		invoices[i] = NewInvoiceResp(inv)
	}
	return listResp{
		Invoices: invoices,
		Total:    out.Total,
		Limit:    out.Limit,
		Offset:   out.Offset,
	}
}

type detailResp struct {
	Invoice  InvoiceResp               `json:"invoice"`
	Payments []paymenthttp.PaymentResp `json:"payments"`
}

func (h *handler) newDetailResp(out invoice.DetailOutput) detailResp {
	payments := make([]paymenthttp.PaymentResp, len(out.Payments))
	for i, p := range out.Payments {
		payments[i] = paymenthttp.NewPaymentResp(p)
	}
	return detailResp{
		Invoice:  NewInvoiceResp(out.Invoice),
		Payments: payments,
	}
}
