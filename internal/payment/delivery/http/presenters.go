package http

import (
	"travel-backoffice/internal/payment"
	"travel-backoffice/pkg/response"
)

// --- Request DTOs ---

type listReq struct {
	BookingID string `form:"booking_id"`
	InvoiceID string `form:"invoice_id"`
	Status    string `form:"status" binding:"omitempty,oneof=pending completed failed refunded"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}

func (r listReq) toInput() payment.ListInput {
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
	return payment.ListInput{
		BookingID: r.BookingID,
		InvoiceID: r.InvoiceID,
		Status:    r.Status,
		Limit:     limit,
		Offset:    offset,
	}
}

// --- Response DTOs ---

type invoiceResp struct {
	ID       string `json:"id"`
	Number   string `json:"number"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

// PaymentResp is the JSON view of a payment, shared with the booking and invoice detail views.
type PaymentResp struct {
	ID         string             `json:"id"`
	ExternalID string             `json:"external_id"`
	BookingID  string             `json:"booking_id"`
	InvoiceID  string             `json:"invoice_id,omitempty"`
	Amount     string             `json:"amount"`
	Currency   string             `json:"currency"`
	Method     string             `json:"method"`
	Status     string             `json:"status"`
	PaidAt     *response.DateTime `json:"paid_at,omitempty"`
	CreatedAt  response.DateTime  `json:"created_at"`
}

// NewPaymentResp renders a payment.
func NewPaymentResp(p payment.Payment) PaymentResp {
	resp := PaymentResp{
		ID:         p.ID,
		ExternalID: p.ExternalID,
		BookingID:  p.BookingID,
		InvoiceID:  p.InvoiceID,
		Amount:     p.Amount,
		Currency:   p.Currency,
		Method:     p.Method,
		Status:     p.Status,
		CreatedAt:  response.DateTime(p.CreatedAt),
	}
	if p.PaidAt != nil {
		paid := response.DateTime(*p.PaidAt)
		resp.PaidAt = &paid
	}
	return resp
}

type listResp struct {
	Payments []PaymentResp `json:"payments"`
	Total    int           `json:"total"`
	Limit    int           `json:"limit"`
	Offset   int           `json:"offset"`
}

func (h *handler) newListResp(out payment.ListOutput) listResp {
	payments := make([]PaymentResp, len(out.Payments))
	for i, p := range out.Payments {
		payments[i] = NewPaymentResp(p)
	}
	return listResp{
		Payments: payments,
		Total:    out.Total,
		Limit:    out.Limit,
		Offset:   out.Offset,
	}
}

type detailResp struct {
	Payment PaymentResp  `json:"payment"`
	Invoice *invoiceResp `json:"invoice,omitempty"`
}

func (h *handler) newDetailResp(out payment.DetailOutput) detailResp {
	resp := detailResp{Payment: NewPaymentResp(out.Payment)}
	if inv := out.Payment.Invoice; inv != nil {
		resp.Invoice = &invoiceResp{
			ID:       inv.ID,
			Number:   inv.Number,
			Amount:   inv.Amount,
			Currency: inv.Currency,
			Status:   inv.Status,
		}
	}
	return resp
}
