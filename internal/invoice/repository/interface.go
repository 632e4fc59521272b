package repository

import (
	"context"

	"travel-backoffice/internal/invoice"
)

// Repository is the composed interface for the invoice data store.
type Repository interface {
	InvoiceRepository
}

// InvoiceRepository defines all data access methods for the Invoice entity.
type InvoiceRepository interface {
	UpsertInvoice(ctx context.Context, opt UpsertInvoiceOptions) (invoice.Invoice, error)
	GetOneInvoice(ctx context.Context, opt GetOneInvoiceOptions) (invoice.Invoice, error)
	ListInvoices(ctx context.Context, opt ListInvoicesOptions) ([]invoice.Invoice, int, error)
	CountInvoices(ctx context.Context, opt CountInvoicesOptions) (int, error)
}
