package repositories

import (
	"context"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
)

type InvoiceReader interface {
	FindInvoiceByID(ctx context.Context, organizationID, invoiceID string) (*domain.InvoiceWithRelations, error)
	// ListInvoices returns newest first.
	ListInvoices(ctx context.Context, organizationID string, filter domain.InvoiceFilter) ([]domain.InvoiceWithRelations, error)
	CountInvoices(ctx context.Context, organizationID string, filter domain.InvoiceFilter) (int64, error)
}

type InvoiceWriter interface {
	// SaveInvoice persists the invoice and its items together.
	SaveInvoice(ctx context.Context, invoice domain.Invoice, items []domain.InvoiceItem) error
}

type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
