package services

import (
	"context"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/SscSPs/erp_backoffice/internal/dto"
)

// InvoiceWriterSvc creates invoices. Each call is one atomic unit of work
// covering stock, ledger, balance and the invoice itself.
type InvoiceWriterSvc interface {
	CreateSale(ctx context.Context, orgSlug string, req dto.CreateSaleInvoiceRequest, userID string) (*domain.InvoiceWithRelations, error)
	CreatePurchase(ctx context.Context, orgSlug string, req dto.CreatePurchaseInvoiceRequest, userID string) (*domain.InvoiceWithRelations, error)
}

type InvoiceReaderSvc interface {
	GetAllInvoices(ctx context.Context, orgSlug string, params dto.ListInvoicesParams) (*dto.InvoicePage, error)
	FindByID(ctx context.Context, orgSlug string, invoiceID string) (*domain.InvoiceWithRelations, error)
}

type InvoiceSvcFacade interface {
	InvoiceWriterSvc
	InvoiceReaderSvc
}
