package repositories

import (
	"context"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

type ProductReader interface {
	FindProductByID(ctx context.Context, organizationID, productID string) (*domain.Product, error)
}

type ProductWriter interface {
	// SaveProduct returns a Conflict error for a duplicate barcode or description.
	SaveProduct(ctx context.Context, product domain.Product) error
	// UpdateProduct overwrites the editable fields of an existing product.
	UpdateProduct(ctx context.Context, product domain.Product) error
	// AdjustStock adds delta to the stock quantity in a single statement and
	// returns the product as it is after the change. The resulting quantity may
	// be negative; the caller decides whether to abort.
	AdjustStock(ctx context.Context, organizationID, productID string, delta int64) (*domain.Product, error)
	// Restock sets new prices and adds quantity to the stock in a single statement.
	Restock(ctx context.Context, organizationID, productID string, purchasePrice, sellingPrice decimal.Decimal, quantity int64) (*domain.Product, error)
}

type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
