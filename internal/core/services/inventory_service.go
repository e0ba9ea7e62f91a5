package services

import (
	"context"
	"strings"
	"time"

	"github.com/SscSPs/erp_backoffice/internal/apperrors"
	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/erp_backoffice/internal/dto"
	"github.com/SscSPs/erp_backoffice/internal/platform/metrics"
	"github.com/google/uuid"
)

// InventoryAdjuster mutates stock inside the caller's unit of work.
type InventoryAdjuster struct {
	metrics *metrics.Metrics
}

func NewInventoryAdjuster(m *metrics.Metrics) *InventoryAdjuster {
	return &InventoryAdjuster{metrics: m}
}

// DecrementForSale removes quantity from stock in one statement and inspects
// the resulting value. A negative result fails with INSUFFICIENT_STOCK; the
// caller's rollback undoes the decrement.
func (a *InventoryAdjuster) DecrementForSale(ctx context.Context, products portsrepo.ProductWriter, orgID, productID string, quantity int64) (*domain.Product, error) {
	product, err := products.AdjustStock(ctx, orgID, productID, -quantity)
	if err != nil {
		return nil, err
	}
	if product.StockQuantity < 0 {
		a.metrics.StockRejected()
		return nil, apperrors.NewBadRequestError(apperrors.CodeInsufficientStock, product.Description, product.BarcodeOrEmpty())
	}
	return product, nil
}

// ReceivePurchase restocks an existing product with new prices, or creates
// one from the line when no product id is given.
func (a *InventoryAdjuster) ReceivePurchase(ctx context.Context, products portsrepo.ProductWriter, orgID string, line dto.PurchaseItemRequest, now time.Time) (*domain.Product, error) {
	if line.ProductID != nil {
		return products.Restock(ctx, orgID, *line.ProductID, line.PurchasePrice, line.SellingPrice, line.Quantity)
	}

	if line.Description == nil || strings.TrimSpace(*line.Description) == "" {
		return nil, apperrors.NewBadRequestError(apperrors.CodeProductDescriptionNeeded)
	}

	product := domain.Product{
		ID:             uuid.NewString(),
		Barcode:        normalizeBarcode(line.Barcode),
		Description:    strings.TrimSpace(*line.Description),
		PurchasePrice:  line.PurchasePrice,
		SellingPrice:   line.SellingPrice,
		StockQuantity:  line.Quantity,
		OrganizationID: orgID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := products.SaveProduct(ctx, product); err != nil {
		return nil, err
	}
	return &product, nil
}

// normalizeBarcode treats a blank barcode as absent so it never collides
// with the per-organization uniqueness rule.
func normalizeBarcode(barcode *string) *string {
	if barcode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*barcode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
