package dto

import (
	"time"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest is also used for direct edits; every field is replaced.
type CreateProductRequest struct {
	Barcode       *string         `json:"barcode" binding:"omitempty,max=64"`
	Description   string          `json:"description" binding:"required,max=255"`
	PurchasePrice decimal.Decimal `json:"purchasePrice" binding:"dgte0"`
	SellingPrice  decimal.Decimal `json:"sellingPrice" binding:"dgte0"`
	StockQuantity int64           `json:"stockQuantity" binding:"min=0"`
}

type UpdateProductRequest = CreateProductRequest

type ProductResponse struct {
	ID            string          `json:"id"`
	Barcode       *string         `json:"barcode,omitempty"`
	Description   string          `json:"description"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
	StockQuantity int64           `json:"stockQuantity"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Barcode:       p.Barcode,
		Description:   p.Description,
		PurchasePrice: p.PurchasePrice,
		SellingPrice:  p.SellingPrice,
		StockQuantity: p.StockQuantity,
		CreatedAt:     p.CreatedAt,
		LastUpdatedAt: p.LastUpdatedAt,
	}
}
