package domain

import "github.com/shopspring/decimal"

// Product is a stock keeping unit of an organization. StockQuantity never
// drops below zero once a unit of work commits.
type Product struct {
	ID             string          `json:"id"`
	Barcode        *string         `json:"barcode,omitempty"`
	Description    string          `json:"description"`
	PurchasePrice  decimal.Decimal `json:"purchasePrice"`
	SellingPrice   decimal.Decimal `json:"sellingPrice"`
	StockQuantity  int64           `json:"stockQuantity"`
	OrganizationID string          `json:"organizationId"`
	AuditFields
}

// BarcodeOrEmpty is used in messages where a missing barcode is printed blank.
func (p Product) BarcodeOrEmpty() string {
	if p.Barcode == nil {
		return ""
	}
	return *p.Barcode
}
