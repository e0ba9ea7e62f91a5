package models

import "github.com/shopspring/decimal"

type Product struct {
	ProductID      string          `db:"product_id"`
	OrganizationID string          `db:"organization_id"`
	Barcode        *string         `db:"barcode"`
	Description    string          `db:"description"`
	PurchasePrice  decimal.Decimal `db:"purchase_price"`
	SellingPrice   decimal.Decimal `db:"selling_price"`
	StockQuantity  int64           `db:"stock_quantity"`
	AuditFields
}
