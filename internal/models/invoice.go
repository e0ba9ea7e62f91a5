package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Invoice struct {
	InvoiceID       string          `db:"invoice_id"`
	OrganizationID  string          `db:"organization_id"`
	InvoiceType     string          `db:"invoice_type"`
	Subtotal        decimal.Decimal `db:"subtotal"`
	DiscountPercent int             `db:"discount_percent"`
	DiscountAmount  decimal.Decimal `db:"discount_amount"`
	Total           decimal.Decimal `db:"total"`
	Paid            decimal.Decimal `db:"paid"`
	Remaining       decimal.Decimal `db:"remaining"`
	CustomerID      *string         `db:"customer_id"`
	CashierID       string          `db:"cashier_id"`
	TransactionID   string          `db:"transaction_id"`
	CreatedAt       time.Time       `db:"created_at"`
}

// InvoiceItem is a snapshot of a product at the time the invoice was written.
// ProductID is cleared if the product is later removed.
type InvoiceItem struct {
	InvoiceItemID   string          `db:"invoice_item_id"`
	InvoiceID       string          `db:"invoice_id"`
	ProductID       *string         `db:"product_id"`
	Barcode         *string         `db:"barcode"`
	Description     string          `db:"description"`
	PurchasePrice   decimal.Decimal `db:"purchase_price"`
	SellingPrice    decimal.Decimal `db:"selling_price"`
	Price           decimal.Decimal `db:"price"`
	Quantity        int64           `db:"quantity"`
	DiscountPercent int             `db:"discount_percent"`
	DiscountAmount  decimal.Decimal `db:"discount_amount"`
	Subtotal        decimal.Decimal `db:"subtotal"`
	Total           decimal.Decimal `db:"total"`
}
