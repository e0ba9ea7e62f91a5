package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceType string

const (
	InvoiceTypeSale     InvoiceType = "SALE"
	InvoiceTypePurchase InvoiceType = "PURCHASE"
)

// Invoice is immutable once created. Remaining always equals Total - Paid.
type Invoice struct {
	ID              string          `json:"id"`
	Type            InvoiceType     `json:"type"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DiscountPercent int             `json:"discountPercent"`
	DiscountAmount  decimal.Decimal `json:"discountAmount"`
	Total           decimal.Decimal `json:"total"`
	Paid            decimal.Decimal `json:"paid"`
	Remaining       decimal.Decimal `json:"remaining"`
	CustomerID      *string         `json:"customerId,omitempty"`
	CashierID       string          `json:"cashierId"`
	OrganizationID  string          `json:"organizationId"`
	TransactionID   string          `json:"transactionId"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// InvoiceItem snapshots the product at the time of the invoice so later
// product edits never change a stored invoice.
type InvoiceItem struct {
	ID              string          `json:"id"`
	InvoiceID       string          `json:"invoiceId"`
	ProductID       *string         `json:"productId,omitempty"`
	Barcode         *string         `json:"barcode,omitempty"`
	Description     string          `json:"description"`
	PurchasePrice   decimal.Decimal `json:"purchasePrice"`
	SellingPrice    decimal.Decimal `json:"sellingPrice"`
	Price           decimal.Decimal `json:"price"`
	Quantity        int64           `json:"quantity"`
	DiscountPercent int             `json:"discountPercent"`
	DiscountAmount  decimal.Decimal `json:"discountAmount"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Total           decimal.Decimal `json:"total"`
}

type InvoiceWithRelations struct {
	Invoice
	Customer *Customer     `json:"customer,omitempty"`
	Cashier  UserSummary   `json:"cashier"`
	Items    []InvoiceItem `json:"items"`
}

// InvoiceFilter selects a page of invoices. Type is optional.
type InvoiceFilter struct {
	Type   *InvoiceType
	Limit  int
	Offset int
}
