package dto

import (
	"time"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaleItemRequest is one line of a sale. Price is the agreed unit price.
type SaleItemRequest struct {
	ProductID       string          `json:"productId" binding:"required,uuid"`
	Price           decimal.Decimal `json:"price" binding:"dgte0"`
	Quantity        int64           `json:"quantity" binding:"required,min=1"`
	DiscountPercent int             `json:"discountPercent" binding:"min=0,max=100"`
	DiscountAmount  decimal.Decimal `json:"discountAmount" binding:"dgte0"`
}

// CreateSaleInvoiceRequest is validated again by the invoice engine, which
// owns the empty-items and paid range checks.
type CreateSaleInvoiceRequest struct {
	CustomerID      *string           `json:"customerId" binding:"omitempty,uuid"`
	Items           []SaleItemRequest `json:"items" binding:"dive"`
	DiscountPercent int               `json:"discountPercent" binding:"min=0,max=100"`
	DiscountAmount  decimal.Decimal   `json:"discountAmount" binding:"dgte0"`
	Paid            decimal.Decimal   `json:"paid"`
}

// PurchaseItemRequest either restocks ProductID or creates a new product from
// Barcode and Description.
type PurchaseItemRequest struct {
	ProductID       *string         `json:"productId" binding:"omitempty,uuid"`
	Barcode         *string         `json:"barcode" binding:"omitempty,max=64"`
	Description     *string         `json:"description" binding:"omitempty,max=255"`
	PurchasePrice   decimal.Decimal `json:"purchasePrice" binding:"dgte0"`
	SellingPrice    decimal.Decimal `json:"sellingPrice" binding:"dgte0"`
	Quantity        int64           `json:"quantity" binding:"required,min=1"`
	DiscountPercent int             `json:"discountPercent" binding:"min=0,max=100"`
	DiscountAmount  decimal.Decimal `json:"discountAmount" binding:"dgte0"`
}

type CreatePurchaseInvoiceRequest struct {
	CustomerID      *string               `json:"customerId" binding:"omitempty,uuid"`
	Items           []PurchaseItemRequest `json:"items" binding:"dive"`
	DiscountPercent int                   `json:"discountPercent" binding:"min=0,max=100"`
	DiscountAmount  decimal.Decimal       `json:"discountAmount" binding:"dgte0"`
	Paid            decimal.Decimal       `json:"paid"`
}

// ListInvoicesParams defines query parameters for listing invoices.
type ListInvoicesParams struct {
	Page     int    `form:"page" binding:"omitempty,min=1,max=1000000"`
	PageSize int    `form:"pageSize" binding:"omitempty,min=1,max=100"`
	Type     string `form:"type" binding:"omitempty,oneof=SALE PURCHASE"`
}

type InvoiceItemResponse struct {
	ID              string          `json:"id"`
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

// InvoiceResponse carries money as decimal strings, e.g. "260.75".
type InvoiceResponse struct {
	ID              string                `json:"id"`
	Type            domain.InvoiceType    `json:"type"`
	Subtotal        decimal.Decimal       `json:"subtotal"`
	DiscountPercent int                   `json:"discountPercent"`
	DiscountAmount  decimal.Decimal       `json:"discountAmount"`
	Total           decimal.Decimal       `json:"total"`
	Paid            decimal.Decimal       `json:"paid"`
	Remaining       decimal.Decimal       `json:"remaining"`
	TransactionID   string                `json:"transactionId"`
	Customer        *CustomerResponse     `json:"customer,omitempty"`
	Cashier         domain.UserSummary    `json:"cashier"`
	Items           []InvoiceItemResponse `json:"items"`
	CreatedAt       time.Time             `json:"createdAt"`
}

type ListInvoicesResponse struct {
	Data       []InvoiceResponse `json:"data"`
	TotalCount int64             `json:"totalCount"`
}

// InvoicePage is what the invoice service returns for a listing.
type InvoicePage struct {
	Data       []domain.InvoiceWithRelations
	TotalCount int64
}

func ToInvoiceResponse(inv *domain.InvoiceWithRelations) InvoiceResponse {
	items := make([]InvoiceItemResponse, len(inv.Items))
	for i, it := range inv.Items {
		items[i] = InvoiceItemResponse{
			ID:              it.ID,
			ProductID:       it.ProductID,
			Barcode:         it.Barcode,
			Description:     it.Description,
			PurchasePrice:   it.PurchasePrice,
			SellingPrice:    it.SellingPrice,
			Price:           it.Price,
			Quantity:        it.Quantity,
			DiscountPercent: it.DiscountPercent,
			DiscountAmount:  it.DiscountAmount,
			Subtotal:        it.Subtotal,
			Total:           it.Total,
		}
	}

	res := InvoiceResponse{
		ID:              inv.ID,
		Type:            inv.Type,
		Subtotal:        inv.Subtotal,
		DiscountPercent: inv.DiscountPercent,
		DiscountAmount:  inv.DiscountAmount,
		Total:           inv.Total,
		Paid:            inv.Paid,
		Remaining:       inv.Remaining,
		TransactionID:   inv.TransactionID,
		Cashier:         inv.Cashier,
		Items:           items,
		CreatedAt:       inv.CreatedAt,
	}
	if inv.Customer != nil {
		c := ToCustomerResponse(inv.Customer)
		res.Customer = &c
	}
	return res
}

func ToListInvoicesResponse(page *InvoicePage) ListInvoicesResponse {
	data := make([]InvoiceResponse, len(page.Data))
	for i := range page.Data {
		data[i] = ToInvoiceResponse(&page.Data[i])
	}
	return ListInvoicesResponse{Data: data, TotalCount: page.TotalCount}
}
