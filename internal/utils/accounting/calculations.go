package accounting

import (
	"github.com/SscSPs/erp_backoffice/internal/utils/money"
	"github.com/shopspring/decimal"
)

// LineInput is one invoice line. Price is the selling price for sales and the
// purchase price for purchases.
type LineInput struct {
	Price           decimal.Decimal
	Quantity        int64
	DiscountPercent int
	DiscountAmount  decimal.Decimal
}

type LineTotals struct {
	Subtotal        decimal.Decimal
	PercentDiscount decimal.Decimal
	Total           decimal.Decimal
}

// CalculateLine computes price*quantity less the percent discount and the flat discount.
func CalculateLine(in LineInput) LineTotals {
	subtotal := in.Price.Mul(decimal.NewFromInt(in.Quantity))
	percentDiscount := money.Percent(subtotal, in.DiscountPercent)
	return LineTotals{
		Subtotal:        subtotal,
		PercentDiscount: percentDiscount,
		Total:           subtotal.Sub(percentDiscount).Sub(in.DiscountAmount),
	}
}

type InvoiceInput struct {
	ItemTotals      []decimal.Decimal
	DiscountPercent int
	DiscountAmount  decimal.Decimal
	Paid            decimal.Decimal
}

type InvoiceTotals struct {
	Subtotal        decimal.Decimal
	PercentDiscount decimal.Decimal
	Total           decimal.Decimal
	Remaining       decimal.Decimal
}

// CalculateInvoice applies the invoice level discounts on top of the item
// totals, which already carry their own discounts. Total is not clamped; a
// negative total is left for the caller to reject.
func CalculateInvoice(in InvoiceInput) InvoiceTotals {
	subtotal := money.Sum(in.ItemTotals...)
	percentDiscount := money.Percent(subtotal, in.DiscountPercent)
	total := subtotal.Sub(percentDiscount).Sub(in.DiscountAmount)
	return InvoiceTotals{
		Subtotal:        subtotal,
		PercentDiscount: percentDiscount,
		Total:           total,
		Remaining:       total.Sub(in.Paid),
	}
}
