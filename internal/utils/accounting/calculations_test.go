package accounting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(d(want)), "expected %s, got %s", want, got.String())
}

func TestCalculateLine(t *testing.T) {
	tests := []struct {
		name         string
		in           LineInput
		wantSubtotal string
		wantTotal    string
	}{
		{
			name:         "no discount",
			in:           LineInput{Price: d("100"), Quantity: 2, DiscountAmount: decimal.Zero},
			wantSubtotal: "200",
			wantTotal:    "200",
		},
		{
			name:         "percent and flat discount",
			in:           LineInput{Price: d("100"), Quantity: 1, DiscountPercent: 10, DiscountAmount: d("5")},
			wantSubtotal: "100",
			wantTotal:    "85",
		},
		{
			name:         "flat discount only",
			in:           LineInput{Price: d("12.5"), Quantity: 4, DiscountAmount: d("0.25")},
			wantSubtotal: "50",
			wantTotal:    "49.75",
		},
		{
			name:         "total may go negative",
			in:           LineInput{Price: d("10"), Quantity: 1, DiscountAmount: d("15")},
			wantSubtotal: "10",
			wantTotal:    "-5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateLine(tt.in)
			assertDecimal(t, tt.wantSubtotal, got.Subtotal)
			assertDecimal(t, tt.wantTotal, got.Total)
		})
	}
}

func TestCalculateInvoice_LayeredDiscounts(t *testing.T) {
	item1 := CalculateLine(LineInput{Price: d("100"), Quantity: 2, DiscountAmount: decimal.Zero})
	item2 := CalculateLine(LineInput{Price: d("100"), Quantity: 1, DiscountPercent: 10, DiscountAmount: d("5")})

	got := CalculateInvoice(InvoiceInput{
		ItemTotals:      []decimal.Decimal{item1.Total, item2.Total},
		DiscountPercent: 5,
		DiscountAmount:  d("10"),
		Paid:            d("200"),
	})

	assertDecimal(t, "285", got.Subtotal)
	assertDecimal(t, "14.25", got.PercentDiscount)
	assertDecimal(t, "260.75", got.Total)
	assertDecimal(t, "60.75", got.Remaining)
}

func TestCalculateInvoice_IsDeterministic(t *testing.T) {
	in := InvoiceInput{
		ItemTotals:      []decimal.Decimal{d("33.33"), d("66.67")},
		DiscountPercent: 7,
		DiscountAmount:  d("1.5"),
		Paid:            d("0"),
	}
	first := CalculateInvoice(in)
	second := CalculateInvoice(in)
	assert.Equal(t, first, second)
	assertDecimal(t, "91.5", first.Total)
}

func TestCalculateInvoice_NotClamped(t *testing.T) {
	got := CalculateInvoice(InvoiceInput{
		ItemTotals:     []decimal.Decimal{d("10")},
		DiscountAmount: d("20"),
		Paid:           decimal.Zero,
	})
	assertDecimal(t, "-10", got.Total)
	assertDecimal(t, "-10", got.Remaining)
}
