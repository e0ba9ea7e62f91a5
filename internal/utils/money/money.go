// Package money holds the exact decimal helpers used for every monetary value.
// Amounts are expressed in base units and never pass through float64.
package money

import "github.com/shopspring/decimal"

// Percent returns amount * percent / 100 with no intermediate rounding.
func Percent(amount decimal.Decimal, percent int) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(int64(percent))).Shift(-2)
}

// Sum adds values exactly. The sum of nothing is zero.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// Format renders the exact value, e.g. 260.75 or -90.
func Format(amount decimal.Decimal) string {
	return amount.String()
}
