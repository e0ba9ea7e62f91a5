package accounting

import (
	"testing"
	"time"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerBalance(t *testing.T) {
	// one sale of 100 with 10 paid
	totals := domain.CustomerLedgerTotals{
		PurchaseRemaining: decimal.Zero,
		SaleRemaining:     d("90"),
		CollectedFrom:     decimal.Zero,
		PaidToCustomer:    decimal.Zero,
	}
	assertDecimal(t, "-90", CustomerBalance(totals))

	totals.CollectedFrom = d("50")
	assertDecimal(t, "-40", CustomerBalance(totals))

	totals.PurchaseRemaining = d("100")
	totals.PaidToCustomer = d("-30")
	assertDecimal(t, "30", CustomerBalance(totals))
}

func TestBalanceSeries(t *testing.T) {
	now := time.Date(2024, 3, 30, 15, 0, 0, 0, time.UTC)
	txns := []domain.Transaction{
		{Amount: d("100"), CreatedAt: time.Date(2024, 3, 28, 9, 0, 0, 0, time.UTC)},
		{Amount: d("-30"), CreatedAt: time.Date(2024, 3, 30, 10, 0, 0, 0, time.UTC)},
		{Amount: d("50"), CreatedAt: time.Date(2024, 3, 30, 11, 0, 0, 0, time.UTC)},
		{Amount: d("25"), CreatedAt: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
	}
	original := make([]domain.Transaction, len(txns))
	copy(original, txns)

	points := BalanceSeries(d("245"), txns, now, domain.StatisticsWindowDays)
	require.Len(t, points, 30)

	assert.Equal(t, original, txns, "input must not be reordered")
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), points[0].Date)
	assert.Equal(t, time.Date(2024, 3, 30, 0, 0, 0, 0, time.UTC), points[29].Date)

	assertDecimal(t, "245", points[29].Balance) // today
	assertDecimal(t, "225", points[28].Balance) // 29th: today's +50 and -30 rolled back
	assertDecimal(t, "225", points[27].Balance) // 28th includes the +100
	assertDecimal(t, "125", points[26].Balance) // 27th
	assertDecimal(t, "125", points[9].Balance)  // 10th includes the +25
	assertDecimal(t, "100", points[8].Balance)  // 9th
	assertDecimal(t, "100", points[0].Balance)

	for i := 1; i < len(points); i++ {
		assert.True(t, points[i].Date.After(points[i-1].Date), "series must be ordered oldest to newest")
	}
}

func TestBalanceSeries_NoTransactions(t *testing.T) {
	points := BalanceSeries(d("12.5"), nil, time.Now(), 30)
	require.Len(t, points, 30)
	for _, p := range points {
		assertDecimal(t, "12.5", p.Balance)
	}
}

func TestWindowStart(t *testing.T) {
	now := time.Date(2024, 3, 30, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), WindowStart(now, 30))
}
