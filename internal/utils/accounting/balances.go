package accounting

import (
	"sort"
	"time"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CustomerBalance derives a customer's balance. Negative means the customer
// owes the organization; positive means the organization owes the customer.
func CustomerBalance(t domain.CustomerLedgerTotals) decimal.Decimal {
	return t.PurchaseRemaining.
		Add(t.CollectedFrom).
		Sub(t.SaleRemaining).
		Add(t.PaidToCustomer)
}

// StartOfDay truncates t to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WindowStart is the first instant covered by a days-long series ending on now's day.
func WindowStart(now time.Time, days int) time.Time {
	return StartOfDay(now).AddDate(0, 0, -(days - 1))
}

// BalanceSeries replays transactions backward from the current balance and
// returns one point per day, oldest first. The point for a day is the balance
// after every transaction dated on or before that day. txns is not modified.
func BalanceSeries(current decimal.Decimal, txns []domain.Transaction, now time.Time, days int) []domain.BalancePoint {
	if days <= 0 {
		return []domain.BalancePoint{}
	}

	newestFirst := make([]domain.Transaction, len(txns))
	copy(newestFirst, txns)
	sort.SliceStable(newestFirst, func(i, j int) bool {
		return newestFirst[i].CreatedAt.After(newestFirst[j].CreatedAt)
	})

	points := make([]domain.BalancePoint, days)
	today := StartOfDay(now)
	running := current
	cursor := 0
	for i := 0; i < days; i++ {
		day := today.AddDate(0, 0, -i)
		dayEnd := day.AddDate(0, 0, 1)
		for cursor < len(newestFirst) && !newestFirst[cursor].CreatedAt.Before(dayEnd) {
			running = running.Sub(newestFirst[cursor].Amount)
			cursor++
		}
		points[days-1-i] = domain.BalancePoint{Date: day, Balance: running}
	}
	return points
}
