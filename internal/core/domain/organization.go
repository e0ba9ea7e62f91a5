package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Organization is a tenant. Balance is the running cash total and only moves
// together with a recorded ledger transaction.
type Organization struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Slug    string          `json:"slug"`
	Balance decimal.Decimal `json:"balance"`
	AuditFields
}

// BalancePoint is the organization balance at the end of one calendar day (UTC).
type BalancePoint struct {
	Date    time.Time       `json:"date"`
	Balance decimal.Decimal `json:"balance"`
}

// OrganizationStatistics summarizes the last StatisticsWindowDays days.
type OrganizationStatistics struct {
	Name             string          `json:"name"`
	Balance          decimal.Decimal `json:"balance"`
	TransactionCount int             `json:"transactionCount"`
	BalanceAtDate    []BalancePoint  `json:"balanceAtDate"`
}

const StatisticsWindowDays = 30
