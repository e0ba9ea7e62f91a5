package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one signed ledger entry. The organization balance equals the
// sum of Amount over its rows.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	OrganizationID  string          `db:"organization_id"`
	TransactionType string          `db:"transaction_type"`
	Amount          decimal.Decimal `db:"amount"`
	CashierID       string          `db:"cashier_id"`
	CustomerID      *string         `db:"customer_id"`
	CreatedAt       time.Time       `db:"created_at"`
}
