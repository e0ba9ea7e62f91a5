package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Expense struct {
	ExpenseID      string          `db:"expense_id"`
	OrganizationID string          `db:"organization_id"`
	Description    string          `db:"description"`
	Amount         decimal.Decimal `db:"amount"`
	CashierID      string          `db:"cashier_id"`
	TransactionID  string          `db:"transaction_id"`
	CreatedAt      time.Time       `db:"created_at"`
}
