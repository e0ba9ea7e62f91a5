package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is linked 1:1 to a Transaction carrying the negated amount.
type Expense struct {
	ID             string          `json:"id"`
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	CashierID      string          `json:"cashierId"`
	OrganizationID string          `json:"organizationId"`
	TransactionID  string          `json:"transactionId"`
	CreatedAt      time.Time       `json:"createdAt"`
}

type ExpenseWithCashier struct {
	Expense
	Cashier UserSummary `json:"cashier"`
}
