package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeInvoice             TransactionType = "INVOICE"
	TransactionTypeExpense             TransactionType = "EXPENSE"
	TransactionTypeBalanceAddition     TransactionType = "BALANCE_ADDITION"
	TransactionTypeCollectFromCustomer TransactionType = "COLLECT_FROM_CUSTOMER"
	TransactionTypePayToCustomer       TransactionType = "PAY_TO_CUSTOMER"
)

// Transaction is an append-only ledger row. Amount is signed: inflows are
// positive, outflows negative.
type Transaction struct {
	ID             string          `json:"id"`
	Type           TransactionType `json:"type"`
	Amount         decimal.Decimal `json:"amount"`
	CashierID      string          `json:"cashierId"`
	CustomerID     *string         `json:"customerId,omitempty"`
	OrganizationID string          `json:"organizationId"`
	CreatedAt      time.Time       `json:"createdAt"`
}
