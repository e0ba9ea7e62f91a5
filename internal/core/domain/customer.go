package domain

import "github.com/shopspring/decimal"

// Customer has no stored balance; see CustomerLedgerTotals.
type Customer struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Address        *string `json:"address,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	OrganizationID string  `json:"organizationId"`
	AuditFields
}

// CustomerLedgerTotals are the four sums a customer's balance is derived from.
// PaidToCustomer is already negative because pay transactions are stored as outflows.
type CustomerLedgerTotals struct {
	PurchaseRemaining decimal.Decimal
	SaleRemaining     decimal.Decimal
	CollectedFrom     decimal.Decimal
	PaidToCustomer    decimal.Decimal
}

type CustomerWithBalance struct {
	Customer
	Balance decimal.Decimal `json:"balance"`
}
