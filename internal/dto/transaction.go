package dto

import (
	"time"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

type TransactionResponse struct {
	ID         string                 `json:"id"`
	Type       domain.TransactionType `json:"type"`
	Amount     decimal.Decimal        `json:"amount"`
	CashierID  string                 `json:"cashierId"`
	CustomerID *string                `json:"customerId,omitempty"`
	CreatedAt  time.Time              `json:"createdAt"`
}

func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:         t.ID,
		Type:       t.Type,
		Amount:     t.Amount,
		CashierID:  t.CashierID,
		CustomerID: t.CustomerID,
		CreatedAt:  t.CreatedAt,
	}
}
