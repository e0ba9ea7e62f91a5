package dto

import (
	"time"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

type CreateExpenseRequest struct {
	Description string          `json:"description" binding:"required,max=255"`
	Amount      decimal.Decimal `json:"amount"`
}

type ExpenseResponse struct {
	ID            string             `json:"id"`
	Description   string             `json:"description"`
	Amount        decimal.Decimal    `json:"amount"`
	TransactionID string             `json:"transactionId"`
	Cashier       domain.UserSummary `json:"cashier"`
	CreatedAt     time.Time          `json:"createdAt"`
}

func ToExpenseResponse(e *domain.ExpenseWithCashier) ExpenseResponse {
	return ExpenseResponse{
		ID:            e.ID,
		Description:   e.Description,
		Amount:        e.Amount,
		TransactionID: e.TransactionID,
		Cashier:       e.Cashier,
		CreatedAt:     e.CreatedAt,
	}
}
