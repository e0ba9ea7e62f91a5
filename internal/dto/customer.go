package dto

import (
	"time"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

type CreateCustomerRequest struct {
	Name    string  `json:"name" binding:"required,max=255"`
	Address *string `json:"address" binding:"omitempty,max=500"`
	Phone   *string `json:"phone" binding:"omitempty,max=32"`
}

// MoneyMovementRequest is the body of collect-from and pay-to customer calls.
type MoneyMovementRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   *string   `json:"address,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type CustomerBalanceResponse struct {
	CustomerResponse
	Balance decimal.Decimal `json:"balance"`
}

func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Address:   c.Address,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
	}
}

func ToCustomerBalanceResponse(c *domain.CustomerWithBalance) CustomerBalanceResponse {
	return CustomerBalanceResponse{
		CustomerResponse: ToCustomerResponse(&c.Customer),
		Balance:          c.Balance,
	}
}
