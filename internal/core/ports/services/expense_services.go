package services

import (
	"context"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/SscSPs/erp_backoffice/internal/dto"
)

type ExpenseSvcFacade interface {
	CreateExpense(ctx context.Context, orgSlug string, req dto.CreateExpenseRequest, userID string) (*domain.ExpenseWithCashier, error)
}
