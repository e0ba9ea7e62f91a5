package repositories

import (
	"context"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
)

type ExpenseWriter interface {
	SaveExpense(ctx context.Context, expense domain.Expense) error
}

type ExpenseRepositoryFacade interface {
	ExpenseWriter
}
