package pgsql

import (
	"context"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/erp_backoffice/internal/models"
)

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(db DB) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{db: db}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

func toModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:      d.ID,
		OrganizationID: d.OrganizationID,
		Description:    d.Description,
		Amount:         d.Amount,
		CashierID:      d.CashierID,
		TransactionID:  d.TransactionID,
		CreatedAt:      d.CreatedAt,
	}
}

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := toModelExpense(expense)
	query := `
		INSERT INTO expenses (expense_id, organization_id, description, amount, cashier_id, transaction_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.db.Exec(ctx, query, m.ExpenseID, m.OrganizationID, m.Description, m.Amount, m.CashierID, m.TransactionID, m.CreatedAt)
	if err != nil {
		return translateError(err)
	}
	return nil
}
