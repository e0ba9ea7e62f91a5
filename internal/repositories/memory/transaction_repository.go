package memory

import (
	"context"
	"sort"
	"time"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

func (r *repo) SaveTransaction(_ context.Context, txn domain.Transaction) error {
	return r.write(func(st *state) error {
		st.transactions = append(st.transactions, txn)
		return nil
	})
}

func (r *repo) ListTransactionsSince(_ context.Context, organizationID string, since time.Time) ([]domain.Transaction, error) {
	var out []domain.Transaction
	err := r.read(func(st *state) error {
		for _, txn := range st.transactions {
			if txn.OrganizationID == organizationID && !txn.CreatedAt.Before(since) {
				out = append(out, txn)
			}
		}
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
		return nil
	})
	return out, err
}

func (r *repo) SumTransactions(_ context.Context, organizationID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	err := r.read(func(st *state) error {
		for _, txn := range st.transactions {
			if txn.OrganizationID == organizationID {
				sum = sum.Add(txn.Amount)
			}
		}
		return nil
	})
	return sum, err
}

func (r *repo) SaveExpense(_ context.Context, expense domain.Expense) error {
	return r.write(func(st *state) error {
		st.expenses[expense.ID] = expense
		return nil
	})
}
