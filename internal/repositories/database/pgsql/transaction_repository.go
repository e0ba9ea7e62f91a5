package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/erp_backoffice/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(db DB) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{db: db}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func toModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.ID,
		OrganizationID:  d.OrganizationID,
		TransactionType: string(d.Type),
		Amount:          d.Amount,
		CashierID:       d.CashierID,
		CustomerID:      d.CustomerID,
		CreatedAt:       d.CreatedAt,
	}
}

func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		ID:             m.TransactionID,
		OrganizationID: m.OrganizationID,
		Type:           domain.TransactionType(m.TransactionType),
		Amount:         m.Amount,
		CashierID:      m.CashierID,
		CustomerID:     m.CustomerID,
		CreatedAt:      m.CreatedAt,
	}
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)
	query := `
		INSERT INTO transactions (transaction_id, organization_id, transaction_type, amount, cashier_id, customer_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.db.Exec(ctx, query, m.TransactionID, m.OrganizationID, m.TransactionType, m.Amount, m.CashierID, m.CustomerID, m.CreatedAt)
	if err != nil {
		return translateError(err)
	}
	return nil
}

// ListTransactionsSince returns the entries created at or after since, oldest first.
func (r *PgxTransactionRepository) ListTransactionsSince(ctx context.Context, organizationID string, since time.Time) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, organization_id, transaction_type, amount, cashier_id, customer_id, created_at
		FROM transactions
		WHERE organization_id = $1 AND created_at >= $2
		ORDER BY created_at, transaction_id;
	`
	rows, _ := r.db.Query(ctx, query, organizationID, since)
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions of organization %s: %w", organizationID, err)
	}
	txns := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		txns[i] = toDomainTransaction(m)
	}
	return txns, nil
}

func (r *PgxTransactionRepository) SumTransactions(ctx context.Context, organizationID string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE organization_id = $1;`
	var sum decimal.Decimal
	if err := r.db.QueryRow(ctx, query, organizationID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum transactions of organization %s: %w", organizationID, err)
	}
	return sum, nil
}
