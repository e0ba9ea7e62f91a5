package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

type TransactionReader interface {
	// ListTransactionsSince returns the organization's transactions created at
	// or after since, oldest first.
	ListTransactionsSince(ctx context.Context, organizationID string, since time.Time) ([]domain.Transaction, error)
	// SumTransactions totals every signed amount ever recorded for the organization.
	SumTransactions(ctx context.Context, organizationID string) (decimal.Decimal, error)
}

type TransactionWriter interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
}

type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
