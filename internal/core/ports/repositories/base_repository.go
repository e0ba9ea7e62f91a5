package repositories

import "context"

// TxFunc is the body of a unit of work. Every repository in repos is bound to
// the same store transaction.
type TxFunc func(ctx context.Context, repos RepositoryProvider) error

// TransactionManager runs units of work. It begins a store transaction, calls
// fn with transaction-scoped repositories, commits when fn returns nil and
// rolls back otherwise. The error from fn is returned unchanged.
type TransactionManager interface {
	// WithinTx runs a read-write unit of work.
	WithinTx(ctx context.Context, fn TxFunc) error
	// WithinSnapshot runs fn against one consistent read-only snapshot.
	WithinSnapshot(ctx context.Context, fn TxFunc) error
}
