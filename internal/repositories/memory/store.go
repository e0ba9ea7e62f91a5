// Package memory is an in-process implementation of the repository ports.
// A unit of work holds the store lock for its whole duration and restores a
// snapshot of the state when it fails, so it has the same all-or-nothing
// behavior as the postgres store.
package memory

import (
	"context"
	"sync"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_backoffice/internal/core/ports/repositories"
)

type state struct {
	organizations map[string]domain.Organization
	users         map[string]domain.User
	customers     map[string]domain.Customer
	products      map[string]domain.Product
	invoices      map[string]domain.Invoice
	invoiceItems  map[string][]domain.InvoiceItem
	transactions  []domain.Transaction
	expenses      map[string]domain.Expense
}

func newState() *state {
	return &state{
		organizations: map[string]domain.Organization{},
		users:         map[string]domain.User{},
		customers:     map[string]domain.Customer{},
		products:      map[string]domain.Product{},
		invoices:      map[string]domain.Invoice{},
		invoiceItems:  map[string][]domain.InvoiceItem{},
		expenses:      map[string]domain.Expense{},
	}
}

func (st *state) clone() *state {
	c := newState()
	for k, v := range st.organizations {
		c.organizations[k] = v
	}
	for k, v := range st.users {
		c.users[k] = v
	}
	for k, v := range st.customers {
		c.customers[k] = v
	}
	for k, v := range st.products {
		c.products[k] = v
	}
	for k, v := range st.invoices {
		c.invoices[k] = v
	}
	for k, v := range st.invoiceItems {
		c.invoiceItems[k] = append([]domain.InvoiceItem(nil), v...)
	}
	c.transactions = append([]domain.Transaction(nil), st.transactions...)
	for k, v := range st.expenses {
		c.expenses[k] = v
	}
	return c
}

// Store is safe for concurrent use.
type Store struct {
	mu sync.Mutex
	st *state
}

var _ portsrepo.TransactionManager = (*Store)(nil)

func New() *Store {
	return &Store{st: newState()}
}

// Repositories returns repositories that lock the store per call.
func (s *Store) Repositories() portsrepo.RepositoryProvider {
	return provider(&repo{store: s})
}

func (s *Store) WithinTx(ctx context.Context, fn portsrepo.TxFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	if err := fn(ctx, provider(&repo{store: s, inTx: true})); err != nil {
		s.st = snapshot
		return err
	}
	return nil
}

// WithinSnapshot runs fn under the store lock; any change fn makes is discarded.
func (s *Store) WithinSnapshot(ctx context.Context, fn portsrepo.TxFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	defer func() { s.st = snapshot }()
	return fn(ctx, provider(&repo{store: s, inTx: true}))
}

func provider(r *repo) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		OrganizationRepo: r,
		UserRepo:         r,
		CustomerRepo:     r,
		ProductRepo:      r,
		InvoiceRepo:      r,
		TransactionRepo:  r,
		ExpenseRepo:      r,
	}
}

// repo implements every repository facade over the shared state. Inside a
// unit of work the store lock is already held.
type repo struct {
	store *Store
	inTx  bool
}

func (r *repo) read(fn func(st *state) error) error {
	if !r.inTx {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	return fn(r.store.st)
}

func (r *repo) write(fn func(st *state) error) error {
	return r.read(fn)
}
