package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_backoffice/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerEvent is a balance-affecting event. Each event fixes the transaction
// type, the sign of the amount and whether a customer may be linked.
type LedgerEvent int

const (
	EventSaleInvoice LedgerEvent = iota
	EventPurchaseInvoice
	EventExpense
	EventBalanceAddition
	EventCollectFromCustomer
	EventPayToCustomer
)

type customerLink int

const (
	customerNone customerLink = iota
	customerOptional
	customerRequired
)

type ledgerRule struct {
	txnType  domain.TransactionType
	outflow  bool
	customer customerLink
}

var ledgerRules = map[LedgerEvent]ledgerRule{
	EventSaleInvoice:         {domain.TransactionTypeInvoice, false, customerOptional},
	EventPurchaseInvoice:     {domain.TransactionTypeInvoice, true, customerOptional},
	EventExpense:             {domain.TransactionTypeExpense, true, customerNone},
	EventBalanceAddition:     {domain.TransactionTypeBalanceAddition, false, customerNone},
	EventCollectFromCustomer: {domain.TransactionTypeCollectFromCustomer, false, customerRequired},
	EventPayToCustomer:       {domain.TransactionTypePayToCustomer, true, customerRequired},
}

// LedgerEntry describes one event. Amount is the unsigned magnitude.
type LedgerEntry struct {
	Event          LedgerEvent
	Amount         decimal.Decimal
	OrganizationID string
	CashierID      string
	CustomerID     *string
}

// LedgerRecorder appends transactions and moves the organization balance by
// the same signed amount. It never opens its own unit of work; callers pass
// the transaction-scoped repositories.
type LedgerRecorder struct {
	clock func() time.Time
}

func NewLedgerRecorder(clock func() time.Time) *LedgerRecorder {
	return &LedgerRecorder{clock: clock}
}

// SignedAmount applies the event's sign convention: inflows positive, outflows negative.
func SignedAmount(event LedgerEvent, amount decimal.Decimal) decimal.Decimal {
	if ledgerRules[event].outflow {
		return amount.Neg()
	}
	return amount
}

// Record appends the transaction row only.
func (r *LedgerRecorder) Record(ctx context.Context, repos portsrepo.RepositoryProvider, entry LedgerEntry) (*domain.Transaction, error) {
	rule, ok := ledgerRules[entry.Event]
	if !ok {
		return nil, fmt.Errorf("unknown ledger event %d", entry.Event)
	}
	switch rule.customer {
	case customerNone:
		if entry.CustomerID != nil {
			return nil, fmt.Errorf("%s transactions cannot reference a customer", rule.txnType)
		}
	case customerRequired:
		if entry.CustomerID == nil {
			return nil, fmt.Errorf("%s transactions require a customer", rule.txnType)
		}
	}

	txn := domain.Transaction{
		ID:             uuid.NewString(),
		Type:           rule.txnType,
		Amount:         SignedAmount(entry.Event, entry.Amount),
		CashierID:      entry.CashierID,
		CustomerID:     entry.CustomerID,
		OrganizationID: entry.OrganizationID,
		CreatedAt:      r.clock(),
	}
	if err := repos.TransactionRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, err
	}
	return &txn, nil
}

// ApplyToBalance moves the organization balance by the transaction amount
// with a single atomic increment.
func (r *LedgerRecorder) ApplyToBalance(ctx context.Context, repos portsrepo.RepositoryProvider, txn *domain.Transaction) (decimal.Decimal, error) {
	return repos.OrganizationRepo.ApplyBalanceDelta(ctx, txn.OrganizationID, txn.Amount)
}

// Post records the transaction and applies it to the balance.
func (r *LedgerRecorder) Post(ctx context.Context, repos portsrepo.RepositoryProvider, entry LedgerEntry) (*domain.Transaction, error) {
	txn, err := r.Record(ctx, repos, entry)
	if err != nil {
		return nil, err
	}
	if _, err := r.ApplyToBalance(ctx, repos, txn); err != nil {
		return nil, err
	}
	return txn, nil
}
