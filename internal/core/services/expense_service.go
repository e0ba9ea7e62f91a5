package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_backoffice/internal/core/ports/services"
	"github.com/SscSPs/erp_backoffice/internal/dto"
	"github.com/SscSPs/erp_backoffice/internal/platform/metrics"
	"github.com/SscSPs/erp_backoffice/internal/platform/tracing"
	"github.com/SscSPs/erp_backoffice/internal/utils/money"
	"github.com/SscSPs/erp_backoffice/internal/utils/validation"
	"github.com/google/uuid"
)

type ExpenseService struct {
	BaseService
	txManager portsrepo.TransactionManager
}

var _ portssvc.ExpenseSvcFacade = (*ExpenseService)(nil)

func NewExpenseService(txManager portsrepo.TransactionManager, m *metrics.Metrics) *ExpenseService {
	return &ExpenseService{
		BaseService: newBaseService(m),
		txManager:   txManager,
	}
}

// CreateExpense records the expense and its outflow transaction together.
func (s *ExpenseService) CreateExpense(ctx context.Context, orgSlug string, req dto.CreateExpenseRequest, userID string) (*domain.ExpenseWithCashier, error) {
	return tracing.Call(ctx, "ExpenseService.CreateExpense", func(ctx context.Context) (*domain.ExpenseWithCashier, error) {
		if err := validation.Struct(req); err != nil {
			return nil, err
		}
		if err := requirePositive(req.Amount); err != nil {
			return nil, err
		}

		var created *domain.ExpenseWithCashier
		err := s.txManager.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
			p, err := resolveParty(ctx, repos, orgSlug, userID)
			if err != nil {
				return err
			}
			txn, err := NewLedgerRecorder(s.now).Post(ctx, repos, LedgerEntry{
				Event:          EventExpense,
				Amount:         req.Amount,
				OrganizationID: p.Org.ID,
				CashierID:      p.Cashier.ID,
			})
			if err != nil {
				return err
			}

			expense := domain.Expense{
				ID:             uuid.NewString(),
				Description:    strings.TrimSpace(req.Description),
				Amount:         req.Amount,
				CashierID:      p.Cashier.ID,
				OrganizationID: p.Org.ID,
				TransactionID:  txn.ID,
				CreatedAt:      txn.CreatedAt,
			}
			if err := repos.ExpenseRepo.SaveExpense(ctx, expense); err != nil {
				return err
			}
			created = &domain.ExpenseWithCashier{Expense: expense, Cashier: p.Cashier.Summary()}
			return nil
		})
		if err != nil {
			s.LogFailure(ctx, err, "Failed to create expense", slog.String("org_slug", orgSlug))
			return nil, err
		}

		s.Metrics.LedgerEntriesRecorded(string(domain.TransactionTypeExpense))
		s.GetLogger(ctx).Info("Expense created successfully",
			slog.String("expense_id", created.ID),
			slog.String("amount", money.Format(created.Amount)))
		return created, nil
	})
}
