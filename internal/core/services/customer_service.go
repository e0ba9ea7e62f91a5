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
	"github.com/SscSPs/erp_backoffice/internal/utils/accounting"
	"github.com/SscSPs/erp_backoffice/internal/utils/money"
	"github.com/SscSPs/erp_backoffice/internal/utils/validation"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CustomerService struct {
	BaseService
	repos     portsrepo.RepositoryProvider
	txManager portsrepo.TransactionManager
}

var _ portssvc.CustomerSvcFacade = (*CustomerService)(nil)

func NewCustomerService(repos portsrepo.RepositoryProvider, txManager portsrepo.TransactionManager, m *metrics.Metrics) *CustomerService {
	return &CustomerService{
		BaseService: newBaseService(m),
		repos:       repos,
		txManager:   txManager,
	}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, orgSlug string, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	return tracing.Call(ctx, "CustomerService.CreateCustomer", func(ctx context.Context) (*domain.Customer, error) {
		if err := validation.Struct(req); err != nil {
			return nil, err
		}
		org, err := s.repos.OrganizationRepo.FindOrganizationBySlug(ctx, orgSlug)
		if err != nil {
			return nil, err
		}

		now := s.now()
		customer := domain.Customer{
			ID:             uuid.NewString(),
			Name:           strings.TrimSpace(req.Name),
			Address:        req.Address,
			Phone:          req.Phone,
			OrganizationID: org.ID,
			AuditFields:    domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
		}
		if err := s.repos.CustomerRepo.SaveCustomer(ctx, customer); err != nil {
			s.LogFailure(ctx, err, "Failed to create customer", slog.String("org_slug", orgSlug))
			return nil, err
		}
		return &customer, nil
	})
}

// GetCustomer derives the balance from the customer's invoices and payments
// on every call; nothing is cached.
func (s *CustomerService) GetCustomer(ctx context.Context, orgSlug string, customerID string) (*domain.CustomerWithBalance, error) {
	return tracing.Call(ctx, "CustomerService.GetCustomer", func(ctx context.Context) (*domain.CustomerWithBalance, error) {
		var result *domain.CustomerWithBalance
		err := s.txManager.WithinSnapshot(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
			org, err := repos.OrganizationRepo.FindOrganizationBySlug(ctx, orgSlug)
			if err != nil {
				return err
			}
			customer, err := repos.CustomerRepo.FindCustomerByID(ctx, org.ID, customerID)
			if err != nil {
				return err
			}
			totals, err := repos.CustomerRepo.GetCustomerLedgerTotals(ctx, org.ID, customerID)
			if err != nil {
				return err
			}
			result = &domain.CustomerWithBalance{
				Customer: *customer,
				Balance:  accounting.CustomerBalance(totals),
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		return result, nil
	})
}

func (s *CustomerService) CollectMoney(ctx context.Context, customerID string, amount decimal.Decimal, orgSlug string, userID string) (*domain.Transaction, error) {
	return tracing.Call(ctx, "CustomerService.CollectMoney", func(ctx context.Context) (*domain.Transaction, error) {
		return s.moveMoney(ctx, EventCollectFromCustomer, customerID, amount, orgSlug, userID)
	})
}

func (s *CustomerService) PayMoney(ctx context.Context, customerID string, amount decimal.Decimal, orgSlug string, userID string) (*domain.Transaction, error) {
	return tracing.Call(ctx, "CustomerService.PayMoney", func(ctx context.Context) (*domain.Transaction, error) {
		return s.moveMoney(ctx, EventPayToCustomer, customerID, amount, orgSlug, userID)
	})
}

func (s *CustomerService) moveMoney(ctx context.Context, event LedgerEvent, customerID string, amount decimal.Decimal, orgSlug string, userID string) (*domain.Transaction, error) {
	if err := requirePositive(amount); err != nil {
		return nil, err
	}

	var txn *domain.Transaction
	err := s.txManager.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		p, err := resolveParty(ctx, repos, orgSlug, userID)
		if err != nil {
			return err
		}
		customer, err := repos.CustomerRepo.FindCustomerByID(ctx, p.Org.ID, customerID)
		if err != nil {
			return err
		}
		txn, err = NewLedgerRecorder(s.now).Post(ctx, repos, LedgerEntry{
			Event:          event,
			Amount:         amount,
			OrganizationID: p.Org.ID,
			CashierID:      p.Cashier.ID,
			CustomerID:     &customer.ID,
		})
		return err
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to record customer payment",
			slog.String("org_slug", orgSlug),
			slog.String("customer_id", customerID))
		return nil, err
	}

	s.Metrics.LedgerEntriesRecorded(string(txn.Type))
	s.GetLogger(ctx).Info("Customer payment recorded",
		slog.String("transaction_id", txn.ID),
		slog.String("type", string(txn.Type)),
		slog.String("amount", money.Format(txn.Amount)))
	return txn, nil
}
