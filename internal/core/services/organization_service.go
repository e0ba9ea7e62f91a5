package services

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"

	"github.com/SscSPs/erp_backoffice/internal/apperrors"
	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_backoffice/internal/core/ports/services"
	"github.com/SscSPs/erp_backoffice/internal/dto"
	"github.com/SscSPs/erp_backoffice/internal/platform/metrics"
	"github.com/SscSPs/erp_backoffice/internal/platform/tracing"
	"github.com/SscSPs/erp_backoffice/internal/utils"
	"github.com/SscSPs/erp_backoffice/internal/utils/accounting"
	"github.com/SscSPs/erp_backoffice/internal/utils/money"
	"github.com/SscSPs/erp_backoffice/internal/utils/validation"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

type OrganizationService struct {
	BaseService
	repos     portsrepo.RepositoryProvider
	txManager portsrepo.TransactionManager
}

var _ portssvc.OrganizationSvcFacade = (*OrganizationService)(nil)

func NewOrganizationService(repos portsrepo.RepositoryProvider, txManager portsrepo.TransactionManager, m *metrics.Metrics) *OrganizationService {
	return &OrganizationService{
		BaseService: newBaseService(m),
		repos:       repos,
		txManager:   txManager,
	}
}

// CreateOrganization creates the tenant and its single ADMIN user together.
func (s *OrganizationService) CreateOrganization(ctx context.Context, req dto.CreateOrganizationRequest) (*domain.Organization, *domain.User, error) {
	var (
		org   *domain.Organization
		admin *domain.User
	)
	err := tracing.Run(ctx, "OrganizationService.CreateOrganization", func(ctx context.Context) error {
		if err := validation.Struct(req); err != nil {
			return err
		}
		slug := strings.TrimSpace(req.Slug)
		if !slugPattern.MatchString(slug) {
			return apperrors.NewBadRequestError(apperrors.CodeInvalidSlug, slug)
		}
		hash, err := utils.HashPassword(req.AdminPassword)
		if err != nil {
			return apperrors.NewBadRequestError(apperrors.CodeValidationFailed, err.Error())
		}

		now := s.now()
		newOrg := domain.Organization{
			ID:          uuid.NewString(),
			Name:        strings.TrimSpace(req.Name),
			Slug:        slug,
			Balance:     decimal.Zero,
			AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
		}
		newAdmin := domain.User{
			ID:             uuid.NewString(),
			Username:       strings.TrimSpace(req.AdminUsername),
			PasswordHash:   hash,
			Role:           domain.RoleAdmin,
			OrganizationID: newOrg.ID,
			AuditFields:    domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
		}

		err = s.txManager.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
			if err := repos.OrganizationRepo.SaveOrganization(ctx, newOrg); err != nil {
				return err
			}
			return repos.UserRepo.SaveUser(ctx, newAdmin)
		})
		if err != nil {
			return err
		}
		org, admin = &newOrg, &newAdmin
		return nil
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to create organization", slog.String("slug", req.Slug))
		return nil, nil, err
	}

	s.GetLogger(ctx).Info("Organization created successfully",
		slog.String("organization_id", org.ID),
		slog.String("slug", org.Slug))
	return org, admin, nil
}

func (s *OrganizationService) GetOrganization(ctx context.Context, orgSlug string) (*domain.Organization, error) {
	return s.repos.OrganizationRepo.FindOrganizationBySlug(ctx, orgSlug)
}

// AuthorizeMember returns the active user userID of the organization orgSlug.
// A user of another organization, or a deleted one, is Forbidden.
func (s *OrganizationService) AuthorizeMember(ctx context.Context, orgSlug string, userID string) (*domain.User, error) {
	return tracing.Call(ctx, "OrganizationService.AuthorizeMember", func(ctx context.Context) (*domain.User, error) {
		p, err := resolveParty(ctx, s.repos, orgSlug, userID)
		if errors.Is(err, apperrors.ErrNotFound) && apperrors.CodeOf(err) == apperrors.CodeUserNotFound {
			s.GetLogger(ctx).Warn("Rejected request from outside the organization",
				slog.String("org_slug", orgSlug),
				slog.String("user_id", userID))
			return nil, apperrors.NewForbiddenError(apperrors.CodeNotMember, orgSlug)
		}
		if err != nil {
			return nil, err
		}
		return p.Cashier, nil
	})
}

// AddBalance records a manual cash addition.
func (s *OrganizationService) AddBalance(ctx context.Context, orgSlug string, amount decimal.Decimal, userID string) error {
	err := tracing.Run(ctx, "OrganizationService.AddBalance", func(ctx context.Context) error {
		if err := requirePositive(amount); err != nil {
			return err
		}
		return s.txManager.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
			p, err := resolveParty(ctx, repos, orgSlug, userID)
			if err != nil {
				return err
			}
			_, err = NewLedgerRecorder(s.now).Post(ctx, repos, LedgerEntry{
				Event:          EventBalanceAddition,
				Amount:         amount,
				OrganizationID: p.Org.ID,
				CashierID:      p.Cashier.ID,
			})
			return err
		})
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to add balance", slog.String("org_slug", orgSlug))
		return err
	}

	s.Metrics.LedgerEntriesRecorded(string(domain.TransactionTypeBalanceAddition))
	s.GetLogger(ctx).Info("Balance added successfully",
		slog.String("org_slug", orgSlug),
		slog.String("amount", money.Format(amount)))
	return nil
}

// GetStatistics reads the balance and the window's transactions from one
// snapshot and replays them backward into a daily series.
func (s *OrganizationService) GetStatistics(ctx context.Context, orgSlug string) (*domain.OrganizationStatistics, error) {
	return tracing.Call(ctx, "OrganizationService.GetStatistics", func(ctx context.Context) (*domain.OrganizationStatistics, error) {
		now := s.now()
		since := accounting.WindowStart(now, domain.StatisticsWindowDays)

		var (
			org  *domain.Organization
			txns []domain.Transaction
		)
		err := s.txManager.WithinSnapshot(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
			var err error
			org, err = repos.OrganizationRepo.FindOrganizationBySlug(ctx, orgSlug)
			if err != nil {
				return err
			}
			txns, err = repos.TransactionRepo.ListTransactionsSince(ctx, org.ID, since)
			return err
		})
		if err != nil {
			s.LogFailure(ctx, err, "Failed to load statistics", slog.String("org_slug", orgSlug))
			return nil, err
		}

		return &domain.OrganizationStatistics{
			Name:             org.Name,
			Balance:          org.Balance,
			TransactionCount: len(txns),
			BalanceAtDate:    accounting.BalanceSeries(org.Balance, txns, now, domain.StatisticsWindowDays),
		}, nil
	})
}

// ReconcileBalance verifies the stored running balance against the ledger.
func (s *OrganizationService) ReconcileBalance(ctx context.Context, orgSlug string) (*dto.BalanceReconciliation, error) {
	return tracing.Call(ctx, "OrganizationService.ReconcileBalance", func(ctx context.Context) (*dto.BalanceReconciliation, error) {
		var result dto.BalanceReconciliation
		err := s.txManager.WithinSnapshot(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
			org, err := repos.OrganizationRepo.FindOrganizationBySlug(ctx, orgSlug)
			if err != nil {
				return err
			}
			sum, err := repos.TransactionRepo.SumTransactions(ctx, org.ID)
			if err != nil {
				return err
			}
			result = dto.BalanceReconciliation{
				Balance:     org.Balance,
				LedgerTotal: sum,
				Consistent:  org.Balance.Equal(sum),
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		if !result.Consistent {
			s.GetLogger(ctx).Error("Organization balance does not match ledger",
				slog.String("org_slug", orgSlug),
				slog.String("balance", money.Format(result.Balance)),
				slog.String("ledger_total", money.Format(result.LedgerTotal)))
		}
		return &result, nil
	})
}
