package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/erp_backoffice/internal/apperrors"
	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/erp_backoffice/internal/middleware"
	"github.com/SscSPs/erp_backoffice/internal/platform/metrics"
	"github.com/SscSPs/erp_backoffice/internal/platform/tracing"
	"github.com/shopspring/decimal"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Metrics *metrics.Metrics
	// Clock returns the current time. Tests replace it to pin dates.
	Clock func() time.Time
}

func newBaseService(m *metrics.Metrics) BaseService {
	return BaseService{
		Metrics: m,
		Clock:   func() time.Time { return time.Now().UTC() },
	}
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogFailure logs domain failures at warn and anything else at error.
func (s *BaseService) LogFailure(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	if code := apperrors.CodeOf(err); code != "" {
		args = append(args, slog.String("code", code))
	}
	if traceID := tracing.TraceID(ctx); traceID != "" {
		args = append(args, slog.String("trace_id", traceID))
	}
	args = append(args, keyvals...)

	logger := s.GetLogger(ctx)
	if apperrors.IsDomainError(err) {
		logger.Warn(msg, args...)
		return
	}
	logger.Error(msg, args...)
}

func (s *BaseService) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock().UTC()
}

// party is the organization and acting user every mutation is scoped to.
type party struct {
	Org     *domain.Organization
	Cashier *domain.User
}

func resolveParty(ctx context.Context, repos portsrepo.RepositoryProvider, orgSlug, userID string) (party, error) {
	org, err := repos.OrganizationRepo.FindOrganizationBySlug(ctx, orgSlug)
	if err != nil {
		return party{}, err
	}
	cashier, err := repos.UserRepo.FindActiveUserByID(ctx, org.ID, userID)
	if err != nil {
		return party{}, err
	}
	return party{Org: org, Cashier: cashier}, nil
}

// resolveCustomer returns nil when customerID is nil.
func resolveCustomer(ctx context.Context, repos portsrepo.RepositoryProvider, orgID string, customerID *string) (*domain.Customer, error) {
	if customerID == nil {
		return nil, nil
	}
	return repos.CustomerRepo.FindCustomerByID(ctx, orgID, *customerID)
}

func requirePositive(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return apperrors.NewBadRequestError(apperrors.CodeAmountNotPositive)
	}
	return nil
}
