package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/erp_backoffice/internal/apperrors"
	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_backoffice/internal/core/ports/services"
	"github.com/SscSPs/erp_backoffice/internal/dto"
	"github.com/SscSPs/erp_backoffice/internal/platform/metrics"
	"github.com/SscSPs/erp_backoffice/internal/platform/tracing"
	"github.com/SscSPs/erp_backoffice/internal/utils"
	"github.com/SscSPs/erp_backoffice/internal/utils/validation"
	"github.com/google/uuid"
)

type UserService struct {
	BaseService
	txManager portsrepo.TransactionManager
}

var _ portssvc.UserSvcFacade = (*UserService)(nil)

func NewUserService(txManager portsrepo.TransactionManager, m *metrics.Metrics) *UserService {
	return &UserService{
		BaseService: newBaseService(m),
		txManager:   txManager,
	}
}

func (s *UserService) CreateUser(ctx context.Context, orgSlug string, req dto.CreateUserRequest, requestingUserID string) (*domain.User, error) {
	return tracing.Call(ctx, "UserService.CreateUser", func(ctx context.Context) (*domain.User, error) {
		if err := validation.Struct(req); err != nil {
			return nil, err
		}
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			return nil, apperrors.NewBadRequestError(apperrors.CodeValidationFailed, err.Error())
		}

		var created *domain.User
		err = s.txManager.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
			p, err := resolveParty(ctx, repos, orgSlug, requestingUserID)
			if err != nil {
				return err
			}
			if !p.Cashier.IsAdmin() {
				return apperrors.NewForbiddenError(apperrors.CodeAdminRequired)
			}

			now := s.now()
			user := domain.User{
				ID:             uuid.NewString(),
				Username:       strings.TrimSpace(req.Username),
				PasswordHash:   hash,
				Role:           req.Role,
				OrganizationID: p.Org.ID,
				AuditFields:    domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
			}
			if err := repos.UserRepo.SaveUser(ctx, user); err != nil {
				return err
			}
			created = &user
			return nil
		})
		if err != nil {
			s.LogFailure(ctx, err, "Failed to create user", slog.String("org_slug", orgSlug))
			return nil, err
		}

		s.GetLogger(ctx).Info("User created successfully",
			slog.String("user_id", created.ID),
			slog.String("role", string(created.Role)))
		return created, nil
	})
}

// DeleteUser soft deletes userID. The organization's active admin rows are
// locked first so two concurrent deletions cannot remove the last two admins.
func (s *UserService) DeleteUser(ctx context.Context, orgSlug string, userID string, requestingUserID string) error {
	err := tracing.Run(ctx, "UserService.DeleteUser", func(ctx context.Context) error {
		return s.txManager.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
			org, err := repos.OrganizationRepo.FindOrganizationBySlug(ctx, orgSlug)
			if err != nil {
				return err
			}
			admins, err := repos.UserRepo.LockActiveAdmins(ctx, org.ID)
			if err != nil {
				return err
			}
			target, err := repos.UserRepo.FindActiveUserByID(ctx, org.ID, userID)
			if err != nil {
				return err
			}
			if target.IsAdmin() && len(admins) <= 1 {
				return apperrors.NewForbiddenError(apperrors.CodeLastAdmin)
			}
			if userID == requestingUserID {
				return apperrors.NewForbiddenError(apperrors.CodeSelfDelete)
			}
			if !containsUser(admins, requestingUserID) {
				return apperrors.NewForbiddenError(apperrors.CodeAdminRequired)
			}
			return repos.UserRepo.MarkUserDeleted(ctx, org.ID, userID, s.now())
		})
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to delete user",
			slog.String("org_slug", orgSlug),
			slog.String("user_id", userID))
		return err
	}

	s.GetLogger(ctx).Info("User deleted successfully", slog.String("user_id", userID))
	return nil
}

func containsUser(users []domain.User, userID string) bool {
	for _, u := range users {
		if u.ID == userID {
			return true
		}
	}
	return false
}
