package services

import (
	"context"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/SscSPs/erp_backoffice/internal/dto"
)

type UserWriterSvc interface {
	// CreateUser is restricted to admins of the organization.
	CreateUser(ctx context.Context, orgSlug string, req dto.CreateUserRequest, requestingUserID string) (*domain.User, error)
}

type UserLifecycleSvc interface {
	// DeleteUser soft deletes a user. Self deletion, deletion by a non-admin
	// and deletion of the last admin are Forbidden.
	DeleteUser(ctx context.Context, orgSlug string, userID string, requestingUserID string) error
}

type UserSvcFacade interface {
	UserWriterSvc
	UserLifecycleSvc
}
