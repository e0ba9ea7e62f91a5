package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
)

type UserReader interface {
	// FindActiveUserByID ignores soft deleted users.
	FindActiveUserByID(ctx context.Context, organizationID, userID string) (*domain.User, error)
	// LockActiveAdmins returns the organization's active admins, locking their
	// rows until the surrounding transaction ends.
	LockActiveAdmins(ctx context.Context, organizationID string) ([]domain.User, error)
}

type UserWriter interface {
	// SaveUser returns a Conflict error when an active user already has the username.
	SaveUser(ctx context.Context, user domain.User) error
	MarkUserDeleted(ctx context.Context, organizationID, userID string, deletedAt time.Time) error
}

type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
