package memory

import (
	"context"
	"sort"
	"time"

	"github.com/SscSPs/erp_backoffice/internal/apperrors"
	"github.com/SscSPs/erp_backoffice/internal/core/domain"
)

func activeUser(st *state, organizationID, userID string) (domain.User, bool) {
	u, ok := st.users[userID]
	if !ok || u.OrganizationID != organizationID || !u.IsActive() {
		return domain.User{}, false
	}
	return u, true
}

func (r *repo) FindActiveUserByID(_ context.Context, organizationID, userID string) (*domain.User, error) {
	var found *domain.User
	err := r.read(func(st *state) error {
		u, ok := activeUser(st, organizationID, userID)
		if !ok {
			return apperrors.NewNotFoundError(apperrors.CodeUserNotFound, userID)
		}
		found = &u
		return nil
	})
	return found, err
}

// LockActiveAdmins needs no extra locking here; the unit of work already
// holds the store lock.
func (r *repo) LockActiveAdmins(_ context.Context, organizationID string) ([]domain.User, error) {
	var admins []domain.User
	err := r.read(func(st *state) error {
		for _, u := range st.users {
			if u.OrganizationID == organizationID && u.IsActive() && u.IsAdmin() {
				admins = append(admins, u)
			}
		}
		sort.Slice(admins, func(i, j int) bool { return admins[i].CreatedAt.Before(admins[j].CreatedAt) })
		return nil
	})
	return admins, err
}

func (r *repo) SaveUser(_ context.Context, user domain.User) error {
	return r.write(func(st *state) error {
		for _, u := range st.users {
			if u.OrganizationID == user.OrganizationID && u.IsActive() && u.Username == user.Username {
				return apperrors.NewConflictError(apperrors.CodeUsernameTaken)
			}
		}
		st.users[user.ID] = user
		return nil
	})
}

func (r *repo) MarkUserDeleted(_ context.Context, organizationID, userID string, deletedAt time.Time) error {
	return r.write(func(st *state) error {
		u, ok := activeUser(st, organizationID, userID)
		if !ok {
			return apperrors.NewNotFoundError(apperrors.CodeUserNotFound, userID)
		}
		u.DeletedAt = &deletedAt
		u.LastUpdatedAt = deletedAt
		st.users[userID] = u
		return nil
	})
}
