package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/erp_backoffice/internal/apperrors"
	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/erp_backoffice/internal/models"
	"github.com/jackc/pgx/v5"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db DB) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{db: db}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = `user_id, organization_id, username, password_hash, role, deleted_at, created_at, last_updated_at`

// Helper to convert domain.User to models.User
func toModelUser(d domain.User) models.User {
	return models.User{
		UserID:         d.ID,
		OrganizationID: d.OrganizationID,
		Username:       d.Username,
		PasswordHash:   d.PasswordHash,
		Role:           string(d.Role),
		DeletedAt:      d.DeletedAt,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// Helper to convert models.User to domain.User
func toDomainUser(m models.User) domain.User {
	return domain.User{
		ID:             m.UserID,
		OrganizationID: m.OrganizationID,
		Username:       m.Username,
		PasswordHash:   m.PasswordHash,
		Role:           domain.Role(m.Role),
		DeletedAt:      m.DeletedAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func (r *PgxUserRepository) FindActiveUserByID(ctx context.Context, organizationID, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + `
		FROM users
		WHERE organization_id = $1 AND user_id = $2 AND deleted_at IS NULL;`
	rows, _ := r.db.Query(ctx, query, organizationID, userID)
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		return nil, notFound(err, apperrors.CodeUserNotFound, userID)
	}
	u := toDomainUser(m)
	return &u, nil
}

// LockActiveAdmins row-locks the active admins so two concurrent deletions
// cannot both see a second admin.
func (r *PgxUserRepository) LockActiveAdmins(ctx context.Context, organizationID string) ([]domain.User, error) {
	query := `SELECT ` + userColumns + `
		FROM users
		WHERE organization_id = $1 AND role = $2 AND deleted_at IS NULL
		ORDER BY created_at
		FOR UPDATE;`
	rows, _ := r.db.Query(ctx, query, organizationID, string(domain.RoleAdmin))
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		return nil, fmt.Errorf("failed to lock admins of organization %s: %w", organizationID, err)
	}
	admins := make([]domain.User, len(ms))
	for i, m := range ms {
		admins[i] = toDomainUser(m)
	}
	return admins, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := toModelUser(user)
	query := `
        INSERT INTO users (user_id, organization_id, username, password_hash, role, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		m.UserID,
		m.OrganizationID,
		m.Username,
		m.PasswordHash,
		m.Role,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return translateError(err)
	}
	return nil
}

func (r *PgxUserRepository) MarkUserDeleted(ctx context.Context, organizationID, userID string, deletedAt time.Time) error {
	query := `
        UPDATE users
        SET deleted_at = $1, last_updated_at = $1
        WHERE organization_id = $2 AND user_id = $3 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query, deletedAt, organizationID, userID)
	if err != nil {
		return fmt.Errorf("failed to mark user as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(apperrors.CodeUserNotFound, userID)
	}
	return nil
}
