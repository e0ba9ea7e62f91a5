package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/erp_backoffice/internal/apperrors"
	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/erp_backoffice/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type PgxOrganizationRepository struct {
	BaseRepository
}

func newPgxOrganizationRepository(db DB) portsrepo.OrganizationRepositoryFacade {
	return &PgxOrganizationRepository{BaseRepository: BaseRepository{db: db}}
}

var _ portsrepo.OrganizationRepositoryFacade = (*PgxOrganizationRepository)(nil)

func toModelOrganization(d domain.Organization) models.Organization {
	return models.Organization{
		OrganizationID: d.ID,
		Name:           d.Name,
		Slug:           d.Slug,
		Balance:        d.Balance,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

func toDomainOrganization(m models.Organization) domain.Organization {
	return domain.Organization{
		ID:      m.OrganizationID,
		Name:    m.Name,
		Slug:    m.Slug,
		Balance: m.Balance,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func (r *PgxOrganizationRepository) FindOrganizationBySlug(ctx context.Context, slug string) (*domain.Organization, error) {
	query := `
		SELECT organization_id, name, slug, balance, created_at, last_updated_at
		FROM organizations
		WHERE slug = $1;
	`
	rows, _ := r.db.Query(ctx, query, slug)
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Organization])
	if err != nil {
		return nil, notFound(err, apperrors.CodeOrganizationNotFound, slug)
	}
	org := toDomainOrganization(m)
	return &org, nil
}

func (r *PgxOrganizationRepository) SaveOrganization(ctx context.Context, org domain.Organization) error {
	m := toModelOrganization(org)
	query := `
		INSERT INTO organizations (organization_id, name, slug, balance, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.db.Exec(ctx, query, m.OrganizationID, m.Name, m.Slug, m.Balance, m.CreatedAt, m.LastUpdatedAt)
	if err != nil {
		return translateError(err)
	}
	return nil
}

// ApplyBalanceDelta adds delta in a single statement so concurrent units of
// work never lose an update.
func (r *PgxOrganizationRepository) ApplyBalanceDelta(ctx context.Context, organizationID string, delta decimal.Decimal) (decimal.Decimal, error) {
	query := `
		UPDATE organizations
		SET balance = balance + $1, last_updated_at = NOW()
		WHERE organization_id = $2
		RETURNING balance;
	`
	var balance decimal.Decimal
	if err := r.db.QueryRow(ctx, query, delta, organizationID).Scan(&balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, apperrors.NewNotFoundError(apperrors.CodeOrganizationNotFound, organizationID)
		}
		return decimal.Zero, fmt.Errorf("failed to update balance of organization %s: %w", organizationID, err)
	}
	return balance, nil
}
