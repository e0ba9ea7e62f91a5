package repositories

import (
	"context"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

type OrganizationReader interface {
	// FindOrganizationBySlug returns apperrors.ErrNotFound when no organization has the slug.
	FindOrganizationBySlug(ctx context.Context, slug string) (*domain.Organization, error)
}

type OrganizationWriter interface {
	// SaveOrganization returns a Conflict error when the slug is taken.
	SaveOrganization(ctx context.Context, org domain.Organization) error
	// ApplyBalanceDelta atomically adds delta to the organization balance and
	// returns the new balance.
	ApplyBalanceDelta(ctx context.Context, organizationID string, delta decimal.Decimal) (decimal.Decimal, error)
}

type OrganizationRepositoryFacade interface {
	OrganizationReader
	OrganizationWriter
}
