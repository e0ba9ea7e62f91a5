package memory

import (
	"context"

	"github.com/SscSPs/erp_backoffice/internal/apperrors"
	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

func (r *repo) FindOrganizationBySlug(_ context.Context, slug string) (*domain.Organization, error) {
	var found *domain.Organization
	err := r.read(func(st *state) error {
		for _, org := range st.organizations {
			if org.Slug == slug {
				o := org
				found = &o
				return nil
			}
		}
		return apperrors.NewNotFoundError(apperrors.CodeOrganizationNotFound, slug)
	})
	return found, err
}

func (r *repo) SaveOrganization(_ context.Context, org domain.Organization) error {
	return r.write(func(st *state) error {
		for _, existing := range st.organizations {
			if existing.Slug == org.Slug {
				return apperrors.NewConflictError(apperrors.CodeOrganizationSlugTaken)
			}
		}
		st.organizations[org.ID] = org
		return nil
	})
}

func (r *repo) ApplyBalanceDelta(_ context.Context, organizationID string, delta decimal.Decimal) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := r.write(func(st *state) error {
		org, ok := st.organizations[organizationID]
		if !ok {
			return apperrors.NewNotFoundError(apperrors.CodeOrganizationNotFound, organizationID)
		}
		org.Balance = org.Balance.Add(delta)
		st.organizations[organizationID] = org
		balance = org.Balance
		return nil
	})
	return balance, err
}
