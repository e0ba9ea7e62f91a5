package services

import (
	"context"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/SscSPs/erp_backoffice/internal/dto"
	"github.com/shopspring/decimal"
)

type OrganizationReaderSvc interface {
	GetOrganization(ctx context.Context, orgSlug string) (*domain.Organization, error)
	// AuthorizeMember returns the caller when it is an active user of orgSlug.
	AuthorizeMember(ctx context.Context, orgSlug string, userID string) (*domain.User, error)
	GetStatistics(ctx context.Context, orgSlug string) (*domain.OrganizationStatistics, error)
	// ReconcileBalance compares the stored balance with the sum of the ledger.
	ReconcileBalance(ctx context.Context, orgSlug string) (*dto.BalanceReconciliation, error)
}

type OrganizationWriterSvc interface {
	CreateOrganization(ctx context.Context, req dto.CreateOrganizationRequest) (*domain.Organization, *domain.User, error)
	AddBalance(ctx context.Context, orgSlug string, amount decimal.Decimal, userID string) error
}

type OrganizationSvcFacade interface {
	OrganizationReaderSvc
	OrganizationWriterSvc
}
