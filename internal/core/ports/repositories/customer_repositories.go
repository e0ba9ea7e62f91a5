package repositories

import (
	"context"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
)

type CustomerReader interface {
	FindCustomerByID(ctx context.Context, organizationID, customerID string) (*domain.Customer, error)
	// GetCustomerLedgerTotals sums the invoices and transactions a customer's
	// balance is derived from.
	GetCustomerLedgerTotals(ctx context.Context, organizationID, customerID string) (domain.CustomerLedgerTotals, error)
}

type CustomerWriter interface {
	// SaveCustomer returns a Conflict error when the name is taken in the organization.
	SaveCustomer(ctx context.Context, customer domain.Customer) error
}

type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
