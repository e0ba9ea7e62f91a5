package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/erp_backoffice/internal/apperrors"
	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/erp_backoffice/internal/models"
	"github.com/jackc/pgx/v5"
)

type PgxCustomerRepository struct {
	BaseRepository
}

func newPgxCustomerRepository(db DB) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{BaseRepository: BaseRepository{db: db}}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

func toModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID:     d.ID,
		OrganizationID: d.OrganizationID,
		Name:           d.Name,
		Address:        d.Address,
		Phone:          d.Phone,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

func toDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		ID:             m.CustomerID,
		OrganizationID: m.OrganizationID,
		Name:           m.Name,
		Address:        m.Address,
		Phone:          m.Phone,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, organizationID, customerID string) (*domain.Customer, error) {
	query := `
		SELECT customer_id, organization_id, name, address, phone, created_at, last_updated_at
		FROM customers
		WHERE organization_id = $1 AND customer_id = $2;
	`
	rows, _ := r.db.Query(ctx, query, organizationID, customerID)
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Customer])
	if err != nil {
		return nil, notFound(err, apperrors.CodeCustomerNotFound, customerID)
	}
	c := toDomainCustomer(m)
	return &c, nil
}

// GetCustomerLedgerTotals computes the four aggregates behind the customer
// balance in one round trip.
func (r *PgxCustomerRepository) GetCustomerLedgerTotals(ctx context.Context, organizationID, customerID string) (domain.CustomerLedgerTotals, error) {
	query := `
		SELECT
			COALESCE((SELECT SUM(remaining) FROM invoices
				WHERE organization_id = $1 AND customer_id = $2 AND invoice_type = 'PURCHASE'), 0),
			COALESCE((SELECT SUM(remaining) FROM invoices
				WHERE organization_id = $1 AND customer_id = $2 AND invoice_type = 'SALE'), 0),
			COALESCE((SELECT SUM(amount) FROM transactions
				WHERE organization_id = $1 AND customer_id = $2 AND transaction_type = 'COLLECT_FROM_CUSTOMER'), 0),
			COALESCE((SELECT SUM(amount) FROM transactions
				WHERE organization_id = $1 AND customer_id = $2 AND transaction_type = 'PAY_TO_CUSTOMER'), 0);
	`
	var totals domain.CustomerLedgerTotals
	err := r.db.QueryRow(ctx, query, organizationID, customerID).Scan(
		&totals.PurchaseRemaining,
		&totals.SaleRemaining,
		&totals.CollectedFrom,
		&totals.PaidToCustomer,
	)
	if err != nil {
		return domain.CustomerLedgerTotals{}, fmt.Errorf("failed to aggregate ledger of customer %s: %w", customerID, err)
	}
	return totals, nil
}

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	m := toModelCustomer(customer)
	query := `
		INSERT INTO customers (customer_id, organization_id, name, address, phone, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.db.Exec(ctx, query, m.CustomerID, m.OrganizationID, m.Name, m.Address, m.Phone, m.CreatedAt, m.LastUpdatedAt)
	if err != nil {
		return translateError(err)
	}
	return nil
}
