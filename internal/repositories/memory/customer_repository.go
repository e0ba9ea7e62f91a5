package memory

import (
	"context"

	"github.com/SscSPs/erp_backoffice/internal/apperrors"
	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

func (r *repo) FindCustomerByID(_ context.Context, organizationID, customerID string) (*domain.Customer, error) {
	var found *domain.Customer
	err := r.read(func(st *state) error {
		c, ok := st.customers[customerID]
		if !ok || c.OrganizationID != organizationID {
			return apperrors.NewNotFoundError(apperrors.CodeCustomerNotFound, customerID)
		}
		found = &c
		return nil
	})
	return found, err
}

func (r *repo) GetCustomerLedgerTotals(_ context.Context, organizationID, customerID string) (domain.CustomerLedgerTotals, error) {
	totals := domain.CustomerLedgerTotals{
		PurchaseRemaining: decimal.Zero,
		SaleRemaining:     decimal.Zero,
		CollectedFrom:     decimal.Zero,
		PaidToCustomer:    decimal.Zero,
	}
	err := r.read(func(st *state) error {
		for _, inv := range st.invoices {
			if inv.OrganizationID != organizationID || inv.CustomerID == nil || *inv.CustomerID != customerID {
				continue
			}
			switch inv.Type {
			case domain.InvoiceTypePurchase:
				totals.PurchaseRemaining = totals.PurchaseRemaining.Add(inv.Remaining)
			case domain.InvoiceTypeSale:
				totals.SaleRemaining = totals.SaleRemaining.Add(inv.Remaining)
			}
		}
		for _, txn := range st.transactions {
			if txn.OrganizationID != organizationID || txn.CustomerID == nil || *txn.CustomerID != customerID {
				continue
			}
			switch txn.Type {
			case domain.TransactionTypeCollectFromCustomer:
				totals.CollectedFrom = totals.CollectedFrom.Add(txn.Amount)
			case domain.TransactionTypePayToCustomer:
				totals.PaidToCustomer = totals.PaidToCustomer.Add(txn.Amount)
			}
		}
		return nil
	})
	return totals, err
}

func (r *repo) SaveCustomer(_ context.Context, customer domain.Customer) error {
	return r.write(func(st *state) error {
		for _, c := range st.customers {
			if c.OrganizationID == customer.OrganizationID && c.Name == customer.Name {
				return apperrors.NewConflictError(apperrors.CodeCustomerNameTaken)
			}
		}
		st.customers[customer.ID] = customer
		return nil
	})
}
