package memory

import (
	"context"
	"sort"

	"github.com/SscSPs/erp_backoffice/internal/apperrors"
	"github.com/SscSPs/erp_backoffice/internal/core/domain"
)

func (r *repo) SaveInvoice(_ context.Context, invoice domain.Invoice, items []domain.InvoiceItem) error {
	return r.write(func(st *state) error {
		st.invoices[invoice.ID] = invoice
		st.invoiceItems[invoice.ID] = append([]domain.InvoiceItem(nil), items...)
		return nil
	})
}

func withRelations(st *state, inv domain.Invoice) domain.InvoiceWithRelations {
	out := domain.InvoiceWithRelations{
		Invoice: inv,
		Items:   append([]domain.InvoiceItem{}, st.invoiceItems[inv.ID]...),
	}
	if inv.CustomerID != nil {
		if c, ok := st.customers[*inv.CustomerID]; ok {
			out.Customer = &c
		}
	}
	if u, ok := st.users[inv.CashierID]; ok {
		out.Cashier = u.Summary()
	}
	return out
}

func (r *repo) FindInvoiceByID(_ context.Context, organizationID, invoiceID string) (*domain.InvoiceWithRelations, error) {
	var found *domain.InvoiceWithRelations
	err := r.read(func(st *state) error {
		inv, ok := st.invoices[invoiceID]
		if !ok || inv.OrganizationID != organizationID {
			return apperrors.NewNotFoundError(apperrors.CodeInvoiceNotFound, invoiceID)
		}
		res := withRelations(st, inv)
		found = &res
		return nil
	})
	return found, err
}

func matchingInvoices(st *state, organizationID string, filter domain.InvoiceFilter) []domain.Invoice {
	var out []domain.Invoice
	for _, inv := range st.invoices {
		if inv.OrganizationID != organizationID {
			continue
		}
		if filter.Type != nil && inv.Type != *filter.Type {
			continue
		}
		out = append(out, inv)
	}
	return out
}

func (r *repo) ListInvoices(_ context.Context, organizationID string, filter domain.InvoiceFilter) ([]domain.InvoiceWithRelations, error) {
	var page []domain.InvoiceWithRelations
	err := r.read(func(st *state) error {
		all := matchingInvoices(st, organizationID, filter)
		sort.Slice(all, func(i, j int) bool {
			if all[i].CreatedAt.Equal(all[j].CreatedAt) {
				return all[i].ID > all[j].ID
			}
			return all[i].CreatedAt.After(all[j].CreatedAt)
		})

		start := max(filter.Offset, 0)
		if start > len(all) {
			start = len(all)
		}
		end := len(all)
		if filter.Limit > 0 && start+filter.Limit < end {
			end = start + filter.Limit
		}
		page = make([]domain.InvoiceWithRelations, 0, end-start)
		for _, inv := range all[start:end] {
			page = append(page, withRelations(st, inv))
		}
		return nil
	})
	return page, err
}

func (r *repo) CountInvoices(_ context.Context, organizationID string, filter domain.InvoiceFilter) (int64, error) {
	var count int64
	err := r.read(func(st *state) error {
		count = int64(len(matchingInvoices(st, organizationID, filter)))
		return nil
	})
	return count, err
}
