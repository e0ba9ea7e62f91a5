package memory

import (
	"context"

	"github.com/SscSPs/erp_backoffice/internal/apperrors"
	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// checkProductUnique mirrors the per-organization unique indexes on barcode
// and description.
func checkProductUnique(st *state, p domain.Product) error {
	for _, existing := range st.products {
		if existing.ID == p.ID || existing.OrganizationID != p.OrganizationID {
			continue
		}
		if p.Barcode != nil && existing.Barcode != nil && *existing.Barcode == *p.Barcode {
			return apperrors.NewConflictError(apperrors.CodeProductBarcodeTaken)
		}
		if existing.Description == p.Description {
			return apperrors.NewConflictError(apperrors.CodeProductDescriptionUsed)
		}
	}
	return nil
}

func (r *repo) FindProductByID(_ context.Context, organizationID, productID string) (*domain.Product, error) {
	var found *domain.Product
	err := r.read(func(st *state) error {
		p, ok := st.products[productID]
		if !ok || p.OrganizationID != organizationID {
			return apperrors.NewNotFoundError(apperrors.CodeProductNotFound, productID)
		}
		found = &p
		return nil
	})
	return found, err
}

func (r *repo) SaveProduct(_ context.Context, product domain.Product) error {
	return r.write(func(st *state) error {
		if err := checkProductUnique(st, product); err != nil {
			return err
		}
		st.products[product.ID] = product
		return nil
	})
}

func (r *repo) UpdateProduct(_ context.Context, product domain.Product) error {
	return r.write(func(st *state) error {
		existing, ok := st.products[product.ID]
		if !ok || existing.OrganizationID != product.OrganizationID {
			return apperrors.NewNotFoundError(apperrors.CodeProductNotFound, product.ID)
		}
		if err := checkProductUnique(st, product); err != nil {
			return err
		}
		product.CreatedAt = existing.CreatedAt
		st.products[product.ID] = product
		return nil
	})
}

func (r *repo) AdjustStock(_ context.Context, organizationID, productID string, delta int64) (*domain.Product, error) {
	var updated *domain.Product
	err := r.write(func(st *state) error {
		p, ok := st.products[productID]
		if !ok || p.OrganizationID != organizationID {
			return apperrors.NewNotFoundError(apperrors.CodeProductNotFound, productID)
		}
		p.StockQuantity += delta
		st.products[productID] = p
		updated = &p
		return nil
	})
	return updated, err
}

func (r *repo) Restock(_ context.Context, organizationID, productID string, purchasePrice, sellingPrice decimal.Decimal, quantity int64) (*domain.Product, error) {
	var updated *domain.Product
	err := r.write(func(st *state) error {
		p, ok := st.products[productID]
		if !ok || p.OrganizationID != organizationID {
			return apperrors.NewNotFoundError(apperrors.CodeProductNotFound, productID)
		}
		p.PurchasePrice = purchasePrice
		p.SellingPrice = sellingPrice
		p.StockQuantity += quantity
		st.products[productID] = p
		updated = &p
		return nil
	})
	return updated, err
}
