package pgsql

import (
	"context"

	"github.com/SscSPs/erp_backoffice/internal/apperrors"
	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/erp_backoffice/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type PgxProductRepository struct {
	BaseRepository
}

func newPgxProductRepository(db DB) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{BaseRepository: BaseRepository{db: db}}
}

var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

const productColumns = `product_id, organization_id, barcode, description, purchase_price, selling_price, stock_quantity, created_at, last_updated_at`

func toModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:      d.ID,
		OrganizationID: d.OrganizationID,
		Barcode:        d.Barcode,
		Description:    d.Description,
		PurchasePrice:  d.PurchasePrice,
		SellingPrice:   d.SellingPrice,
		StockQuantity:  d.StockQuantity,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

func toDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ID:             m.ProductID,
		OrganizationID: m.OrganizationID,
		Barcode:        m.Barcode,
		Description:    m.Description,
		PurchasePrice:  m.PurchasePrice,
		SellingPrice:   m.SellingPrice,
		StockQuantity:  m.StockQuantity,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func (r *PgxProductRepository) collectProduct(rows pgx.Rows, productID string) (*domain.Product, error) {
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Product])
	if err != nil {
		return nil, notFound(err, apperrors.CodeProductNotFound, productID)
	}
	p := toDomainProduct(m)
	return &p, nil
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, organizationID, productID string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products
		WHERE organization_id = $1 AND product_id = $2;`
	rows, _ := r.db.Query(ctx, query, organizationID, productID)
	return r.collectProduct(rows, productID)
}

func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	m := toModelProduct(product)
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.db.Exec(ctx, query,
		m.ProductID,
		m.OrganizationID,
		m.Barcode,
		m.Description,
		m.PurchasePrice,
		m.SellingPrice,
		m.StockQuantity,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return translateError(err)
	}
	return nil
}

func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	m := toModelProduct(product)
	query := `
		UPDATE products
		SET barcode = $1, description = $2, purchase_price = $3, selling_price = $4,
			stock_quantity = $5, last_updated_at = $6
		WHERE organization_id = $7 AND product_id = $8;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.Barcode,
		m.Description,
		m.PurchasePrice,
		m.SellingPrice,
		m.StockQuantity,
		m.LastUpdatedAt,
		m.OrganizationID,
		m.ProductID,
	)
	if err != nil {
		return translateError(err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(apperrors.CodeProductNotFound, m.ProductID)
	}
	return nil
}

// AdjustStock applies delta atomically and returns the row after the change.
// The caller decides whether a negative result is acceptable.
func (r *PgxProductRepository) AdjustStock(ctx context.Context, organizationID, productID string, delta int64) (*domain.Product, error) {
	query := `
		UPDATE products
		SET stock_quantity = stock_quantity + $1, last_updated_at = NOW()
		WHERE organization_id = $2 AND product_id = $3
		RETURNING ` + productColumns + `;`
	rows, _ := r.db.Query(ctx, query, delta, organizationID, productID)
	return r.collectProduct(rows, productID)
}

func (r *PgxProductRepository) Restock(ctx context.Context, organizationID, productID string, purchasePrice, sellingPrice decimal.Decimal, quantity int64) (*domain.Product, error) {
	query := `
		UPDATE products
		SET purchase_price = $1, selling_price = $2, stock_quantity = stock_quantity + $3, last_updated_at = NOW()
		WHERE organization_id = $4 AND product_id = $5
		RETURNING ` + productColumns + `;`
	rows, _ := r.db.Query(ctx, query, purchasePrice, sellingPrice, quantity, organizationID, productID)
	return r.collectProduct(rows, productID)
}
