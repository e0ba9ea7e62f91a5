package pgsql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/erp_backoffice/internal/apperrors"
	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/erp_backoffice/internal/models"
	"github.com/jackc/pgx/v5"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(db DB) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{db: db}}
}

// Ensure PgxInvoiceRepository implements portsrepo.InvoiceRepositoryFacade
var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const invoiceWithRelationsSelect = `
	SELECT i.invoice_id, i.organization_id, i.invoice_type, i.subtotal, i.discount_percent,
		i.discount_amount, i.total, i.paid, i.remaining, i.customer_id, i.cashier_id,
		i.transaction_id, i.created_at,
		c.name, c.address, c.phone, c.created_at, c.last_updated_at,
		u.username, u.role
	FROM invoices i
	JOIN users u ON u.user_id = i.cashier_id
	LEFT JOIN customers c ON c.customer_id = i.customer_id`

const invoiceItemColumns = `invoice_item_id, invoice_id, product_id, barcode, description, purchase_price,
	selling_price, price, quantity, discount_percent, discount_amount, subtotal, total`

func toModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:       d.ID,
		OrganizationID:  d.OrganizationID,
		InvoiceType:     string(d.Type),
		Subtotal:        d.Subtotal,
		DiscountPercent: d.DiscountPercent,
		DiscountAmount:  d.DiscountAmount,
		Total:           d.Total,
		Paid:            d.Paid,
		Remaining:       d.Remaining,
		CustomerID:      d.CustomerID,
		CashierID:       d.CashierID,
		TransactionID:   d.TransactionID,
		CreatedAt:       d.CreatedAt,
	}
}

func toDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		ID:              m.InvoiceID,
		OrganizationID:  m.OrganizationID,
		Type:            domain.InvoiceType(m.InvoiceType),
		Subtotal:        m.Subtotal,
		DiscountPercent: m.DiscountPercent,
		DiscountAmount:  m.DiscountAmount,
		Total:           m.Total,
		Paid:            m.Paid,
		Remaining:       m.Remaining,
		CustomerID:      m.CustomerID,
		CashierID:       m.CashierID,
		TransactionID:   m.TransactionID,
		CreatedAt:       m.CreatedAt,
	}
}

func toModelInvoiceItem(d domain.InvoiceItem) models.InvoiceItem {
	return models.InvoiceItem{
		InvoiceItemID:   d.ID,
		InvoiceID:       d.InvoiceID,
		ProductID:       d.ProductID,
		Barcode:         d.Barcode,
		Description:     d.Description,
		PurchasePrice:   d.PurchasePrice,
		SellingPrice:    d.SellingPrice,
		Price:           d.Price,
		Quantity:        d.Quantity,
		DiscountPercent: d.DiscountPercent,
		DiscountAmount:  d.DiscountAmount,
		Subtotal:        d.Subtotal,
		Total:           d.Total,
	}
}

func toDomainInvoiceItem(m models.InvoiceItem) domain.InvoiceItem {
	return domain.InvoiceItem{
		ID:              m.InvoiceItemID,
		InvoiceID:       m.InvoiceID,
		ProductID:       m.ProductID,
		Barcode:         m.Barcode,
		Description:     m.Description,
		PurchasePrice:   m.PurchasePrice,
		SellingPrice:    m.SellingPrice,
		Price:           m.Price,
		Quantity:        m.Quantity,
		DiscountPercent: m.DiscountPercent,
		DiscountAmount:  m.DiscountAmount,
		Subtotal:        m.Subtotal,
		Total:           m.Total,
	}
}

// SaveInvoice inserts the header and all items in one batch.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice, items []domain.InvoiceItem) error {
	m := toModelInvoice(invoice)
	batch := &pgx.Batch{}
	batch.Queue(`
		INSERT INTO invoices (
			invoice_id, organization_id, invoice_type, subtotal, discount_percent, discount_amount,
			total, paid, remaining, customer_id, cashier_id, transaction_id, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`,
		m.InvoiceID, m.OrganizationID, m.InvoiceType, m.Subtotal, m.DiscountPercent, m.DiscountAmount,
		m.Total, m.Paid, m.Remaining, m.CustomerID, m.CashierID, m.TransactionID, m.CreatedAt,
	)

	itemQuery := `INSERT INTO invoice_items (` + invoiceItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`
	for _, item := range items {
		mi := toModelInvoiceItem(item)
		batch.Queue(itemQuery,
			mi.InvoiceItemID, mi.InvoiceID, mi.ProductID, mi.Barcode, mi.Description, mi.PurchasePrice,
			mi.SellingPrice, mi.Price, mi.Quantity, mi.DiscountPercent, mi.DiscountAmount, mi.Subtotal, mi.Total,
		)
	}

	br := r.db.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return translateError(err)
		}
	}
	if err := br.Close(); err != nil {
		return translateError(err)
	}
	return nil
}

func scanInvoiceWithRelations(row pgx.Row) (domain.InvoiceWithRelations, error) {
	var (
		m                 models.Invoice
		customerName      *string
		customerAddress   *string
		customerPhone     *string
		customerCreatedAt *time.Time
		customerUpdatedAt *time.Time
		cashierUsername   string
		cashierRole       string
	)
	err := row.Scan(
		&m.InvoiceID, &m.OrganizationID, &m.InvoiceType, &m.Subtotal, &m.DiscountPercent,
		&m.DiscountAmount, &m.Total, &m.Paid, &m.Remaining, &m.CustomerID, &m.CashierID,
		&m.TransactionID, &m.CreatedAt,
		&customerName, &customerAddress, &customerPhone, &customerCreatedAt, &customerUpdatedAt,
		&cashierUsername, &cashierRole,
	)
	if err != nil {
		return domain.InvoiceWithRelations{}, err
	}

	inv := domain.InvoiceWithRelations{
		Invoice: toDomainInvoice(m),
		Cashier: domain.UserSummary{ID: m.CashierID, Username: cashierUsername, Role: domain.Role(cashierRole)},
		Items:   []domain.InvoiceItem{},
	}
	if m.CustomerID != nil && customerName != nil {
		inv.Customer = &domain.Customer{
			ID:             *m.CustomerID,
			Name:           *customerName,
			Address:        customerAddress,
			Phone:          customerPhone,
			OrganizationID: m.OrganizationID,
		}
		if customerCreatedAt != nil {
			inv.Customer.CreatedAt = *customerCreatedAt
		}
		if customerUpdatedAt != nil {
			inv.Customer.LastUpdatedAt = *customerUpdatedAt
		}
	}
	return inv, nil
}

// attachItems loads the items of all given invoices with a single query.
func (r *PgxInvoiceRepository) attachItems(ctx context.Context, invoices []domain.InvoiceWithRelations) error {
	if len(invoices) == 0 {
		return nil
	}
	ids := make([]string, len(invoices))
	index := make(map[string]int, len(invoices))
	for i, inv := range invoices {
		ids[i] = inv.ID
		index[inv.ID] = i
	}

	query := `SELECT ` + invoiceItemColumns + `
		FROM invoice_items
		WHERE invoice_id = ANY($1)
		ORDER BY invoice_id, invoice_item_id;`
	rows, _ := r.db.Query(ctx, query, ids)
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.InvoiceItem])
	if err != nil {
		return fmt.Errorf("failed to load invoice items: %w", err)
	}
	for _, m := range ms {
		i := index[m.InvoiceID]
		invoices[i].Items = append(invoices[i].Items, toDomainInvoiceItem(m))
	}
	return nil
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, organizationID, invoiceID string) (*domain.InvoiceWithRelations, error) {
	query := invoiceWithRelationsSelect + `
	WHERE i.organization_id = $1 AND i.invoice_id = $2;`
	inv, err := scanInvoiceWithRelations(r.db.QueryRow(ctx, query, organizationID, invoiceID))
	if err != nil {
		return nil, notFound(err, apperrors.CodeInvoiceNotFound, invoiceID)
	}
	invoices := []domain.InvoiceWithRelations{inv}
	if err := r.attachItems(ctx, invoices); err != nil {
		return nil, err
	}
	return &invoices[0], nil
}

// filterClause renders the WHERE clause shared by ListInvoices and CountInvoices.
func filterClause(organizationID string, filter domain.InvoiceFilter) (string, []any) {
	conditions := []string{"i.organization_id = $1"}
	args := []any{organizationID}
	if filter.Type != nil {
		args = append(args, string(*filter.Type))
		conditions = append(conditions, fmt.Sprintf("i.invoice_type = $%d", len(args)))
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, organizationID string, filter domain.InvoiceFilter) ([]domain.InvoiceWithRelations, error) {
	where, args := filterClause(organizationID, filter)
	args = append(args, filter.Limit, filter.Offset)
	query := invoiceWithRelationsSelect + where +
		fmt.Sprintf(" ORDER BY i.created_at DESC, i.invoice_id DESC LIMIT $%d OFFSET $%d;", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	invoices := []domain.InvoiceWithRelations{}
	for rows.Next() {
		inv, err := scanInvoiceWithRelations(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", err)
	}
	rows.Close()

	if err := r.attachItems(ctx, invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *PgxInvoiceRepository) CountInvoices(ctx context.Context, organizationID string, filter domain.InvoiceFilter) (int64, error) {
	where, args := filterClause(organizationID, filter)
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM invoices i`+where+`;`, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count invoices: %w", err)
	}
	return count, nil
}
