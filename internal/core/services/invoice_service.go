package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/erp_backoffice/internal/apperrors"
	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_backoffice/internal/core/ports/services"
	"github.com/SscSPs/erp_backoffice/internal/dto"
	"github.com/SscSPs/erp_backoffice/internal/platform/metrics"
	"github.com/SscSPs/erp_backoffice/internal/platform/tracing"
	"github.com/SscSPs/erp_backoffice/internal/utils/accounting"
	"github.com/SscSPs/erp_backoffice/internal/utils/money"
	"github.com/SscSPs/erp_backoffice/internal/utils/pagination"
	"github.com/SscSPs/erp_backoffice/internal/utils/validation"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// InvoiceService is the invoice engine. Creating an invoice is one unit of
// work: stock changes, the ledger row, the invoice with its items and the
// balance update either all commit or none do.
type InvoiceService struct {
	BaseService
	repos     portsrepo.RepositoryProvider
	txManager portsrepo.TransactionManager
	inventory *InventoryAdjuster
}

var _ portssvc.InvoiceSvcFacade = (*InvoiceService)(nil)

func NewInvoiceService(repos portsrepo.RepositoryProvider, txManager portsrepo.TransactionManager, m *metrics.Metrics) *InvoiceService {
	return &InvoiceService{
		BaseService: newBaseService(m),
		repos:       repos,
		txManager:   txManager,
		inventory:   NewInventoryAdjuster(m),
	}
}

// invoiceDraft is everything computed from the lines before totals are known.
type invoiceDraft struct {
	invoiceType     domain.InvoiceType
	event           LedgerEvent
	party           party
	customer        *domain.Customer
	items           []domain.InvoiceItem
	discountPercent int
	discountAmount  decimal.Decimal
	paid            decimal.Decimal
}

func (s *InvoiceService) CreateSale(ctx context.Context, orgSlug string, req dto.CreateSaleInvoiceRequest, userID string) (*domain.InvoiceWithRelations, error) {
	return tracing.Call(ctx, "InvoiceService.CreateSale", func(ctx context.Context) (*domain.InvoiceWithRelations, error) {
		if err := validation.Struct(req); err != nil {
			return nil, err
		}
		if len(req.Items) == 0 {
			return nil, apperrors.NewBadRequestError(apperrors.CodeInvoiceItemsEmpty)
		}

		var created *domain.InvoiceWithRelations
		err := s.txManager.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
			p, err := resolveParty(ctx, repos, orgSlug, userID)
			if err != nil {
				return err
			}
			customer, err := resolveCustomer(ctx, repos, p.Org.ID, req.CustomerID)
			if err != nil {
				return err
			}

			items := make([]domain.InvoiceItem, 0, len(req.Items))
			for _, line := range req.Items {
				product, err := s.inventory.DecrementForSale(ctx, repos.ProductRepo, p.Org.ID, line.ProductID, line.Quantity)
				if err != nil {
					return err
				}
				totals := accounting.CalculateLine(accounting.LineInput{
					Price:           line.Price,
					Quantity:        line.Quantity,
					DiscountPercent: line.DiscountPercent,
					DiscountAmount:  line.DiscountAmount,
				})
				items = append(items, snapshotItem(product, line.Price, line.Quantity, line.DiscountPercent, line.DiscountAmount, totals))
			}

			created, err = s.finalize(ctx, repos, invoiceDraft{
				invoiceType:     domain.InvoiceTypeSale,
				event:           EventSaleInvoice,
				party:           p,
				customer:        customer,
				items:           items,
				discountPercent: req.DiscountPercent,
				discountAmount:  req.DiscountAmount,
				paid:            req.Paid,
			})
			return err
		})
		if err != nil {
			s.LogFailure(ctx, err, "Failed to create sale invoice", slog.String("org_slug", orgSlug))
			return nil, err
		}

		s.afterCommit(ctx, created)
		return created, nil
	})
}

func (s *InvoiceService) CreatePurchase(ctx context.Context, orgSlug string, req dto.CreatePurchaseInvoiceRequest, userID string) (*domain.InvoiceWithRelations, error) {
	return tracing.Call(ctx, "InvoiceService.CreatePurchase", func(ctx context.Context) (*domain.InvoiceWithRelations, error) {
		if err := validation.Struct(req); err != nil {
			return nil, err
		}
		if len(req.Items) == 0 {
			return nil, apperrors.NewBadRequestError(apperrors.CodeInvoiceItemsEmpty)
		}

		var created *domain.InvoiceWithRelations
		err := s.txManager.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
			p, err := resolveParty(ctx, repos, orgSlug, userID)
			if err != nil {
				return err
			}
			customer, err := resolveCustomer(ctx, repos, p.Org.ID, req.CustomerID)
			if err != nil {
				return err
			}

			now := s.now()
			items := make([]domain.InvoiceItem, 0, len(req.Items))
			for _, line := range req.Items {
				product, err := s.inventory.ReceivePurchase(ctx, repos.ProductRepo, p.Org.ID, line, now)
				if err != nil {
					return err
				}
				totals := accounting.CalculateLine(accounting.LineInput{
					Price:           line.PurchasePrice,
					Quantity:        line.Quantity,
					DiscountPercent: line.DiscountPercent,
					DiscountAmount:  line.DiscountAmount,
				})
				items = append(items, snapshotItem(product, line.PurchasePrice, line.Quantity, line.DiscountPercent, line.DiscountAmount, totals))
			}

			created, err = s.finalize(ctx, repos, invoiceDraft{
				invoiceType:     domain.InvoiceTypePurchase,
				event:           EventPurchaseInvoice,
				party:           p,
				customer:        customer,
				items:           items,
				discountPercent: req.DiscountPercent,
				discountAmount:  req.DiscountAmount,
				paid:            req.Paid,
			})
			return err
		})
		if err != nil {
			s.LogFailure(ctx, err, "Failed to create purchase invoice", slog.String("org_slug", orgSlug))
			return nil, err
		}

		s.afterCommit(ctx, created)
		return created, nil
	})
}

// finalize computes the invoice totals, checks the paid amount, records the
// ledger row, persists the invoice and moves the balance, in that order.
func (s *InvoiceService) finalize(ctx context.Context, repos portsrepo.RepositoryProvider, d invoiceDraft) (*domain.InvoiceWithRelations, error) {
	itemTotals := make([]decimal.Decimal, len(d.items))
	for i, it := range d.items {
		itemTotals[i] = it.Total
	}
	totals := accounting.CalculateInvoice(accounting.InvoiceInput{
		ItemTotals:      itemTotals,
		DiscountPercent: d.discountPercent,
		DiscountAmount:  d.discountAmount,
		Paid:            d.paid,
	})

	if d.paid.IsNegative() {
		return nil, apperrors.NewBadRequestError(apperrors.CodePaidNegative)
	}
	if d.paid.GreaterThan(totals.Total) {
		return nil, apperrors.NewBadRequestError(apperrors.CodePaidExceedsTotal)
	}

	var customerID *string
	if d.customer != nil {
		customerID = &d.customer.ID
	}

	ledger := NewLedgerRecorder(s.now)
	txn, err := ledger.Record(ctx, repos, LedgerEntry{
		Event:          d.event,
		Amount:         d.paid,
		OrganizationID: d.party.Org.ID,
		CashierID:      d.party.Cashier.ID,
		CustomerID:     customerID,
	})
	if err != nil {
		return nil, err
	}

	invoice := domain.Invoice{
		ID:              uuid.NewString(),
		Type:            d.invoiceType,
		Subtotal:        totals.Subtotal,
		DiscountPercent: d.discountPercent,
		DiscountAmount:  d.discountAmount,
		Total:           totals.Total,
		Paid:            d.paid,
		Remaining:       totals.Remaining,
		CustomerID:      customerID,
		CashierID:       d.party.Cashier.ID,
		OrganizationID:  d.party.Org.ID,
		TransactionID:   txn.ID,
		CreatedAt:       txn.CreatedAt,
	}
	for i := range d.items {
		d.items[i].InvoiceID = invoice.ID
	}
	if err := repos.InvoiceRepo.SaveInvoice(ctx, invoice, d.items); err != nil {
		return nil, err
	}

	if _, err := ledger.ApplyToBalance(ctx, repos, txn); err != nil {
		return nil, err
	}

	return &domain.InvoiceWithRelations{
		Invoice:  invoice,
		Customer: d.customer,
		Cashier:  d.party.Cashier.Summary(),
		Items:    d.items,
	}, nil
}

func (s *InvoiceService) afterCommit(ctx context.Context, inv *domain.InvoiceWithRelations) {
	s.Metrics.InvoiceCreated(string(inv.Type))
	s.Metrics.LedgerEntriesRecorded(string(domain.TransactionTypeInvoice))
	s.GetLogger(ctx).Info("Invoice created successfully",
		slog.String("invoice_id", inv.ID),
		slog.String("type", string(inv.Type)),
		slog.String("total", money.Format(inv.Total)),
		slog.String("paid", money.Format(inv.Paid)),
		slog.Int("items", len(inv.Items)))
}

// snapshotItem copies the product fields onto the line so later product
// edits never alter the stored invoice.
func snapshotItem(product *domain.Product, price decimal.Decimal, quantity int64, discountPercent int, discountAmount decimal.Decimal, totals accounting.LineTotals) domain.InvoiceItem {
	productID := product.ID
	return domain.InvoiceItem{
		// v7 ids are time-ordered, so items read back in entry order.
		ID:              uuid.Must(uuid.NewV7()).String(),
		ProductID:       &productID,
		Barcode:         product.Barcode,
		Description:     product.Description,
		PurchasePrice:   product.PurchasePrice,
		SellingPrice:    product.SellingPrice,
		Price:           price,
		Quantity:        quantity,
		DiscountPercent: discountPercent,
		DiscountAmount:  discountAmount,
		Subtotal:        totals.Subtotal,
		Total:           totals.Total,
	}
}

func (s *InvoiceService) GetAllInvoices(ctx context.Context, orgSlug string, params dto.ListInvoicesParams) (*dto.InvoicePage, error) {
	return tracing.Call(ctx, "InvoiceService.GetAllInvoices", func(ctx context.Context) (*dto.InvoicePage, error) {
		if err := validation.Struct(params); err != nil {
			return nil, err
		}
		org, err := s.repos.OrganizationRepo.FindOrganizationBySlug(ctx, orgSlug)
		if err != nil {
			return nil, err
		}

		page := pagination.Normalize(params.Page, params.PageSize)
		filter := domain.InvoiceFilter{Limit: page.Limit(), Offset: page.Offset()}
		if params.Type != "" {
			t := domain.InvoiceType(params.Type)
			filter.Type = &t
		}

		var (
			data  []domain.InvoiceWithRelations
			total int64
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			data, err = s.repos.InvoiceRepo.ListInvoices(gctx, org.ID, filter)
			return err
		})
		g.Go(func() error {
			var err error
			total, err = s.repos.InvoiceRepo.CountInvoices(gctx, org.ID, filter)
			return err
		})
		if err := g.Wait(); err != nil {
			s.LogFailure(ctx, err, "Failed to list invoices", slog.String("org_slug", orgSlug))
			return nil, err
		}

		if data == nil {
			data = []domain.InvoiceWithRelations{}
		}
		return &dto.InvoicePage{Data: data, TotalCount: total}, nil
	})
}

func (s *InvoiceService) FindByID(ctx context.Context, orgSlug string, invoiceID string) (*domain.InvoiceWithRelations, error) {
	return tracing.Call(ctx, "InvoiceService.FindByID", func(ctx context.Context) (*domain.InvoiceWithRelations, error) {
		org, err := s.repos.OrganizationRepo.FindOrganizationBySlug(ctx, orgSlug)
		if err != nil {
			return nil, err
		}
		return s.repos.InvoiceRepo.FindInvoiceByID(ctx, org.ID, invoiceID)
	})
}
