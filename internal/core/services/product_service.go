package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_backoffice/internal/core/ports/services"
	"github.com/SscSPs/erp_backoffice/internal/dto"
	"github.com/SscSPs/erp_backoffice/internal/platform/metrics"
	"github.com/SscSPs/erp_backoffice/internal/platform/tracing"
	"github.com/SscSPs/erp_backoffice/internal/utils/validation"
	"github.com/google/uuid"
)

// ProductService covers direct product edits. Invoice-driven stock changes
// go through InventoryAdjuster.
type ProductService struct {
	BaseService
	repos portsrepo.RepositoryProvider
}

var _ portssvc.ProductSvcFacade = (*ProductService)(nil)

func NewProductService(repos portsrepo.RepositoryProvider, m *metrics.Metrics) *ProductService {
	return &ProductService{
		BaseService: newBaseService(m),
		repos:       repos,
	}
}

func (s *ProductService) CreateProduct(ctx context.Context, orgSlug string, req dto.CreateProductRequest) (*domain.Product, error) {
	return tracing.Call(ctx, "ProductService.CreateProduct", func(ctx context.Context) (*domain.Product, error) {
		if err := validation.Struct(req); err != nil {
			return nil, err
		}
		org, err := s.repos.OrganizationRepo.FindOrganizationBySlug(ctx, orgSlug)
		if err != nil {
			return nil, err
		}

		now := s.now()
		product := domain.Product{
			ID:             uuid.NewString(),
			Barcode:        normalizeBarcode(req.Barcode),
			Description:    strings.TrimSpace(req.Description),
			PurchasePrice:  req.PurchasePrice,
			SellingPrice:   req.SellingPrice,
			StockQuantity:  req.StockQuantity,
			OrganizationID: org.ID,
			AuditFields:    domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
		}
		if err := s.repos.ProductRepo.SaveProduct(ctx, product); err != nil {
			s.LogFailure(ctx, err, "Failed to create product", slog.String("org_slug", orgSlug))
			return nil, err
		}
		return &product, nil
	})
}

func (s *ProductService) UpdateProduct(ctx context.Context, orgSlug string, productID string, req dto.UpdateProductRequest) (*domain.Product, error) {
	return tracing.Call(ctx, "ProductService.UpdateProduct", func(ctx context.Context) (*domain.Product, error) {
		if err := validation.Struct(req); err != nil {
			return nil, err
		}
		org, err := s.repos.OrganizationRepo.FindOrganizationBySlug(ctx, orgSlug)
		if err != nil {
			return nil, err
		}
		existing, err := s.repos.ProductRepo.FindProductByID(ctx, org.ID, productID)
		if err != nil {
			return nil, err
		}

		updated := *existing
		updated.Barcode = normalizeBarcode(req.Barcode)
		updated.Description = strings.TrimSpace(req.Description)
		updated.PurchasePrice = req.PurchasePrice
		updated.SellingPrice = req.SellingPrice
		updated.StockQuantity = req.StockQuantity
		updated.LastUpdatedAt = s.now()

		if err := s.repos.ProductRepo.UpdateProduct(ctx, updated); err != nil {
			s.LogFailure(ctx, err, "Failed to update product", slog.String("product_id", productID))
			return nil, err
		}
		return &updated, nil
	})
}
