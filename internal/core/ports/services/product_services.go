package services

import (
	"context"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/SscSPs/erp_backoffice/internal/dto"
)

type ProductSvcFacade interface {
	CreateProduct(ctx context.Context, orgSlug string, req dto.CreateProductRequest) (*domain.Product, error)
	UpdateProduct(ctx context.Context, orgSlug string, productID string, req dto.UpdateProductRequest) (*domain.Product, error)
}
