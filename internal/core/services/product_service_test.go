package services_test

import (
	"github.com/SscSPs/erp_backoffice/internal/apperrors"
	"github.com/SscSPs/erp_backoffice/internal/dto"
	"github.com/google/uuid"
)

func (s *ServiceTestSuite) TestCreateProduct_Uniqueness() {
	s.createProduct("Beans", strPtr("111"), "10", 1)

	_, err := s.products.CreateProduct(s.ctx, orgSlug, dto.CreateProductRequest{
		Barcode:       strPtr("111"),
		Description:   "Other beans",
		PurchasePrice: dec("1"),
		SellingPrice:  dec("2"),
	})
	s.assertAppError(err, apperrors.ErrConflict, apperrors.CodeProductBarcodeTaken)

	_, err = s.products.CreateProduct(s.ctx, orgSlug, dto.CreateProductRequest{
		Description:   "Beans",
		PurchasePrice: dec("1"),
		SellingPrice:  dec("2"),
	})
	s.assertAppError(err, apperrors.ErrConflict, apperrors.CodeProductDescriptionUsed)
}

func (s *ServiceTestSuite) TestCreateProduct_BlankBarcodeIsAbsent() {
	first := s.createProduct("Napkins", strPtr("  "), "1", 1)
	second := s.createProduct("Straws", strPtr(""), "1", 1)

	s.Nil(first.Barcode)
	s.Nil(second.Barcode)
}

func (s *ServiceTestSuite) TestCreateProduct_RejectsNegativePrice() {
	_, err := s.products.CreateProduct(s.ctx, orgSlug, dto.CreateProductRequest{
		Description:   "Broken",
		PurchasePrice: dec("-1"),
		SellingPrice:  dec("2"),
	})
	s.assertAppError(err, apperrors.ErrBadRequest, apperrors.CodeValidationFailed)
}

func (s *ServiceTestSuite) TestUpdateProduct() {
	product := s.createProduct("Beans", nil, "10", 1)

	updated, err := s.products.UpdateProduct(s.ctx, orgSlug, product.ID, dto.UpdateProductRequest{
		Barcode:       strPtr("222"),
		Description:   "Beans 500g",
		PurchasePrice: dec("6"),
		SellingPrice:  dec("11"),
		StockQuantity: 9,
	})
	s.Require().NoError(err)
	s.Equal("222", *updated.Barcode)
	s.Equal(int64(9), s.stockOf(product.ID))

	_, err = s.products.UpdateProduct(s.ctx, orgSlug, uuid.NewString(), dto.UpdateProductRequest{
		Description:   "Ghost",
		PurchasePrice: dec("1"),
		SellingPrice:  dec("1"),
	})
	s.assertAppError(err, apperrors.ErrNotFound, apperrors.CodeProductNotFound)
}
