package services_test

import (
	"github.com/SscSPs/erp_backoffice/internal/apperrors"
	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/SscSPs/erp_backoffice/internal/dto"
	"github.com/google/uuid"
)

func (s *ServiceTestSuite) TestCustomerBalance_FollowsInvoicesAndPayments() {
	customer := s.createCustomer("Corner Cafe")
	product := s.createProduct("Syrup", nil, "100", 10)

	_, err := s.invoices.CreateSale(s.ctx, orgSlug, dto.CreateSaleInvoiceRequest{
		CustomerID: &customer.ID,
		Items:      []dto.SaleItemRequest{{ProductID: product.ID, Price: dec("100"), Quantity: 1}},
		Paid:       dec("10"),
	}, s.admin.ID)
	s.Require().NoError(err)

	got, err := s.customers.GetCustomer(s.ctx, orgSlug, customer.ID)
	s.Require().NoError(err)
	s.Equal("Corner Cafe", got.Name)
	s.assertDecimal("-90", got.Balance)

	txn, err := s.customers.CollectMoney(s.ctx, customer.ID, dec("50"), orgSlug, s.admin.ID)
	s.Require().NoError(err)
	s.Equal(domain.TransactionTypeCollectFromCustomer, txn.Type)
	s.assertDecimal("50", txn.Amount)
	s.Require().NotNil(txn.CustomerID)
	s.Equal(customer.ID, *txn.CustomerID)

	got, err = s.customers.GetCustomer(s.ctx, orgSlug, customer.ID)
	s.Require().NoError(err)
	s.assertDecimal("-40", got.Balance)

	txn, err = s.customers.PayMoney(s.ctx, customer.ID, dec("20"), orgSlug, s.admin.ID)
	s.Require().NoError(err)
	s.Equal(domain.TransactionTypePayToCustomer, txn.Type)
	s.assertDecimal("-20", txn.Amount)

	got, err = s.customers.GetCustomer(s.ctx, orgSlug, customer.ID)
	s.Require().NoError(err)
	s.assertDecimal("-60", got.Balance)

	s.assertDecimal("40", s.balance())
	s.assertLedgerConsistent()
}

func (s *ServiceTestSuite) TestCustomerBalance_PurchaseCreditsCustomer() {
	supplier := s.createCustomer("Roastery")

	_, err := s.invoices.CreatePurchase(s.ctx, orgSlug, dto.CreatePurchaseInvoiceRequest{
		CustomerID: &supplier.ID,
		Items: []dto.PurchaseItemRequest{{
			Description:   strPtr("Green beans"),
			PurchasePrice: dec("30"),
			SellingPrice:  dec("45"),
			Quantity:      10,
		}},
		Paid: dec("100"),
	}, s.admin.ID)
	s.Require().NoError(err)

	got, err := s.customers.GetCustomer(s.ctx, orgSlug, supplier.ID)
	s.Require().NoError(err)
	s.assertDecimal("200", got.Balance)
}

func (s *ServiceTestSuite) TestCustomer_Rejections() {
	s.createCustomer("Corner Cafe")

	_, err := s.customers.CreateCustomer(s.ctx, orgSlug, dto.CreateCustomerRequest{Name: "Corner Cafe"})
	s.assertAppError(err, apperrors.ErrConflict, apperrors.CodeCustomerNameTaken)

	_, err = s.customers.CreateCustomer(s.ctx, orgSlug, dto.CreateCustomerRequest{})
	s.assertAppError(err, apperrors.ErrBadRequest, apperrors.CodeValidationFailed)

	_, err = s.customers.GetCustomer(s.ctx, orgSlug, uuid.NewString())
	s.assertAppError(err, apperrors.ErrNotFound, apperrors.CodeCustomerNotFound)

	_, err = s.customers.CollectMoney(s.ctx, uuid.NewString(), dec("5"), orgSlug, s.admin.ID)
	s.assertAppError(err, apperrors.ErrNotFound, apperrors.CodeCustomerNotFound)
	s.True(s.balance().IsZero())
}

func (s *ServiceTestSuite) TestCustomerPayments_RequirePositiveAmount() {
	customer := s.createCustomer("Corner Cafe")

	_, err := s.customers.CollectMoney(s.ctx, customer.ID, dec("0"), orgSlug, s.admin.ID)
	s.assertAppError(err, apperrors.ErrBadRequest, apperrors.CodeAmountNotPositive)

	_, err = s.customers.PayMoney(s.ctx, customer.ID, dec("-3"), orgSlug, s.admin.ID)
	s.assertAppError(err, apperrors.ErrBadRequest, apperrors.CodeAmountNotPositive)
}
