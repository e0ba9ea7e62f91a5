package services_test

import (
	"time"

	"github.com/SscSPs/erp_backoffice/internal/apperrors"
	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/SscSPs/erp_backoffice/internal/dto"
	"github.com/google/uuid"
)

func (s *ServiceTestSuite) TestCreateOrganization_CreatesAdmin() {
	s.Equal("Acme Trading", s.org.Name)
	s.True(s.org.Balance.IsZero())
	s.Equal(domain.RoleAdmin, s.admin.Role)
	s.Equal(s.org.ID, s.admin.OrganizationID)
	s.NotEqual("correct-horse", s.admin.PasswordHash)
	s.Equal(s.now, s.org.CreatedAt)
}

func (s *ServiceTestSuite) TestCreateOrganization_Rejections() {
	_, _, err := s.orgs.CreateOrganization(s.ctx, dto.CreateOrganizationRequest{
		Name:          "Acme Again",
		Slug:          orgSlug,
		AdminUsername: "someone",
		AdminPassword: "password123",
	})
	s.assertAppError(err, apperrors.ErrConflict, apperrors.CodeOrganizationSlugTaken)

	_, _, err = s.orgs.CreateOrganization(s.ctx, dto.CreateOrganizationRequest{
		Name:          "Bad Slug",
		Slug:          "Bad Slug",
		AdminUsername: "someone",
		AdminPassword: "password123",
	})
	s.assertAppError(err, apperrors.ErrBadRequest, apperrors.CodeInvalidSlug)

	_, _, err = s.orgs.CreateOrganization(s.ctx, dto.CreateOrganizationRequest{
		Name:          "Short Password",
		Slug:          "short-password",
		AdminUsername: "someone",
		AdminPassword: "short",
	})
	s.assertAppError(err, apperrors.ErrBadRequest, apperrors.CodeValidationFailed)
}

func (s *ServiceTestSuite) TestOrganizations_AreIsolated() {
	_, otherAdmin, err := s.orgs.CreateOrganization(s.ctx, dto.CreateOrganizationRequest{
		Name:          "Globex",
		Slug:          "globex",
		AdminUsername: "owner",
		AdminPassword: "password123",
	})
	s.Require().NoError(err)

	product := s.createProduct("Beans", nil, "10", 10)

	_, err = s.invoices.CreateSale(s.ctx, "globex", dto.CreateSaleInvoiceRequest{
		Items: []dto.SaleItemRequest{{ProductID: product.ID, Price: dec("10"), Quantity: 1}},
	}, otherAdmin.ID)
	s.assertAppError(err, apperrors.ErrNotFound, apperrors.CodeProductNotFound)

	err = s.orgs.AddBalance(s.ctx, orgSlug, dec("10"), otherAdmin.ID)
	s.assertAppError(err, apperrors.ErrNotFound, apperrors.CodeUserNotFound)
}

func (s *ServiceTestSuite) TestAddBalance() {
	err := s.orgs.AddBalance(s.ctx, orgSlug, dec("0"), s.admin.ID)
	s.assertAppError(err, apperrors.ErrBadRequest, apperrors.CodeAmountNotPositive)

	err = s.orgs.AddBalance(s.ctx, orgSlug, dec("-5"), s.admin.ID)
	s.assertAppError(err, apperrors.ErrBadRequest, apperrors.CodeAmountNotPositive)

	s.Require().NoError(s.orgs.AddBalance(s.ctx, orgSlug, dec("150.5"), s.admin.ID))
	s.assertDecimal("150.5", s.balance())
	s.assertLedgerConsistent()

	err = s.orgs.AddBalance(s.ctx, orgSlug, dec("1"), uuid.NewString())
	s.assertAppError(err, apperrors.ErrNotFound, apperrors.CodeUserNotFound)
	s.assertDecimal("150.5", s.balance())
}

func (s *ServiceTestSuite) TestGetStatistics_ReplaysWindow() {
	today := s.now

	s.now = today.AddDate(0, 0, -40)
	s.Require().NoError(s.orgs.AddBalance(s.ctx, orgSlug, dec("50"), s.admin.ID))

	s.now = today.AddDate(0, 0, -2)
	s.Require().NoError(s.orgs.AddBalance(s.ctx, orgSlug, dec("100"), s.admin.ID))

	s.now = today
	_, err := s.expenses.CreateExpense(s.ctx, orgSlug, dto.CreateExpenseRequest{Description: "Rent", Amount: dec("30")}, s.admin.ID)
	s.Require().NoError(err)

	stats, err := s.orgs.GetStatistics(s.ctx, orgSlug)
	s.Require().NoError(err)

	s.Equal("Acme Trading", stats.Name)
	s.assertDecimal("120", stats.Balance)
	s.Equal(2, stats.TransactionCount)
	s.Require().Len(stats.BalanceAtDate, domain.StatisticsWindowDays)

	points := stats.BalanceAtDate
	last := len(points) - 1
	s.Equal(time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC), points[last].Date)
	s.Equal(time.Date(2026, time.February, 14, 0, 0, 0, 0, time.UTC), points[0].Date)
	s.assertDecimal("120", points[last].Balance)
	s.assertDecimal("150", points[last-1].Balance)
	s.assertDecimal("150", points[last-2].Balance)
	s.assertDecimal("50", points[last-3].Balance)
	s.assertDecimal("50", points[0].Balance)
}

func (s *ServiceTestSuite) TestGetStatistics_UnknownOrganization() {
	_, err := s.orgs.GetStatistics(s.ctx, "missing")
	s.assertAppError(err, apperrors.ErrNotFound, apperrors.CodeOrganizationNotFound)
}

func (s *ServiceTestSuite) TestBalanceMatchesLedgerAfterMixedOperations() {
	customer := s.createCustomer("Walk-in regular")
	product := s.createProduct("Beans", nil, "25", 10)

	s.Require().NoError(s.orgs.AddBalance(s.ctx, orgSlug, dec("1000"), s.admin.ID))
	_, err := s.invoices.CreateSale(s.ctx, orgSlug, dto.CreateSaleInvoiceRequest{
		CustomerID: &customer.ID,
		Items:      []dto.SaleItemRequest{{ProductID: product.ID, Price: dec("25"), Quantity: 4}},
		Paid:       dec("60"),
	}, s.admin.ID)
	s.Require().NoError(err)
	_, err = s.invoices.CreatePurchase(s.ctx, orgSlug, dto.CreatePurchaseInvoiceRequest{
		Items: []dto.PurchaseItemRequest{{ProductID: &product.ID, PurchasePrice: dec("12.34"), SellingPrice: dec("25"), Quantity: 3}},
		Paid:  dec("37.02"),
	}, s.admin.ID)
	s.Require().NoError(err)
	_, err = s.expenses.CreateExpense(s.ctx, orgSlug, dto.CreateExpenseRequest{Description: "Electricity", Amount: dec("80.5")}, s.admin.ID)
	s.Require().NoError(err)
	_, err = s.customers.CollectMoney(s.ctx, customer.ID, dec("40"), orgSlug, s.admin.ID)
	s.Require().NoError(err)
	_, err = s.customers.PayMoney(s.ctx, customer.ID, dec("5"), orgSlug, s.admin.ID)
	s.Require().NoError(err)

	// 1000 + 60 - 37.02 - 80.5 + 40 - 5
	s.assertDecimal("977.48", s.balance())
	s.assertLedgerConsistent()
}

func (s *ServiceTestSuite) TestAuthorizeMember() {
	member, err := s.orgs.AuthorizeMember(s.ctx, orgSlug, s.admin.ID)
	s.Require().NoError(err)
	s.Equal(s.admin.ID, member.ID)

	_, outsider, err := s.orgs.CreateOrganization(s.ctx, dto.CreateOrganizationRequest{
		Name:          "Globex",
		Slug:          "globex",
		AdminUsername: "owner",
		AdminPassword: "password123",
	})
	s.Require().NoError(err)

	_, err = s.orgs.AuthorizeMember(s.ctx, orgSlug, outsider.ID)
	s.assertAppError(err, apperrors.ErrForbidden, apperrors.CodeNotMember)

	_, err = s.orgs.AuthorizeMember(s.ctx, "missing", s.admin.ID)
	s.assertAppError(err, apperrors.ErrNotFound, apperrors.CodeOrganizationNotFound)

	cashier := s.createUser("cashier", domain.RoleUser)
	s.Require().NoError(s.users.DeleteUser(s.ctx, orgSlug, cashier.ID, s.admin.ID))
	_, err = s.orgs.AuthorizeMember(s.ctx, orgSlug, cashier.ID)
	s.assertAppError(err, apperrors.ErrForbidden, apperrors.CodeNotMember)
}
