package services_test

import (
	"github.com/SscSPs/erp_backoffice/internal/apperrors"
	"github.com/SscSPs/erp_backoffice/internal/dto"
)

func (s *ServiceTestSuite) TestCreateExpense() {
	s.Require().NoError(s.orgs.AddBalance(s.ctx, orgSlug, dec("100"), s.admin.ID))

	expense, err := s.expenses.CreateExpense(s.ctx, orgSlug, dto.CreateExpenseRequest{
		Description: " Cleaning supplies ",
		Amount:      dec("30.25"),
	}, s.admin.ID)
	s.Require().NoError(err)

	s.Equal("Cleaning supplies", expense.Description)
	s.assertDecimal("30.25", expense.Amount)
	s.NotEmpty(expense.TransactionID)
	s.Equal("owner", expense.Cashier.Username)
	s.Equal(s.now, expense.CreatedAt)

	s.assertDecimal("69.75", s.balance())
	s.assertLedgerConsistent()
}

func (s *ServiceTestSuite) TestCreateExpense_Rejections() {
	_, err := s.expenses.CreateExpense(s.ctx, orgSlug, dto.CreateExpenseRequest{Description: "Rent", Amount: dec("0")}, s.admin.ID)
	s.assertAppError(err, apperrors.ErrBadRequest, apperrors.CodeAmountNotPositive)

	_, err = s.expenses.CreateExpense(s.ctx, orgSlug, dto.CreateExpenseRequest{Amount: dec("5")}, s.admin.ID)
	s.assertAppError(err, apperrors.ErrBadRequest, apperrors.CodeValidationFailed)

	s.True(s.balance().IsZero())
}
