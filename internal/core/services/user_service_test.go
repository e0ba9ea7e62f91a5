package services_test

import (
	"github.com/SscSPs/erp_backoffice/internal/apperrors"
	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/SscSPs/erp_backoffice/internal/dto"
	"github.com/google/uuid"
)

func (s *ServiceTestSuite) TestCreateUser() {
	cashier := s.createUser("cashier", domain.RoleUser)
	s.Equal(domain.RoleUser, cashier.Role)
	s.Equal(s.org.ID, cashier.OrganizationID)
	s.NotEqual("password123", cashier.PasswordHash)

	_, err := s.users.CreateUser(s.ctx, orgSlug, dto.CreateUserRequest{
		Username: "cashier",
		Password: "password123",
		Role:     domain.RoleUser,
	}, s.admin.ID)
	s.assertAppError(err, apperrors.ErrConflict, apperrors.CodeUsernameTaken)

	_, err = s.users.CreateUser(s.ctx, orgSlug, dto.CreateUserRequest{
		Username: "intruder",
		Password: "password123",
		Role:     domain.RoleAdmin,
	}, cashier.ID)
	s.assertAppError(err, apperrors.ErrForbidden, apperrors.CodeAdminRequired)

	_, err = s.users.CreateUser(s.ctx, orgSlug, dto.CreateUserRequest{
		Username: "manager",
		Password: "password123",
		Role:     "OWNER",
	}, s.admin.ID)
	s.assertAppError(err, apperrors.ErrBadRequest, apperrors.CodeValidationFailed)
}

func (s *ServiceTestSuite) TestDeleteUser_SoleAdminIsProtected() {
	err := s.users.DeleteUser(s.ctx, orgSlug, s.admin.ID, s.admin.ID)
	s.assertAppError(err, apperrors.ErrForbidden, apperrors.CodeLastAdmin)

	_, err = s.store.Repositories().UserRepo.FindActiveUserByID(s.ctx, s.org.ID, s.admin.ID)
	s.NoError(err)
}

func (s *ServiceTestSuite) TestDeleteUser_OtherAdminWhenTwoExist() {
	second := s.createUser("deputy", domain.RoleAdmin)

	err := s.users.DeleteUser(s.ctx, orgSlug, s.admin.ID, s.admin.ID)
	s.assertAppError(err, apperrors.ErrForbidden, apperrors.CodeSelfDelete)

	s.Require().NoError(s.users.DeleteUser(s.ctx, orgSlug, second.ID, s.admin.ID))

	_, err = s.store.Repositories().UserRepo.FindActiveUserByID(s.ctx, s.org.ID, second.ID)
	s.assertAppError(err, apperrors.ErrNotFound, apperrors.CodeUserNotFound)

	err = s.users.DeleteUser(s.ctx, orgSlug, second.ID, s.admin.ID)
	s.assertAppError(err, apperrors.ErrNotFound, apperrors.CodeUserNotFound)
}

func (s *ServiceTestSuite) TestDeleteUser_RequiresAdmin() {
	cashier := s.createUser("cashier", domain.RoleUser)
	other := s.createUser("other", domain.RoleUser)

	err := s.users.DeleteUser(s.ctx, orgSlug, other.ID, cashier.ID)
	s.assertAppError(err, apperrors.ErrForbidden, apperrors.CodeAdminRequired)

	s.Require().NoError(s.users.DeleteUser(s.ctx, orgSlug, other.ID, s.admin.ID))
}

func (s *ServiceTestSuite) TestDeleteUser_UnknownTarget() {
	err := s.users.DeleteUser(s.ctx, orgSlug, uuid.NewString(), s.admin.ID)
	s.assertAppError(err, apperrors.ErrNotFound, apperrors.CodeUserNotFound)
}

func (s *ServiceTestSuite) TestDeletedUser_CannotActAndNameIsReusable() {
	cashier := s.createUser("cashier", domain.RoleUser)
	s.Require().NoError(s.users.DeleteUser(s.ctx, orgSlug, cashier.ID, s.admin.ID))

	err := s.orgs.AddBalance(s.ctx, orgSlug, dec("10"), cashier.ID)
	s.assertAppError(err, apperrors.ErrNotFound, apperrors.CodeUserNotFound)

	replacement := s.createUser("cashier", domain.RoleUser)
	s.NotEqual(cashier.ID, replacement.ID)
}
