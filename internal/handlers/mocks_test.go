package handlers_test

import (
	"context"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/erp_backoffice/internal/core/ports/services"
	"github.com/SscSPs/erp_backoffice/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock OrganizationService ---
type MockOrganizationService struct {
	mock.Mock
}

func (m *MockOrganizationService) GetOrganization(ctx context.Context, orgSlug string) (*domain.Organization, error) {
	args := m.Called(ctx, orgSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}
func (m *MockOrganizationService) AuthorizeMember(ctx context.Context, orgSlug string, userID string) (*domain.User, error) {
	args := m.Called(ctx, orgSlug, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockOrganizationService) GetStatistics(ctx context.Context, orgSlug string) (*domain.OrganizationStatistics, error) {
	args := m.Called(ctx, orgSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrganizationStatistics), args.Error(1)
}
func (m *MockOrganizationService) ReconcileBalance(ctx context.Context, orgSlug string) (*dto.BalanceReconciliation, error) {
	args := m.Called(ctx, orgSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BalanceReconciliation), args.Error(1)
}
func (m *MockOrganizationService) CreateOrganization(ctx context.Context, req dto.CreateOrganizationRequest) (*domain.Organization, *domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Organization), args.Get(1).(*domain.User), args.Error(2)
}
func (m *MockOrganizationService) AddBalance(ctx context.Context, orgSlug string, amount decimal.Decimal, userID string) error {
	args := m.Called(ctx, orgSlug, amount, userID)
	return args.Error(0)
}

var _ portssvc.OrganizationSvcFacade = (*MockOrganizationService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, orgSlug string, req dto.CreateUserRequest, requestingUserID string) (*domain.User, error) {
	args := m.Called(ctx, orgSlug, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) DeleteUser(ctx context.Context, orgSlug string, userID string, requestingUserID string) error {
	args := m.Called(ctx, orgSlug, userID, requestingUserID)
	return args.Error(0)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock CustomerService ---
type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) GetCustomer(ctx context.Context, orgSlug string, customerID string) (*domain.CustomerWithBalance, error) {
	args := m.Called(ctx, orgSlug, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomerWithBalance), args.Error(1)
}
func (m *MockCustomerService) CreateCustomer(ctx context.Context, orgSlug string, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	args := m.Called(ctx, orgSlug, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) CollectMoney(ctx context.Context, customerID string, amount decimal.Decimal, orgSlug string, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, customerID, amount, orgSlug, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockCustomerService) PayMoney(ctx context.Context, customerID string, amount decimal.Decimal, orgSlug string, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, customerID, amount, orgSlug, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

var _ portssvc.CustomerSvcFacade = (*MockCustomerService)(nil)

// --- Mock ProductService ---
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) CreateProduct(ctx context.Context, orgSlug string, req dto.CreateProductRequest) (*domain.Product, error) {
	args := m.Called(ctx, orgSlug, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockProductService) UpdateProduct(ctx context.Context, orgSlug string, productID string, req dto.UpdateProductRequest) (*domain.Product, error) {
	args := m.Called(ctx, orgSlug, productID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

var _ portssvc.ProductSvcFacade = (*MockProductService)(nil)

// --- Mock InvoiceService ---
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) CreateSale(ctx context.Context, orgSlug string, req dto.CreateSaleInvoiceRequest, userID string) (*domain.InvoiceWithRelations, error) {
	args := m.Called(ctx, orgSlug, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceWithRelations), args.Error(1)
}
func (m *MockInvoiceService) CreatePurchase(ctx context.Context, orgSlug string, req dto.CreatePurchaseInvoiceRequest, userID string) (*domain.InvoiceWithRelations, error) {
	args := m.Called(ctx, orgSlug, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceWithRelations), args.Error(1)
}
func (m *MockInvoiceService) GetAllInvoices(ctx context.Context, orgSlug string, params dto.ListInvoicesParams) (*dto.InvoicePage, error) {
	args := m.Called(ctx, orgSlug, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.InvoicePage), args.Error(1)
}
func (m *MockInvoiceService) FindByID(ctx context.Context, orgSlug string, invoiceID string) (*domain.InvoiceWithRelations, error) {
	args := m.Called(ctx, orgSlug, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceWithRelations), args.Error(1)
}

var _ portssvc.InvoiceSvcFacade = (*MockInvoiceService)(nil)

// --- Mock ExpenseService ---
type MockExpenseService struct {
	mock.Mock
}

func (m *MockExpenseService) CreateExpense(ctx context.Context, orgSlug string, req dto.CreateExpenseRequest, userID string) (*domain.ExpenseWithCashier, error) {
	args := m.Called(ctx, orgSlug, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseWithCashier), args.Error(1)
}

var _ portssvc.ExpenseSvcFacade = (*MockExpenseService)(nil)
