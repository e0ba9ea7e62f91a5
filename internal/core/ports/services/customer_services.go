package services

import (
	"context"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/SscSPs/erp_backoffice/internal/dto"
	"github.com/shopspring/decimal"
)

type CustomerReaderSvc interface {
	// GetCustomer returns the customer with its balance derived on every call.
	GetCustomer(ctx context.Context, orgSlug string, customerID string) (*domain.CustomerWithBalance, error)
}

type CustomerWriterSvc interface {
	CreateCustomer(ctx context.Context, orgSlug string, req dto.CreateCustomerRequest) (*domain.Customer, error)
}

// CustomerPaymentSvc records cash moving between the organization and a customer.
type CustomerPaymentSvc interface {
	CollectMoney(ctx context.Context, customerID string, amount decimal.Decimal, orgSlug string, userID string) (*domain.Transaction, error)
	PayMoney(ctx context.Context, customerID string, amount decimal.Decimal, orgSlug string, userID string) (*domain.Transaction, error)
}

type CustomerSvcFacade interface {
	CustomerReaderSvc
	CustomerWriterSvc
	CustomerPaymentSvc
}
