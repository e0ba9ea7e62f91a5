package dto

import (
	"time"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateOrganizationRequest creates a tenant together with its first admin.
type CreateOrganizationRequest struct {
	Name          string `json:"name" binding:"required,max=100"`
	Slug          string `json:"slug" binding:"required,max=64"`
	AdminUsername string `json:"adminUsername" binding:"required,min=3,max=64"`
	AdminPassword string `json:"adminPassword" binding:"required,min=8,max=72"`
}

type AddBalanceRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type OrganizationResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Slug      string          `json:"slug"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"createdAt"`
}

// CreateOrganizationResponse returns the organization and its admin.
type CreateOrganizationResponse struct {
	Organization OrganizationResponse `json:"organization"`
	Admin        UserResponse         `json:"admin"`
}

type BalancePointResponse struct {
	Date    string          `json:"date"`
	Balance decimal.Decimal `json:"balance"`
}

type StatisticsResponse struct {
	Name             string                 `json:"name"`
	Balance          decimal.Decimal        `json:"balance"`
	TransactionCount int                    `json:"transactionCount"`
	BalanceAtDate    []BalancePointResponse `json:"balanceAtDate"`
}

// BalanceReconciliation compares the stored balance with the ledger.
type BalanceReconciliation struct {
	Balance     decimal.Decimal `json:"balance"`
	LedgerTotal decimal.Decimal `json:"ledgerTotal"`
	Consistent  bool            `json:"consistent"`
}

func ToOrganizationResponse(org *domain.Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:        org.ID,
		Name:      org.Name,
		Slug:      org.Slug,
		Balance:   org.Balance,
		CreatedAt: org.CreatedAt,
	}
}

func ToStatisticsResponse(stats *domain.OrganizationStatistics) StatisticsResponse {
	points := make([]BalancePointResponse, len(stats.BalanceAtDate))
	for i, p := range stats.BalanceAtDate {
		points[i] = BalancePointResponse{Date: p.Date.Format(time.DateOnly), Balance: p.Balance}
	}
	return StatisticsResponse{
		Name:             stats.Name,
		Balance:          stats.Balance,
		TransactionCount: stats.TransactionCount,
		BalanceAtDate:    points,
	}
}
