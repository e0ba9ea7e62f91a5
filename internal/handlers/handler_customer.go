package handlers

import (
	"context"
	"net/http"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/erp_backoffice/internal/core/ports/services"
	"github.com/SscSPs/erp_backoffice/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type customerHandler struct {
	customerService portssvc.CustomerSvcFacade
}

// RegisterCustomerRoutes registers customer routes under the organization group.
func RegisterCustomerRoutes(org *gin.RouterGroup, customerService portssvc.CustomerSvcFacade) {
	h := &customerHandler{customerService: customerService}

	customers := org.Group("/customers")
	{
		customers.POST("", h.createCustomer)
		customers.GET("/:customerId", h.getCustomer)
		customers.POST("/:customerId/collect", h.collectMoney)
		customers.POST("/:customerId/pay", h.payMoney)
	}
}

// createCustomer godoc
// @Summary Create a customer
// @Tags customers
// @Accept  json
// @Produce  json
// @Param   orgSlug path string true "Organization slug"
// @Param   customer body dto.CreateCustomerRequest true "Customer details"
// @Success 201 {object} dto.CustomerResponse
// @Failure 409 {object} handlers.ErrorResponse "Name taken"
// @Security BearerAuth
// @Router /orgs/{orgSlug}/customers [post]
func (h *customerHandler) createCustomer(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if !bindJSON(c, &req) {
		return
	}
	customer, err := h.customerService.CreateCustomer(c.Request.Context(), c.Param("orgSlug"), req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

// getCustomer godoc
// @Summary Get a customer with balance
// @Description A positive balance means the organization owes the customer.
// @Tags customers
// @Produce  json
// @Param   orgSlug path string true "Organization slug"
// @Param   customerId path string true "Customer ID"
// @Success 200 {object} dto.CustomerBalanceResponse
// @Failure 404 {object} handlers.ErrorResponse "Customer not found"
// @Security BearerAuth
// @Router /orgs/{orgSlug}/customers/{customerId} [get]
func (h *customerHandler) getCustomer(c *gin.Context) {
	customer, err := h.customerService.GetCustomer(c.Request.Context(), c.Param("orgSlug"), c.Param("customerId"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerBalanceResponse(customer))
}

// collectMoney godoc
// @Summary Collect money from a customer
// @Tags customers
// @Accept  json
// @Produce  json
// @Param   orgSlug path string true "Organization slug"
// @Param   customerId path string true "Customer ID"
// @Param   request body dto.MoneyMovementRequest true "Amount"
// @Success 201 {object} dto.TransactionResponse
// @Security BearerAuth
// @Router /orgs/{orgSlug}/customers/{customerId}/collect [post]
func (h *customerHandler) collectMoney(c *gin.Context) {
	h.moveMoney(c, h.customerService.CollectMoney)
}

// payMoney godoc
// @Summary Pay money to a customer
// @Tags customers
// @Accept  json
// @Produce  json
// @Param   orgSlug path string true "Organization slug"
// @Param   customerId path string true "Customer ID"
// @Param   request body dto.MoneyMovementRequest true "Amount"
// @Success 201 {object} dto.TransactionResponse
// @Security BearerAuth
// @Router /orgs/{orgSlug}/customers/{customerId}/pay [post]
func (h *customerHandler) payMoney(c *gin.Context) {
	h.moveMoney(c, h.customerService.PayMoney)
}

func (h *customerHandler) moveMoney(c *gin.Context, move func(ctx context.Context, customerID string, amount decimal.Decimal, orgSlug string, userID string) (*domain.Transaction, error)) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.MoneyMovementRequest
	if !bindJSON(c, &req) {
		return
	}
	txn, err := move(c.Request.Context(), c.Param("customerId"), req.Amount, c.Param("orgSlug"), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}
