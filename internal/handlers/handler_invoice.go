package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/erp_backoffice/internal/apperrors"
	portssvc "github.com/SscSPs/erp_backoffice/internal/core/ports/services"
	"github.com/SscSPs/erp_backoffice/internal/dto"
	"github.com/SscSPs/erp_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

// RegisterInvoiceRoutes registers invoice routes under the organization group.
func RegisterInvoiceRoutes(org *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	h := &invoiceHandler{invoiceService: invoiceService}

	invoices := org.Group("/invoices")
	{
		invoices.POST("/sales", h.createSale)
		invoices.POST("/purchases", h.createPurchase)
		invoices.GET("", h.listInvoices)
		invoices.GET("/:invoiceId", h.getInvoice)
	}
}

// createSale godoc
// @Summary Create a sale invoice
// @Description Decrements stock, records the paid amount in the ledger and raises the balance, all in one unit of work
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   orgSlug path string true "Organization slug"
// @Param   invoice body dto.CreateSaleInvoiceRequest true "Sale"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid input, insufficient stock or paid out of range"
// @Failure 404 {object} handlers.ErrorResponse "Organization, cashier, customer or product not found"
// @Security BearerAuth
// @Router /orgs/{orgSlug}/invoices/sales [post]
func (h *invoiceHandler) createSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateSaleInvoiceRequest
	if !bindJSON(c, &req) {
		return
	}

	logger.Info("Received request to create sale invoice", slog.Int("items", len(req.Items)))
	inv, err := h.invoiceService.CreateSale(c.Request.Context(), c.Param("orgSlug"), req, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(inv))
}

// createPurchase godoc
// @Summary Create a purchase invoice
// @Description Restocks or creates products, records the paid amount in the ledger and lowers the balance
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   orgSlug path string true "Organization slug"
// @Param   invoice body dto.CreatePurchaseInvoiceRequest true "Purchase"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid input or paid out of range"
// @Failure 409 {object} handlers.ErrorResponse "Barcode or description taken"
// @Security BearerAuth
// @Router /orgs/{orgSlug}/invoices/purchases [post]
func (h *invoiceHandler) createPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreatePurchaseInvoiceRequest
	if !bindJSON(c, &req) {
		return
	}

	logger.Info("Received request to create purchase invoice", slog.Int("items", len(req.Items)))
	inv, err := h.invoiceService.CreatePurchase(c.Request.Context(), c.Param("orgSlug"), req, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(inv))
}

// listInvoices godoc
// @Summary List invoices
// @Description Newest first, offset paginated
// @Tags invoices
// @Produce  json
// @Param   orgSlug path string true "Organization slug"
// @Param   page query int false "Page, starting at 1"
// @Param   pageSize query int false "Page size (default 20, max 100)"
// @Param   type query string false "SALE or PURCHASE"
// @Success 200 {object} dto.ListInvoicesResponse
// @Security BearerAuth
// @Router /orgs/{orgSlug}/invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	var params dto.ListInvoicesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithError(c, apperrors.NewValidationFailedError(err))
		return
	}
	page, err := h.invoiceService.GetAllInvoices(c.Request.Context(), c.Param("orgSlug"), params)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListInvoicesResponse(page))
}

// getInvoice godoc
// @Summary Get an invoice
// @Tags invoices
// @Produce  json
// @Param   orgSlug path string true "Organization slug"
// @Param   invoiceId path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} handlers.ErrorResponse "Invoice not found"
// @Security BearerAuth
// @Router /orgs/{orgSlug}/invoices/{invoiceId} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	inv, err := h.invoiceService.FindByID(c.Request.Context(), c.Param("orgSlug"), c.Param("invoiceId"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(inv))
}
