package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/erp_backoffice/internal/core/ports/services"
	"github.com/SscSPs/erp_backoffice/internal/dto"
	"github.com/SscSPs/erp_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

type organizationHandler struct {
	orgService portssvc.OrganizationSvcFacade
}

func newOrganizationHandler(os portssvc.OrganizationSvcFacade) *organizationHandler {
	return &organizationHandler{orgService: os}
}

// RegisterOrganizationCreateRoute registers the public signup route.
func RegisterOrganizationCreateRoute(rg *gin.RouterGroup, orgService portssvc.OrganizationSvcFacade) {
	h := newOrganizationHandler(orgService)
	rg.POST("/organizations", h.createOrganization)
}

// RegisterOrganizationRoutes registers routes under /orgs/:orgSlug.
func RegisterOrganizationRoutes(org *gin.RouterGroup, orgService portssvc.OrganizationSvcFacade) {
	h := newOrganizationHandler(orgService)

	org.GET("", h.getOrganization)
	org.GET("/statistics", h.getStatistics)
	org.GET("/balance/reconciliation", h.reconcileBalance)
	org.POST("/balance", h.addBalance)
}

// createOrganization godoc
// @Summary Create an organization
// @Description Creates an organization together with its first admin user
// @Tags organizations
// @Accept  json
// @Produce  json
// @Param   organization body dto.CreateOrganizationRequest true "Organization details"
// @Success 201 {object} dto.CreateOrganizationResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 409 {object} handlers.ErrorResponse "Slug already taken"
// @Router /organizations [post]
func (h *organizationHandler) createOrganization(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateOrganizationRequest
	if !bindJSON(c, &req) {
		return
	}

	org, admin, err := h.orgService.CreateOrganization(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	logger.Info("Organization created successfully", slog.String("organization_id", org.ID))
	c.JSON(http.StatusCreated, dto.CreateOrganizationResponse{
		Organization: dto.ToOrganizationResponse(org),
		Admin:        dto.ToUserResponse(admin),
	})
}

// getOrganization godoc
// @Summary Get an organization
// @Tags organizations
// @Produce  json
// @Param   orgSlug path string true "Organization slug"
// @Success 200 {object} dto.OrganizationResponse
// @Failure 404 {object} handlers.ErrorResponse "Organization not found"
// @Security BearerAuth
// @Router /orgs/{orgSlug} [get]
func (h *organizationHandler) getOrganization(c *gin.Context) {
	org, err := h.orgService.GetOrganization(c.Request.Context(), c.Param("orgSlug"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrganizationResponse(org))
}

// getStatistics godoc
// @Summary Organization statistics
// @Description Current balance, number of transactions and the daily balance over the last 30 days
// @Tags organizations
// @Produce  json
// @Param   orgSlug path string true "Organization slug"
// @Success 200 {object} dto.StatisticsResponse
// @Failure 404 {object} handlers.ErrorResponse "Organization not found"
// @Security BearerAuth
// @Router /orgs/{orgSlug}/statistics [get]
func (h *organizationHandler) getStatistics(c *gin.Context) {
	stats, err := h.orgService.GetStatistics(c.Request.Context(), c.Param("orgSlug"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToStatisticsResponse(stats))
}

func (h *organizationHandler) reconcileBalance(c *gin.Context) {
	rec, err := h.orgService.ReconcileBalance(c.Request.Context(), c.Param("orgSlug"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// addBalance godoc
// @Summary Add balance
// @Description Records a positive BALANCE_ADDITION ledger entry
// @Tags organizations
// @Accept  json
// @Param   orgSlug path string true "Organization slug"
// @Param   request body dto.AddBalanceRequest true "Amount"
// @Success 204
// @Failure 400 {object} handlers.ErrorResponse "Amount not positive"
// @Security BearerAuth
// @Router /orgs/{orgSlug}/balance [post]
func (h *organizationHandler) addBalance(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.AddBalanceRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.orgService.AddBalance(c.Request.Context(), c.Param("orgSlug"), req.Amount, userID); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
