package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/erp_backoffice/internal/core/ports/services"
	"github.com/SscSPs/erp_backoffice/internal/dto"
	"github.com/gin-gonic/gin"
)

type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

func RegisterExpenseRoutes(org *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade) {
	h := &expenseHandler{expenseService: expenseService}
	org.POST("/expenses", h.createExpense)
}

// createExpense godoc
// @Summary Record an expense
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   orgSlug path string true "Organization slug"
// @Param   expense body dto.CreateExpenseRequest true "Expense"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} handlers.ErrorResponse "Amount not positive"
// @Security BearerAuth
// @Router /orgs/{orgSlug}/expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateExpenseRequest
	if !bindJSON(c, &req) {
		return
	}
	expense, err := h.expenseService.CreateExpense(c.Request.Context(), c.Param("orgSlug"), req, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}
