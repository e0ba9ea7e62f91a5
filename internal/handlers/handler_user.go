package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/erp_backoffice/internal/core/ports/services"
	"github.com/SscSPs/erp_backoffice/internal/dto"
	"github.com/SscSPs/erp_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests related to users.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

// RegisterUserRoutes registers all user-related routes.
func RegisterUserRoutes(org *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := org.Group("/users")
	{
		users.POST("", h.createUser)           // Admin only
		users.DELETE("/:userId", h.deleteUser) // Admin only
	}
}

// createUser godoc
// @Summary Create a new user
// @Description Creates a user in the organization. Only admins may do this.
// @Tags users
// @Accept  json
// @Produce  json
// @Param   orgSlug path string true "Organization slug"
// @Param   user body dto.CreateUserRequest true "User details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 403 {object} handlers.ErrorResponse "Not an admin"
// @Failure 409 {object} handlers.ErrorResponse "Username taken"
// @Security BearerAuth
// @Router /orgs/{orgSlug}/users [post]
func (h *userHandler) createUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	logger.Info("Received request to create user", slog.String("username", req.Username))
	user, err := h.userService.CreateUser(c.Request.Context(), c.Param("orgSlug"), req, creatorUserID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	logger.Info("User created successfully", slog.String("new_user_id", user.ID))
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// deleteUser godoc
// @Summary Delete a user
// @Description Soft deletes a user. An organization always keeps at least one admin, and nobody can delete themselves.
// @Tags users
// @Param   orgSlug path string true "Organization slug"
// @Param   userId path string true "User ID"
// @Success 204
// @Failure 403 {object} handlers.ErrorResponse "Last admin, self delete or not an admin"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Security BearerAuth
// @Router /orgs/{orgSlug}/users/{userId} [delete]
func (h *userHandler) deleteUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	requestingUserID, ok := requireUserID(c)
	if !ok {
		return
	}
	targetID := c.Param("userId")

	if err := h.userService.DeleteUser(c.Request.Context(), c.Param("orgSlug"), targetID, requestingUserID); err != nil {
		respondWithError(c, err)
		return
	}

	logger.Info("User deleted successfully", slog.String("target_user_id", targetID))
	c.Status(http.StatusNoContent)
}
