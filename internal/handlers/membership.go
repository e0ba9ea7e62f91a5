package handlers

import (
	"log/slog"

	portssvc "github.com/SscSPs/erp_backoffice/internal/core/ports/services"
	"github.com/SscSPs/erp_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// requireMembership runs after AuthMiddleware on every /orgs/:orgSlug route
// and stops requests whose user does not belong to the organization.
func requireMembership(orgService portssvc.OrganizationReaderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			c.Abort()
			return
		}
		orgSlug := c.Param("orgSlug")

		user, err := orgService.AuthorizeMember(c.Request.Context(), orgSlug, userID)
		if err != nil {
			respondWithError(c, err)
			c.Abort()
			return
		}

		logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
			slog.String("org_slug", orgSlug),
			slog.String("role", string(user.Role)))
		c.Request = c.Request.WithContext(middleware.WithLogger(c.Request.Context(), logger))
		c.Next()
	}
}
