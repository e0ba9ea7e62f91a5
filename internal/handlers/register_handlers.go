package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/erp_backoffice/cmd/docs"
	portssvc "github.com/SscSPs/erp_backoffice/internal/core/ports/services"
	"github.com/SscSPs/erp_backoffice/internal/middleware"
	"github.com/SscSPs/erp_backoffice/internal/platform/config"
	"github.com/SscSPs/erp_backoffice/internal/platform/metrics"
	"github.com/SscSPs/erp_backoffice/internal/utils/validation"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterValidators installs the decimal rules on gin's binding validator.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.Register(v)
	} else {
		slog.Warn("gin binding validator is not validator/v10, decimal rules not registered")
	}
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	m *metrics.Metrics,
	healthCheck func(ctx context.Context) error,
) {
	RegisterValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		if healthCheck != nil {
			if err := healthCheck(c.Request.Context()); err != nil {
				middleware.GetLoggerFromCtx(c.Request.Context()).Error("Health check failed", slog.String("error", err.Error()))
				c.String(http.StatusServiceUnavailable, "UNAVAILABLE")
				return
			}
		}
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(m.Handler()))

	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	// Signing up a new organization is the only unauthenticated call.
	RegisterOrganizationCreateRoute(v1, service.Organization)

	org := v1.Group("/orgs/:orgSlug",
		middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer),
		requireMembership(service.Organization))
	RegisterOrganizationRoutes(org, service.Organization)
	RegisterUserRoutes(org, service.User)
	RegisterCustomerRoutes(org, service.Customer)
	RegisterProductRoutes(org, service.Product)
	RegisterInvoiceRoutes(org, service.Invoice)
	RegisterExpenseRoutes(org, service.Expense)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
