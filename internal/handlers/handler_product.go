package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/erp_backoffice/internal/core/ports/services"
	"github.com/SscSPs/erp_backoffice/internal/dto"
	"github.com/gin-gonic/gin"
)

type productHandler struct {
	productService portssvc.ProductSvcFacade
}

func RegisterProductRoutes(org *gin.RouterGroup, productService portssvc.ProductSvcFacade) {
	h := &productHandler{productService: productService}

	products := org.Group("/products")
	{
		products.POST("", h.createProduct)
		products.PUT("/:productId", h.updateProduct)
	}
}

// createProduct godoc
// @Summary Create a product
// @Tags products
// @Accept  json
// @Produce  json
// @Param   orgSlug path string true "Organization slug"
// @Param   product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} dto.ProductResponse
// @Failure 409 {object} handlers.ErrorResponse "Barcode or description taken"
// @Security BearerAuth
// @Router /orgs/{orgSlug}/products [post]
func (h *productHandler) createProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if !bindJSON(c, &req) {
		return
	}
	product, err := h.productService.CreateProduct(c.Request.Context(), c.Param("orgSlug"), req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

// updateProduct godoc
// @Summary Update a product
// @Tags products
// @Accept  json
// @Produce  json
// @Param   orgSlug path string true "Organization slug"
// @Param   productId path string true "Product ID"
// @Param   product body dto.UpdateProductRequest true "Product details"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} handlers.ErrorResponse "Product not found"
// @Security BearerAuth
// @Router /orgs/{orgSlug}/products/{productId} [put]
func (h *productHandler) updateProduct(c *gin.Context) {
	var req dto.UpdateProductRequest
	if !bindJSON(c, &req) {
		return
	}
	product, err := h.productService.UpdateProduct(c.Request.Context(), c.Param("orgSlug"), c.Param("productId"), req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}
