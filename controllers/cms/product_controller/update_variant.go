package product_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	catalog_cache "github.com/ahmedanwarabdulaziz/mo3d-cms-backend/cache"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/config"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/models"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/repository"
)

// UpdateVariant godoc
// @Summary Update a single variant
// @Description Patch price/stock/sku on one generated variant. Does not
// @Description re-run variant generation.
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path string true "Product ID"
// @Param variantId path string true "Variant ID"
// @Param variant body models.UpdateVariantRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse{data=models.Product}
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/products/{id}/variants/{variantId} [patch]
func UpdateVariant(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}
	variantID := c.Param("variantId")
	if variantID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Variant ID is required"))
		return
	}

	var req models.UpdateVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	product, err := repo().UpdateVariant(ctx, productID, variantID, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product or variant not found"))
			return
		}
		log.Printf("[admin.product.variant] %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update variant"))
		return
	}

	catalog_cache.Invalidate()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Variant updated successfully", product))
}
