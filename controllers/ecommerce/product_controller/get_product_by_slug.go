package product_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/ahmedanwarabdulaziz/mo3d-cms-backend/cache"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/config"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/models"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/repository"
)

// GetProductBySlug godoc
// @Summary Get a product by slug (storefront)
// @Description Archived products are hidden from the storefront and return 404.
// @Tags Storefront - Products
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} models.ApiResponse{data=models.Product}
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/products/{slug} [get]
func GetProductBySlug(c *gin.Context) {
	slug := c.Param("slug")

	var product models.Product
	if catalog_cache.Get(catalog_cache.KeyProduct(slug), &product) {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Product retrieved successfully", product))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	found, err := repository.NewProductRepository(config.DB).GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		log.Printf("[storefront.product.get] %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if found.IsArchived {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	catalog_cache.Set(catalog_cache.KeyProduct(slug), found)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product retrieved successfully", found))
}
