package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/ahmedanwarabdulaziz/mo3d-cms-backend/cache"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/config"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/models"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/repository"
)

// GetProducts godoc
// @Summary List products (storefront)
// @Description Returns non-archived products, newest first. Pass featured=true
// @Description to restrict to featured products.
// @Tags Storefront - Products
// @Produce json
// @Param featured query bool false "Only featured products"
// @Success 200 {object} models.ApiResponse{data=[]models.Product}
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/products [get]
func GetProducts(c *gin.Context) {
	featuredOnly := c.Query("featured") == "true"

	cacheKey := catalog_cache.KeyProducts(c.Request.URL.RawQuery)
	var products []models.Product
	if catalog_cache.Get(cacheKey, &products) {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Products retrieved successfully", products))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	products, err := repository.NewProductRepository(config.DB).ListStorefront(ctx, featuredOnly)
	if err != nil {
		log.Printf("[storefront.product.list] %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to list products"))
		return
	}

	catalog_cache.Set(cacheKey, products)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products retrieved successfully", products))
}
