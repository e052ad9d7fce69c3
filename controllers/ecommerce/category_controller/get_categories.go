package category_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/ahmedanwarabdulaziz/mo3d-cms-backend/cache"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/config"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/models"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/repository"
)

// GetCategories godoc
// @Summary List categories (storefront)
// @Description Returns all categories, newest first. Served from cache when warm.
// @Tags Storefront - Categories
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.Category}
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/categories [get]
func GetCategories(c *gin.Context) {
	var categories []models.Category
	if catalog_cache.Get(catalog_cache.KeyCategories(), &categories) {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories retrieved successfully", categories))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	categories, err := repository.NewCategoryRepository(config.DB).List(ctx)
	if err != nil {
		log.Printf("[storefront.category.list] %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to list categories"))
		return
	}

	catalog_cache.Set(catalog_cache.KeyCategories(), categories)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories retrieved successfully", categories))
}
