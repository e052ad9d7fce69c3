package category_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/config"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/models"
)

// GetCategories godoc
// @Summary List all categories
// @Description Returns the full categories collection, newest first
// @Tags CMS - Categories
// @Produce json
// @Security SessionCookie
// @Success 200 {object} models.ApiResponse{data=[]models.Category}
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/categories [get]
func GetCategories(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	categories, err := repo().List(ctx)
	if err != nil {
		log.Printf("[admin.category.list] %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to list categories"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories retrieved successfully", categories))
}
