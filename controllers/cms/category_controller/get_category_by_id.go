package category_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/config"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/models"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/repository"
)

// GetCategoryByID godoc
// @Summary Get a category
// @Tags CMS - Categories
// @Produce json
// @Security SessionCookie
// @Param id path string true "Category ID"
// @Success 200 {object} models.ApiResponse{data=models.Category}
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/categories/{id} [get]
func GetCategoryByID(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	category, err := repo().Get(ctx, categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
			return
		}
		log.Printf("[admin.category.get] %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category retrieved successfully", category))
}
