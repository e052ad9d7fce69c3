package category_controller

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

// DeleteCategory godoc
// @Summary Delete a category
// @Description Delete a category by ID. Fails while any other category still
// @Description references it as parent.
// @Tags CMS - Categories
// @Produce json
// @Security SessionCookie
// @Param id path string true "Category ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Category has subcategories"
// @Router /api/v1/admin/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := repo().Delete(ctx, categoryID); err != nil {
		switch {
		case errors.Is(err, repository.ErrHasChildren):
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "Cannot delete category with subcategories"))
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
		default:
			log.Printf("[admin.category.delete] %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete category"))
		}
		return
	}

	catalog_cache.Invalidate()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category deleted successfully", nil))
}
