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

// UpdateCategory godoc
// @Summary Update a category
// @Description Merge the provided fields into the category. Re-submitting the
// @Description category's own slug is not a conflict.
// @Tags CMS - Categories
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path string true "Category ID"
// @Param category body models.UpdateCategoryRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse{data=models.Category}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Slug already exists"
// @Router /api/v1/admin/categories/{id} [patch]
func UpdateCategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	var req models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	slug := ""
	if req.Slug != nil {
		slug = *req.Slug
	}

	var updated *models.Category
	err = config.WithSlugLock(ctx, "categories", slug, func() error {
		var innerErr error
		updated, innerErr = repo().Update(ctx, categoryID, req)
		return innerErr
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateSlug):
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "Slug already exists"))
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
		case errors.Is(err, repository.ErrValidation):
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		default:
			log.Printf("[admin.category.update] %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update category"))
		}
		return
	}

	catalog_cache.Invalidate()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category updated successfully", updated))
}
