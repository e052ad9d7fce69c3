package category_controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/ahmedanwarabdulaziz/mo3d-cms-backend/cache"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/config"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/models"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/repository"
)

// CreateCategory godoc
// @Summary Create a category
// @Description Create a category. Slug must be unique among categories.
// @Tags CMS - Categories
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param category body models.CategoryRequest true "Category details"
// @Success 201 {object} models.ApiResponse{data=models.Category}
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Slug already exists"
// @Router /api/v1/admin/categories [post]
func CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	// English is the canonical value for every localized field
	if strings.TrimSpace(req.Name.En) == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "English name is required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	category := models.Category{
		Name:           req.Name,
		Slug:           req.Slug,
		Description:    req.Description,
		ParentID:       req.ParentID,
		Image:          req.Image,
		SeoTitle:       req.SeoTitle,
		SeoDescription: req.SeoDescription,
	}

	err := config.WithSlugLock(ctx, "categories", req.Slug, func() error {
		return repo().Create(ctx, &category)
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateSlug):
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "Slug already exists"))
		case errors.Is(err, repository.ErrValidation):
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		default:
			log.Printf("[admin.category.create] %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create category"))
		}
		return
	}

	catalog_cache.Invalidate()
	log.Printf("[admin.category.create] created %s (%s)", category.Slug, category.ID)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Category created successfully", category))
}
