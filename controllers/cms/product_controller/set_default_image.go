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

// SetDefaultImage godoc
// @Summary Promote an image to default
// @Description Move the given image URL to the front of the product's image
// @Description list. The relative order of the other images is preserved.
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path string true "Product ID"
// @Param image body models.SetDefaultImageRequest true "Image URL"
// @Success 200 {object} models.ApiResponse{data=models.Product}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/products/{id}/images/default [put]
func SetDefaultImage(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	var req models.SetDefaultImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	product, err := repo().SetDefaultImage(ctx, productID, req.URL)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		case errors.Is(err, repository.ErrValidation):
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Image not found on product"))
		default:
			log.Printf("[admin.product.image] %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to reorder images"))
		}
		return
	}

	catalog_cache.Invalidate()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Default image updated successfully", product))
}
