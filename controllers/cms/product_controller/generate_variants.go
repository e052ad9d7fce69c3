package product_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/models"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/repository"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/services"
)

// GenerateVariants godoc
// @Summary Preview variant generation
// @Description Expand a set of options into the full cartesian product of
// @Description variants without persisting anything. Used by the admin form
// @Description before saving a product.
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param options body models.GenerateVariantsRequest true "Options and base values"
// @Success 200 {object} models.ApiResponse{data=[]models.ProductVariant}
// @Failure 400 {object} models.ApiResponse "An option has no values"
// @Router /api/v1/admin/products/variants/generate [post]
func GenerateVariants(c *gin.Context) {
	var req models.GenerateVariantsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	variants, err := services.GenerateVariants(req.Options, req.BasePrice, req.BaseStock)
	if err != nil {
		if errors.Is(err, repository.ErrValidation) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate variants"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Variants generated successfully", variants))
}
