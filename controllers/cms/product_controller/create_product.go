package product_controller

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
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/services"
)

// CreateProduct godoc
// @Summary Create a product
// @Description Create a product. When options are supplied without a matching
// @Description variant list, the variant list is generated from the cartesian
// @Description product of the option values, seeded with the base price/stock.
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param product body models.ProductRequest true "Product details"
// @Success 201 {object} models.ApiResponse{data=models.Product}
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Slug already exists"
// @Router /api/v1/admin/products [post]
func CreateProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	if strings.TrimSpace(req.Name.En) == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "English name is required"))
		return
	}

	variants, err := resolveVariants(req.Options, req.Variants, req.Price, req.Stock)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	product := models.Product{
		Name:           req.Name,
		Slug:           req.Slug,
		SKU:            req.SKU,
		Price:          req.Price,
		CompareAtPrice: req.CompareAtPrice,
		CostPerItem:    req.CostPerItem,
		Stock:          req.Stock,
		Description:    req.Description,
		CategoryID:     req.CategoryID,
		Images:         req.Images,
		Tags:           req.Tags,
		Specs:          req.Specs,
		IsFeatured:     req.IsFeatured,
		IsArchived:     req.IsArchived,
		SeoTitle:       req.SeoTitle,
		SeoDescription: req.SeoDescription,
		Options:        req.Options,
		Variants:       variants,
	}

	err = config.WithSlugLock(ctx, "products", req.Slug, func() error {
		return repo().Create(ctx, &product)
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateSlug):
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "Slug already exists"))
		default:
			log.Printf("[admin.product.create] %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		}
		return
	}

	catalog_cache.Invalidate()
	log.Printf("[admin.product.create] created %s (%s), %d variants", product.Slug, product.ID, len(product.Variants))

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", product))
}

// resolveVariants routes option edits through the generation engine. A
// client-supplied variant list is kept only when it matches the live option
// shape; anything stale is regenerated wholesale. No options means no
// variants, whatever the client sent.
func resolveVariants(options []models.ProductOption, variants []models.ProductVariant, basePrice float64, baseStock int) ([]models.ProductVariant, error) {
	if len(options) == 0 {
		return nil, nil
	}
	if len(variants) > 0 && services.VariantsMatchOptions(options, variants) {
		return variants, nil
	}
	return services.GenerateVariants(options, basePrice, baseStock)
}
