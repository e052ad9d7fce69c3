package product_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	catalog_cache "github.com/ahmedanwarabdulaziz/mo3d-cms-backend/cache"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/config"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/models"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/repository"
)

// UpdateProduct godoc
// @Summary Update a product
// @Description Merge the provided fields into the product. Option edits
// @Description regenerate the variant list (full replace); removing all
// @Description options clears it. Re-submitting the product's own slug is not
// @Description a conflict.
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path string true "Product ID"
// @Param product body models.UpdateProductRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse{data=models.Product}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Slug already exists"
// @Router /api/v1/admin/products/{id} [patch]
func UpdateProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Slug != nil {
		updates["slug"] = *req.Slug
	}
	if req.SKU != nil {
		updates["sku"] = *req.SKU
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.CompareAtPrice != nil {
		updates["compare_at_price"] = *req.CompareAtPrice
	}
	if req.CostPerItem != nil {
		updates["cost_per_item"] = *req.CostPerItem
	}
	if req.Stock != nil {
		updates["stock"] = *req.Stock
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.Images != nil {
		updates["images"] = datatypes.JSONSlice[string](*req.Images)
	}
	if req.Tags != nil {
		updates["tags"] = datatypes.JSONSlice[string](*req.Tags)
	}
	if req.Specs != nil {
		updates["specs"] = models.SpecsMap(*req.Specs)
	}
	if req.IsFeatured != nil {
		updates["is_featured"] = *req.IsFeatured
	}
	if req.IsArchived != nil {
		updates["is_archived"] = *req.IsArchived
	}
	if req.SeoTitle != nil {
		updates["seo_title"] = *req.SeoTitle
	}
	if req.SeoDescription != nil {
		updates["seo_description"] = *req.SeoDescription
	}

	// Option edits route through the generation engine before persistence
	if req.Options != nil {
		existing, err := repo().Get(ctx, productID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
				return
			}
			log.Printf("[admin.product.update] %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
			return
		}

		basePrice := existing.Price
		if req.Price != nil {
			basePrice = *req.Price
		}
		baseStock := existing.Stock
		if req.Stock != nil {
			baseStock = *req.Stock
		}

		var supplied []models.ProductVariant
		if req.Variants != nil {
			supplied = *req.Variants
		}
		variants, err := resolveVariants(*req.Options, supplied, basePrice, baseStock)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
			return
		}

		updates["options"] = models.OptionsList(*req.Options)
		updates["variants"] = models.VariantsList(variants)
	} else if req.Variants != nil {
		// Variant list replaced without touching options; must still match
		// the live option shape
		existing, err := repo().Get(ctx, productID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
				return
			}
			log.Printf("[admin.product.update] %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
			return
		}

		variants, err := resolveVariants(existing.Options, *req.Variants, existing.Price, existing.Stock)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
			return
		}
		updates["variants"] = models.VariantsList(variants)
	}

	slug := ""
	if req.Slug != nil {
		slug = *req.Slug
	}

	var updated *models.Product
	err = config.WithSlugLock(ctx, "products", slug, func() error {
		var innerErr error
		updated, innerErr = repo().Update(ctx, productID, updates)
		return innerErr
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateSlug):
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "Slug already exists"))
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		default:
			log.Printf("[admin.product.update] %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update product"))
		}
		return
	}

	catalog_cache.Invalidate()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product updated successfully", updated))
}
