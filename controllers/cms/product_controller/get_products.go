package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/config"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/models"
)

// GetProducts godoc
// @Summary List all products
// @Description Returns the full products collection, newest first, including
// @Description archived products.
// @Tags CMS - Products
// @Produce json
// @Security SessionCookie
// @Success 200 {object} models.ApiResponse{data=[]models.Product}
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/products [get]
func GetProducts(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	products, err := repo().List(ctx)
	if err != nil {
		log.Printf("[admin.product.list] %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to list products"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products retrieved successfully", products))
}
