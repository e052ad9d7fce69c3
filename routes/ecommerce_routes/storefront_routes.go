package ecommerce_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/controllers/ecommerce/category_controller"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/controllers/ecommerce/product_controller"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/controllers/ecommerce/quotation_controller"
)

// SetupStorefrontRoutes wires the public catalog reads and the quotation
// intake. No auth: everything here is world-readable, writes are limited to
// the quotation form.
func SetupStorefrontRoutes(rg *gin.RouterGroup) {
	// Categories
	rg.GET("/categories", category_controller.GetCategories)
	rg.GET("/categories/:id", category_controller.GetCategoryByID)

	// Products
	rg.GET("/products", product_controller.GetProducts)
	rg.GET("/products/:slug", product_controller.GetProductBySlug)

	// Quotations
	rg.POST("/quotations", quotation_controller.CreateQuotation)
}
