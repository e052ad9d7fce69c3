package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/controllers/cms/product_controller"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/middleware"
)

func SetupProductRoutes(admin *gin.RouterGroup) {
	product := admin.Group("/products")
	product.Use(middleware.AdminAuthMiddleware())
	product.Use(middleware.ActivityLog())
	{
		// Read
		product.GET("", product_controller.GetProducts)
		product.GET("/:id", product_controller.GetProductByID)

		// Write
		product.POST("", product_controller.CreateProduct)
		product.PATCH("/:id", product_controller.UpdateProduct)
		product.DELETE("/:id", product_controller.DeleteProduct)

		// Variants
		product.POST("/variants/generate", product_controller.GenerateVariants)
		product.PATCH("/:id/variants/:variantId", product_controller.UpdateVariant)

		// Images
		product.PUT("/:id/images/default", product_controller.SetDefaultImage)
	}
}
