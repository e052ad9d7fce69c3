package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/controllers/cms/category_controller"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/middleware"
)

func SetupCategoryRoutes(admin *gin.RouterGroup) {
	category := admin.Group("/categories")
	category.Use(middleware.AdminAuthMiddleware())
	category.Use(middleware.ActivityLog())
	{
		// Read
		category.GET("", category_controller.GetCategories)
		category.GET("/:id", category_controller.GetCategoryByID)

		// Write
		category.POST("", category_controller.CreateCategory)
		category.PATCH("/:id", category_controller.UpdateCategory)
		category.DELETE("/:id", category_controller.DeleteCategory)
	}
}
