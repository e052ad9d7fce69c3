package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/controllers/cms/quotation_controller"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/middleware"
)

func SetupQuotationRoutes(admin *gin.RouterGroup) {
	quotation := admin.Group("/quotations")
	quotation.Use(middleware.AdminAuthMiddleware())
	quotation.Use(middleware.ActivityLog())
	{
		// Read
		quotation.GET("", quotation_controller.GetQuotations)
		quotation.GET("/:id", quotation_controller.GetQuotationByID)

		// Workflow
		quotation.PATCH("/:id/status", quotation_controller.UpdateQuotationStatus)
		quotation.PATCH("/:id/notes", quotation_controller.UpdateQuotationNotes)
	}
}
