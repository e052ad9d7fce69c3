package cms_routes

import (
	"github.com/gin-gonic/gin"

	admin_auth "github.com/ahmedanwarabdulaziz/mo3d-cms-backend/controllers/cms/admin_controller/auth"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/controllers/cms/upload_controller"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/middleware"
)

// SetupAdminRoutes wires the session endpoints and the upload endpoint under
// the admin group. Resource routes (categories, products, quotations) hang
// off the same group in their own files.
func SetupAdminRoutes(admin *gin.RouterGroup) {
	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════

	admin.POST("/login", admin_auth.AdminLogin)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth Required)
	// ════════════════════════════════════════════════════════════

	protected := admin.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	{
		protected.POST("/logout", admin_auth.AdminLogout)
		protected.GET("/me", admin_auth.GetAdminMe)

		protected.POST("/upload", upload_controller.UploadFile)
	}
}
