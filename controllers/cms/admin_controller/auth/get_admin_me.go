package admin_auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/models"
)

// GetAdminMe godoc
// @Summary Get current admin session
// @Description Returns the authenticated session identity. Used by the admin
// @Description UI to check authentication state on page reload.
// @Tags Admin - Auth
// @Produce json
// @Security SessionCookie
// @Success 200 {object} models.ApiResponse{data=models.AdminSessionInfo}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /api/v1/admin/me [get]
func GetAdminMe(c *gin.Context) {
	user, exists := c.Get("sessionUser")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	info := models.AdminSessionInfo{User: user.(string)}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Session retrieved", info))
}
