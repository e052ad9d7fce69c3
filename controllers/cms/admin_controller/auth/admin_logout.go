package admin_auth_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/models"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/services"
)

// AdminLogout godoc
// @Summary Logout admin
// @Description Clears the session cookie. Always succeeds, even without an
// @Description active session.
// @Tags Admin - Auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/admin/logout [post]
func AdminLogout(c *gin.Context) {
	if user, exists := c.Get("sessionUser"); exists {
		log.Printf("[admin.logout] session closed user=%v", user)
	}

	services.ClearSessionCookie(c)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logout successful", nil))
}
