package admin_auth_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/models"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/services"
)

// AdminLogin godoc
// @Summary Login as admin
// @Description Authenticate with the shared admin password. On success a signed
// @Description session token is returned and set as an HTTP-only cookie.
// @Tags Admin - Auth
// @Accept json
// @Produce json
// @Param loginRequest body models.AdminLoginRequest true "Admin password"
// @Success 200 {object} models.ApiResponse{data=models.AdminLoginResponse}
// @Failure 401 {object} models.ApiResponse "Invalid password"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /api/v1/admin/login [post]
func AdminLogin(c *gin.Context) {
	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	token, err := services.Authenticate(req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			log.Printf("[admin.login] ❌ invalid password attempt from %s", c.ClientIP())
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid password"))
			return
		}
		log.Printf("[admin.login] failed to sign session token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	services.SetSessionCookie(c, token)
	log.Printf("[admin.login] ✅ session opened from %s", c.ClientIP())

	response := models.AdminLoginResponse{
		User:  services.SessionUser,
		Token: token,
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", response))
}
