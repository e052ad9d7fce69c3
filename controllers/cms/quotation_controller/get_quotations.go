package quotation_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/config"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/models"
)

// GetQuotations godoc
// @Summary List all quotation requests
// @Description Returns the full quotations collection, newest first
// @Tags CMS - Quotations
// @Produce json
// @Security SessionCookie
// @Success 200 {object} models.ApiResponse{data=[]models.Quotation}
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/quotations [get]
func GetQuotations(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	quotations, err := repo().List(ctx)
	if err != nil {
		log.Printf("[admin.quotation.list] %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to list quotations"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Quotations retrieved successfully", quotations))
}
