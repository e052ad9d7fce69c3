package quotation_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/config"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/models"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/repository"
)

// GetQuotationByID godoc
// @Summary Get a quotation request
// @Tags CMS - Quotations
// @Produce json
// @Security SessionCookie
// @Param id path string true "Quotation ID"
// @Success 200 {object} models.ApiResponse{data=models.Quotation}
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/quotations/{id} [get]
func GetQuotationByID(c *gin.Context) {
	quotationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid quotation ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	quotation, err := repo().Get(ctx, quotationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Quotation not found"))
			return
		}
		log.Printf("[admin.quotation.get] %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Quotation retrieved successfully", quotation))
}
