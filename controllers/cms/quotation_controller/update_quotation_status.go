package quotation_controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/config"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/models"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/repository"
)

// UpdateQuotationStatus godoc
// @Summary Update quotation status
// @Description Move a quotation through the pending/viewed/quoted/completed/
// @Description rejected workflow. Status and notes are updated independently.
// @Tags CMS - Quotations
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path string true "Quotation ID"
// @Param payload body models.UpdateQuotationStatusRequest true "New status"
// @Success 200 {object} models.ApiResponse{data=models.Quotation}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/quotations/{id}/status [patch]
func UpdateQuotationStatus(c *gin.Context) {
	quotationID, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid quotation ID"))
		return
	}

	var req models.UpdateQuotationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}
	req.Status = strings.TrimSpace(strings.ToLower(req.Status))

	ctx, cancel := config.WithTimeout()
	defer cancel()

	quotation, err := repo().UpdateStatus(ctx, quotationID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Quotation not found"))
		case errors.Is(err, repository.ErrValidation):
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		default:
			log.Printf("[admin.quotation.status] %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update quotation status"))
		}
		return
	}

	log.Printf("[admin.quotation.status] %s -> %s", quotationID, req.Status)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Quotation status updated successfully", quotation))
}
