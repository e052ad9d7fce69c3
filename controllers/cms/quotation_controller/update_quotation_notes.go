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

// UpdateQuotationNotes godoc
// @Summary Update quotation admin notes
// @Tags CMS - Quotations
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path string true "Quotation ID"
// @Param payload body models.UpdateQuotationNotesRequest true "Notes"
// @Success 200 {object} models.ApiResponse{data=models.Quotation}
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/quotations/{id}/notes [patch]
func UpdateQuotationNotes(c *gin.Context) {
	quotationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid quotation ID"))
		return
	}

	var req models.UpdateQuotationNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	quotation, err := repo().UpdateNotes(ctx, quotationID, req.AdminNotes)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Quotation not found"))
			return
		}
		log.Printf("[admin.quotation.notes] %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update quotation notes"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Quotation notes updated successfully", quotation))
}
