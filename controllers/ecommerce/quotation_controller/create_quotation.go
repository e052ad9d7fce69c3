package quotation_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/config"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/models"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/repository"
)

// CreateQuotation godoc
// @Summary Submit a quotation request
// @Description Public intake form for custom work. New requests always start
// @Description in the pending status.
// @Tags Storefront - Quotations
// @Accept json
// @Produce json
// @Param payload body models.QuotationRequest true "Quotation request"
// @Success 201 {object} models.ApiResponse{data=models.Quotation}
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/quotations [post]
func CreateQuotation(c *gin.Context) {
	var req models.QuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	quotation := models.Quotation{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		RequestDetails:  req.RequestDetails,
		ReferenceImages: datatypes.JSONSlice[string](req.ReferenceImages),
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := repository.NewQuotationRepository(config.DB).Create(ctx, &quotation); err != nil {
		log.Printf("[storefront.quotation.create] %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to submit quotation request"))
		return
	}

	log.Printf("[storefront.quotation.create] ✅ %s", quotation.ID)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Quotation request submitted successfully", quotation))
}
