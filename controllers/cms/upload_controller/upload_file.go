package upload_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/config"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/models"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/services"
)

var cloudinaryService *services.CloudinaryService

// InitCloudinary wires the shared upload client. Must be called at startup
// before any upload route is served.
func InitCloudinary(cloudName, apiKey, apiSecret string) error {
	svc, err := services.NewCloudinaryService(cloudName, apiKey, apiSecret)
	if err != nil {
		return err
	}
	cloudinaryService = svc
	return nil
}

// UploadFile godoc
// @Summary Upload a file
// @Description Uploads a single file from the "file" form field to object
// @Description storage and returns its public URL
// @Tags CMS - Uploads
// @Accept multipart/form-data
// @Produce json
// @Security SessionCookie
// @Param file formData file true "File to upload"
// @Success 200 {object} models.ApiResponse{data=models.UploadResponse}
// @Failure 400 {object} models.ApiResponse "No file provided"
// @Failure 500 {object} models.ApiResponse "Upload failed"
// @Router /api/v1/admin/upload [post]
func UploadFile(c *gin.Context) {
	if cloudinaryService == nil {
		log.Printf("[admin.upload] ❌ upload service not initialized")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Upload service unavailable"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No file provided"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("[admin.upload] failed to open %s: %v", fileHeader.Filename, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to read uploaded file"))
		return
	}
	defer file.Close()

	ctx, cancel := config.WithCustomTimeout(30 * time.Second)
	defer cancel()

	url, err := cloudinaryService.UploadFile(ctx, file, fileHeader.Filename)
	if err != nil {
		log.Printf("[admin.upload] ❌ %s: %v", fileHeader.Filename, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload file: "+err.Error()))
		return
	}

	log.Printf("[admin.upload] ✅ %s (%d bytes)", fileHeader.Filename, fileHeader.Size)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "File uploaded successfully", models.UploadResponse{URL: url}))
}
