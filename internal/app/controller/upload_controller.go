package controller

import (
	"net/http"
	"path/filepath"
	"strings"

	apperrors "github.com/findingbd/findingbd-backend/internal/errors"
	"github.com/findingbd/findingbd-backend/internal/middleware"
	"github.com/findingbd/findingbd-backend/internal/storage"
	"github.com/gin-gonic/gin"
)

// maxImageSize caps uploads at 5 MB
const maxImageSize = 5 << 20

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type UploadController struct {
	imageStore storage.ImageStore
}

func NewUploadController(imageStore storage.ImageStore) *UploadController {
	return &UploadController{
		imageStore: imageStore,
	}
}

// UploadImage stores a product image and returns the reference to put in
// the product's image_url
// POST /api/v1/uploads/images  (multipart field "image")
func (ctrl *UploadController) UploadImage(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "an image file is required")
		return
	}

	if fileHeader.Size > maxImageSize {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "image must be 5MB or smaller")
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[ext] {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "unsupported image format")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Error("Failed to open uploaded file", err)
		apperrors.InternalError(c, "")
		return
	}
	defer file.Close()

	reference, err := ctrl.imageStore.Save(file, fileHeader.Filename)
	if err != nil {
		log.Error("Failed to store uploaded image", err, map[string]interface{}{
			"filename": fileHeader.Filename,
		})
		apperrors.InternalError(c, "failed to store image")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Image uploaded",
		"image_url": reference,
	})
}
