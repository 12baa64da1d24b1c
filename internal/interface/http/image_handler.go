package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tripmoa/trip-backend/internal/application"
	"github.com/tripmoa/trip-backend/internal/interface/middleware"
	"github.com/tripmoa/trip-backend/pkg/response"
)

type ImageHandler struct {
	Svc    *application.ImageService
	Logger *logrus.Logger
}

func NewImageHandler(svc *application.ImageService, logger *logrus.Logger) *ImageHandler {
	return &ImageHandler{Svc: svc, Logger: logger}
}

// Upload accepts a multipart file, stores it in the bucket, and records an
// Image row whose id posts can reference.
func (h *ImageHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "missing file", nil)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "unreadable file", nil)
		return
	}
	defer func() { _ = f.Close() }()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	img, err := h.Svc.Upload(c.Request.Context(), middleware.MemberID(c), f, fileHeader.Filename, contentType)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("image upload failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to upload image", nil)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"image_id": img.ID, "url": img.URL}, "image uploaded")
}
