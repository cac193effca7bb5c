package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taruapp/api-taru/internal/model"
	"github.com/taruapp/api-taru/pkg/storage"
)

const maxUploadSize = 25 << 20 // 25 MB

// UploadHandler handles media uploads (letter audio recordings)
type UploadHandler struct {
	storage storage.Storage
}

func NewUploadHandler(storage storage.Storage) *UploadHandler {
	return &UploadHandler{storage: storage}
}

// UploadAudio godoc
// @Summary Upload an audio recording for a letter
// @Tags Uploads
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Audio file"
// @Success 201 {object} model.SuccessResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /upload [post]
func (h *UploadHandler) UploadAudio(c *gin.Context) {
	if h.storage == nil {
		c.JSON(http.StatusServiceUnavailable, model.ErrorResponse{Error: "File storage is not configured"})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "File is required", Message: err.Error()})
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "File too large"})
		return
	}

	result, err := h.storage.Upload(c.Request.Context(), file, header, "letters/audio")
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to upload file"})
		return
	}

	c.JSON(http.StatusCreated, model.SuccessResponse{
		Message: "File uploaded",
		Data: gin.H{
			"url":       result.URL,
			"key":       result.Key,
			"file_name": result.FileName,
			"file_size": result.FileSize,
			"mime_type": result.MimeType,
		},
	})
}
