package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cellwatch/towerjumps-backend-go/internal/service"
	"github.com/cellwatch/towerjumps-backend-go/pkg/response"
)

// UploadHandler handles carrier CSV uploads.
type UploadHandler struct {
	uploads *service.UploadService
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(uploads *service.UploadService) *UploadHandler {
	return &UploadHandler{uploads: uploads}
}

// Upload ingests a carrier CSV export, replacing the current dataset.
// POST /api/upload
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "No file uploaded")
		return
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".csv") {
		response.BadRequest(c, "File must be a CSV")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.InternalError(c, "Failed to read uploaded file")
		return
	}
	defer f.Close()

	stats, err := h.uploads.Ingest(f)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			response.BadRequest(c, "Failed to process file: "+err.Error())
		} else {
			response.InternalError(c, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "File uploaded successfully",
		"records":    stats.Records,
		"dropped":    stats.Dropped,
		"date_range": stats.DateRange,
	})
}
