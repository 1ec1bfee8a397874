package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cellwatch/towerjumps-backend-go/internal/export"
	"github.com/cellwatch/towerjumps-backend-go/internal/models"
	"github.com/cellwatch/towerjumps-backend-go/internal/service"
	"github.com/cellwatch/towerjumps-backend-go/pkg/response"
)

// AnalysisHandler handles analysis submission, polling, and result views.
type AnalysisHandler struct {
	uploads  *service.UploadService
	analysis *service.AnalysisService
}

// NewAnalysisHandler creates a new analysis handler.
func NewAnalysisHandler(uploads *service.UploadService, analysis *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{uploads: uploads, analysis: analysis}
}

// Analyze submits the current dataset for background analysis.
// POST /api/analyze
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	records, err := h.uploads.CurrentDataset()
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			response.BadRequest(c, "No data uploaded. Please upload a CSV file first.")
		} else {
			response.InternalError(c, err.Error())
		}
		return
	}

	jobID, err := h.analysis.Submit(records)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"job_id":  jobID,
		"status":  models.JobStatusQueued,
		"message": "Analysis started. Use the job_id to check status.",
	})
}

// Status returns the current state of an analysis job.
// GET /api/status/:job_id
func (h *AnalysisHandler) Status(c *gin.Context) {
	view, err := h.analysis.GetStatus(c.Param("job_id"))
	if err != nil {
		if errors.Is(err, service.ErrJobNotFound) {
			response.NotFound(c, "Job not found")
		} else {
			response.InternalError(c, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// Results serves the paginated, sorted, filtered result view.
// GET /api/results?page&per_page&filter&sort_by&sort_order
func (h *AnalysisHandler) Results(c *gin.Context) {
	var q models.ResultQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	page, err := h.analysis.GetResults(q)
	if err != nil {
		if errors.Is(err, service.ErrNoResults) {
			response.BadRequest(c, "No analysis results available. Run analysis first.")
		} else {
			response.InternalError(c, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, page)
}

// Export streams the full result set as a CSV attachment.
// GET /api/export
func (h *AnalysisHandler) Export(c *gin.Context) {
	results, err := h.analysis.ExportAll()
	if err != nil {
		if errors.Is(err, service.ErrNoResults) {
			response.BadRequest(c, "No analysis results available. Run analysis first.")
		} else {
			response.InternalError(c, err.Error())
		}
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="tower_jumps_analysis_result.csv"`)
	if err := export.WriteCSV(c.Writer, results); err != nil {
		// Headers are already out; all we can do is log through gin.
		_ = c.Error(err)
	}
}
