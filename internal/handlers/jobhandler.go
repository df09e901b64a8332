package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/justsurfingit/job-board/internal/dtos"
	"github.com/justsurfingit/job-board/internal/services"
)

// JobHandler serves the job listing, admin and extraction endpoints.
type JobHandler struct {
	JobService       *services.JobService
	ExtractorService *services.ExtractorService
	ExportService    *services.ExportService
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(jobs *services.JobService, extractor *services.ExtractorService, exporter *services.ExportService) *JobHandler {
	return &JobHandler{
		JobService:       jobs,
		ExtractorService: extractor,
		ExportService:    exporter,
	}
}

// ListJobs is GET /jobs: every job, most recent first.
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs := h.JobService.ListAll()
	c.JSON(http.StatusOK, gin.H{
		"jobs":    jobs,
		"count":   len(jobs),
		"loading": h.JobService.Loading(),
	})
}

// ListFilteredJobs is GET /jobs/filtered: the view for the active filter.
func (h *JobHandler) ListFilteredJobs(c *gin.Context) {
	jobs := h.JobService.ListFiltered()
	c.JSON(http.StatusOK, gin.H{
		"jobs":    jobs,
		"count":   len(jobs),
		"filter":  h.JobService.Filter(),
		"loading": h.JobService.Loading(),
	})
}

// SearchJobs is GET /jobs/search: filters by query parameters without
// touching the active filter.
func (h *JobHandler) SearchJobs(c *gin.Context) {
	var req dtos.FilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindErrorBody(err))
		return
	}
	filter := req.ToModel()
	jobs := services.ComputeView(h.JobService.ListAll(), filter)
	c.JSON(http.StatusOK, gin.H{
		"jobs":   jobs,
		"count":  len(jobs),
		"filter": filter,
	})
}

// GetFilter is GET /filter.
func (h *JobHandler) GetFilter(c *gin.Context) {
	c.JSON(http.StatusOK, h.JobService.Filter())
}

// SetFilter is PUT /filter: replaces the active filter.
func (h *JobHandler) SetFilter(c *gin.Context) {
	var req dtos.FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindErrorBody(err))
		return
	}
	h.JobService.SetFilter(req.ToModel())
	jobs := h.JobService.ListFiltered()
	c.JSON(http.StatusOK, gin.H{
		"jobs":   jobs,
		"count":  len(jobs),
		"filter": h.JobService.Filter(),
	})
}

// GetJob is GET /jobs/:id.
func (h *JobHandler) GetJob(c *gin.Context) {
	job, ok := h.JobService.GetJob(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}
	c.JSON(http.StatusOK, job)
}

// CreateJob is POST /jobs.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindErrorBody(err))
		return
	}
	job := h.JobService.AddJob(c.Request.Context(), req.ToModel())
	c.JSON(http.StatusCreated, job)
}

// UpdateJob is PUT /jobs/:id. The path id wins over any id in the body, and
// an unknown id is never created.
func (h *JobHandler) UpdateJob(c *gin.Context) {
	var req dtos.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindErrorBody(err))
		return
	}
	job := req.ToModel()
	job.ID = c.Param("id")

	if !h.JobService.UpdateJob(c.Request.Context(), job) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}
	updated, _ := h.JobService.GetJob(job.ID)
	c.JSON(http.StatusOK, updated)
}

// DeleteJob is DELETE /jobs/:id.
func (h *JobHandler) DeleteJob(c *gin.Context) {
	if !h.JobService.DeleteJob(c.Request.Context(), c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ParseJob is the POST /jobs/extract endpoint
func (h *JobHandler) ParseJob(c *gin.Context) {
	var req dtos.JobExtractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a job description to generate"})
		return
	}

	generated, err := h.ExtractorService.ExtractJobDetails(c.Request.Context(), req.Prompt)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to generate job description: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    services.MergeDraft(req.Draft, generated),
	})
}

// Stats is GET /admin/stats.
func (h *JobHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.JobService.Stats())
}

// ExportJobs is GET /admin/jobs/export: all listings as an XLSX download.
func (h *JobHandler) ExportJobs(c *gin.Context) {
	data, err := h.ExportService.ExportJobsXLSX(h.JobService.ListAll())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export jobs: " + err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="jobs.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// bindErrorBody renders a binding failure. Validation failures are listed
// per field, anything else is reported as malformed input.
func bindErrorBody(err error) gin.H {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return gin.H{"error": "Invalid JSON format: " + err.Error()}
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fieldPath(fe)] = validationMessage(fe)
	}
	return gin.H{"error": "Validation failed", "fields": fields}
}

// fieldPath drops the root struct name: "JobRequest.Location.City" -> "Location.City".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "oneof":
		return "must be one of: " + fe.Param()
	case "url":
		return "must be a valid URL"
	case "email":
		return "must be a valid email address"
	default:
		return "failed on '" + fe.Tag() + "'"
	}
}
