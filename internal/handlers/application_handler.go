package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/job-board/internal/dtos"
	"github.com/justsurfingit/job-board/internal/services"
)

type ApplicationHandler struct {
	ApplicationService *services.ApplicationService
}

func NewApplicationHandler(apps *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{ApplicationService: apps}
}

// Apply is POST /jobs/:id/apply. Accepts JSON or multipart form data; a
// multipart request may carry the resume as the "resume" file part.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req dtos.ApplicationRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindErrorBody(err))
		return
	}

	app := req.ToModel()
	if c.ContentType() == gin.MIMEMultipartPOSTForm {
		file, err := c.FormFile("resume")
		switch {
		case err == nil:
			app.ResumeFilename = file.Filename
			app.ResumeSize = file.Size
		case !errors.Is(err, http.ErrMissingFile):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resume upload: " + err.Error()})
			return
		}
	}

	saved, err := h.ApplicationService.Submit(c.Request.Context(), c.Param("id"), app)
	switch {
	case errors.Is(err, services.ErrJobNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	case errors.Is(err, services.ErrInvalidResume):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit application: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, saved)
}

// ListApplications is GET /jobs/:id/applications.
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	apps := h.ApplicationService.ListForJob(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"applications": apps, "count": len(apps)})
}
