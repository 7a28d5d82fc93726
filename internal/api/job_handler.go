package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"skillhub-backend-go/internal/core"
	"skillhub-backend-go/internal/middleware"
	"skillhub-backend-go/internal/models"
)

// JobHandler handles job (gig) related API endpoints.
type JobHandler struct {
	jobService core.JobService
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(js core.JobService) *JobHandler {
	return &JobHandler{jobService: js}
}

// mapJobErrorToStatus maps errors from core.JobService to HTTP responses.
func mapJobErrorToStatus(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrJobNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrJobNotFound.Error()})
	case errors.Is(err, core.ErrJobNotOpen):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Job has already been completed"})
	case errors.Is(err, core.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrProfileNotFound.Error()})
	default:
		log.Printf("Internal Server Error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
	}
}

// ListJobs handles GET /jobs. The gig board is public.
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.jobService.ListJobs(c.Request.Context())
	if err != nil {
		mapJobErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// CreateJob handles POST /jobs.
func (h *JobHandler) CreateJob(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	job, err := h.jobService.CreateJob(c.Request.Context(), sess, req)
	if err != nil {
		mapJobErrorToStatus(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

// CompleteJob handles POST /jobs/:jobId/complete. A job can only be
// completed once; repeats get 409 and no credit.
func (h *JobHandler) CompleteJob(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	jobID := c.Param("jobId")
	if jobID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Job ID is required"})
		return
	}

	result, err := h.jobService.CompleteJob(c.Request.Context(), sess, jobID)
	if err != nil {
		mapJobErrorToStatus(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
