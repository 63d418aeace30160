package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/aryankuttarmare14/job-board-app/internal/dto"
	apierrors "github.com/aryankuttarmare14/job-board-app/internal/errors"
	"github.com/aryankuttarmare14/job-board-app/internal/middleware"
	"github.com/aryankuttarmare14/job-board-app/internal/models"
	"github.com/aryankuttarmare14/job-board-app/internal/services"
	"github.com/aryankuttarmare14/job-board-app/internal/utils"
	"github.com/gin-gonic/gin"
)

// JobHandler coordinates job catalog HTTP handlers.
type JobHandler struct {
	jobService *services.JobService
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(jobService *services.JobService) *JobHandler {
	return &JobHandler{
		jobService: jobService,
	}
}

type jobRequest struct {
	Title            string           `json:"title"`
	Company          string           `json:"company"`
	Location         string           `json:"location"`
	Type             models.JobType   `json:"type"`
	Description      string           `json:"description"`
	Requirements     []string         `json:"requirements"`
	Responsibilities []string         `json:"responsibilities"`
	Salary           models.Salary    `json:"salary"`
	Deadline         time.Time        `json:"deadline"`
	Status           models.JobStatus `json:"status"`
}

// Create persists a new job owned by the calling employer.
func (h *JobHandler) Create(c *gin.Context) {
	actor, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req jobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	job, err := h.jobService.Create(actor.ID, services.CreateJobInput{
		Title:            req.Title,
		Company:          req.Company,
		Location:         req.Location,
		Type:             req.Type,
		Description:      req.Description,
		Requirements:     req.Requirements,
		Responsibilities: req.Responsibilities,
		Salary:           req.Salary,
		Deadline:         req.Deadline,
		Status:           req.Status,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    dto.ToJobDTO(*job),
	})
}

// Search returns a filtered, paginated job listing.
func (h *JobHandler) Search(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	jobs, total, err := h.jobService.Search(services.SearchJobsInput{
		Query:    c.Query("q"),
		Location: c.Query("location"),
		Type:     c.Query("type"),
		Status:   c.Query("status"),
		Sort:     c.Query("sort"),
		Page:     params.Page,
		PageSize: params.Limit,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"count":      len(jobs),
		"pagination": utils.NewPaginationResponse(params, total),
		"data":       dto.ToJobDTOs(jobs),
	})
}

// Featured returns the most-applied-to active jobs.
func (h *JobHandler) Featured(c *gin.Context) {
	jobs, err := h.jobService.ListFeatured()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(jobs),
		"data":    dto.ToJobDTOs(jobs),
	})
}

// Get returns a single job.
func (h *JobHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	job, err := h.jobService.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    dto.ToJobDTO(*job),
	})
}

// Update patches a job owned by the caller (admins bypass ownership).
func (h *JobHandler) Update(c *gin.Context) {
	actor, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req jobPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	job, err := h.jobService.Update(actor, id, req.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    dto.ToJobDTO(*job),
	})
}

// Delete removes a job and its applications.
func (h *JobHandler) Delete(c *gin.Context) {
	actor, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.jobService.Delete(actor, id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{},
	})
}

// ListMine returns the calling employer's own jobs.
func (h *JobHandler) ListMine(c *gin.Context) {
	actor, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	jobs, err := h.jobService.ListByEmployer(actor.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(jobs),
		"data":    dto.ToJobDTOs(jobs),
	})
}

// jobPatchRequest mirrors jobRequest with optional fields for updates.
type jobPatchRequest struct {
	Title            *string           `json:"title"`
	Company          *string           `json:"company"`
	Location         *string           `json:"location"`
	Type             *models.JobType   `json:"type"`
	Description      *string           `json:"description"`
	Requirements     *[]string         `json:"requirements"`
	Responsibilities *[]string         `json:"responsibilities"`
	Salary           *models.Salary    `json:"salary"`
	Deadline         *time.Time        `json:"deadline"`
	Status           *models.JobStatus `json:"status"`
}

func (r jobPatchRequest) toInput() services.UpdateJobInput {
	return services.UpdateJobInput{
		Title:            r.Title,
		Company:          r.Company,
		Location:         r.Location,
		Type:             r.Type,
		Description:      r.Description,
		Requirements:     r.Requirements,
		Responsibilities: r.Responsibilities,
		Salary:           r.Salary,
		Deadline:         r.Deadline,
		Status:           r.Status,
	}
}

// parseIDParam parses a numeric URL parameter, responding 400 on garbage.
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid "+name+" parameter")
		return 0, false
	}
	return id, true
}
