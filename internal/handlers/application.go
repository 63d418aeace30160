package handlers

import (
	"net/http"

	"github.com/aryankuttarmare14/job-board-app/internal/dto"
	apierrors "github.com/aryankuttarmare14/job-board-app/internal/errors"
	"github.com/aryankuttarmare14/job-board-app/internal/middleware"
	"github.com/aryankuttarmare14/job-board-app/internal/models"
	"github.com/aryankuttarmare14/job-board-app/internal/services"
	"github.com/gin-gonic/gin"
)

// ApplicationHandler coordinates application lifecycle HTTP handlers.
type ApplicationHandler struct {
	appService *services.ApplicationService
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(appService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		appService: appService,
	}
}

// Apply submits a multipart application (cover letter + PDF resume) to a job.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	actor, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	jobID, ok := parseIDParam(c, "jobId")
	if !ok {
		return
	}

	// Missing file is a precondition failure, not a malformed request.
	resume, err := c.FormFile("resume")
	if err != nil {
		resume = nil
	}

	app, err := h.appService.Apply(services.ApplyInput{
		ApplicantID: actor.ID,
		JobID:       jobID,
		CoverLetter: c.PostForm("coverLetter"),
		Resume:      resume,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    dto.ToApplicationDTO(*app),
	})
}

// ListMine returns the caller's own applications with their jobs.
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	actor, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	apps, err := h.appService.ListForApplicant(actor.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(apps),
		"data":    dto.ToApplicationDTOs(apps),
	})
}

// ListForJob returns a job's applications for its owning employer.
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	actor, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	jobID, ok := parseIDParam(c, "jobId")
	if !ok {
		return
	}

	apps, err := h.appService.ListForJob(actor, jobID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(apps),
		"data":    dto.ToApplicationDTOs(apps),
	})
}

// UpdateStatus transitions an application's status with optional feedback.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	actor, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	type UpdateStatusRequest struct {
		Status   models.ApplicationStatus `json:"status" binding:"required"`
		Feedback string                   `json:"feedback"`
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	app, err := h.appService.UpdateStatus(actor, id, req.Status, req.Feedback)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    dto.ToApplicationDTO(*app),
	})
}

// Withdraw deletes the caller's own application.
func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	actor, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.appService.Withdraw(actor.ID, id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{},
	})
}

// DownloadResume streams the stored PDF to the owning employer or an admin.
func (h *ApplicationHandler) DownloadResume(c *gin.Context) {
	actor, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	path, err := h.appService.ResumePath(actor, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.File(path)
}
