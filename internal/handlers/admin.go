package handlers

import (
	"net/http"

	"github.com/aryankuttarmare14/job-board-app/internal/dto"
	apierrors "github.com/aryankuttarmare14/job-board-app/internal/errors"
	"github.com/aryankuttarmare14/job-board-app/internal/models"
	"github.com/aryankuttarmare14/job-board-app/internal/services"
	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the moderation surface. All routes behind it are
// gated to the admin role by middleware.
type AdminHandler struct {
	adminService *services.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// ListUsers returns all users, hashes excluded by projection.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminService.ListUsers()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(users),
		"data":    dto.ToUserDTOs(users),
	})
}

// GetUser returns any user by id.
func (h *AdminHandler) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.adminService.GetUser(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    dto.ToUserDTO(*user),
	})
}

// UpdateUser edits any user, including role changes.
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	type UpdateUserRequest struct {
		Name  *string      `json:"name"`
		Email *string      `json:"email"`
		Role  *models.Role `json:"role"`
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.adminService.UpdateUser(id, services.UpdateUserInput{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    dto.ToUserDTO(*user),
	})
}

// DeleteUser removes a user and cascades to everything they own.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.adminService.DeleteUser(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{},
	})
}

// ListJobs returns every job regardless of status.
func (h *AdminHandler) ListJobs(c *gin.Context) {
	jobs, err := h.adminService.ListJobs()
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

// UpdateJob patches any job, bypassing ownership.
func (h *AdminHandler) UpdateJob(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req jobPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	job, err := h.adminService.UpdateJob(id, req.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    dto.ToJobDTO(*job),
	})
}

// DeleteJob removes any job and its applications.
func (h *AdminHandler) DeleteJob(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.adminService.DeleteJob(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{},
	})
}

// ListApplications returns every application.
func (h *AdminHandler) ListApplications(c *gin.Context) {
	apps, err := h.adminService.ListApplications()
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

// Stats returns the aggregated dashboard read.
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminService.Stats()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    dto.ToDashboardStatsDTO(*stats),
	})
}
