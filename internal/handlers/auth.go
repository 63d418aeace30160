package handlers

import (
	"net/http"

	"github.com/aryankuttarmare14/job-board-app/internal/config"
	"github.com/aryankuttarmare14/job-board-app/internal/dto"
	apierrors "github.com/aryankuttarmare14/job-board-app/internal/errors"
	"github.com/aryankuttarmare14/job-board-app/internal/middleware"
	"github.com/aryankuttarmare14/job-board-app/internal/models"
	"github.com/aryankuttarmare14/job-board-app/internal/services"
	"github.com/aryankuttarmare14/job-board-app/internal/utils"
	"github.com/gin-gonic/gin"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

// Register creates a new user and returns a bearer token.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Name     string      `json:"name" binding:"required"`
		Username string      `json:"username" binding:"required,min=3,max=50"`
		Email    string      `json:"email" binding:"required,email"`
		Password string      `json:"password" binding:"required"`
		Role     models.Role `json:"role"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.Register(services.RegisterInput{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.respondWithToken(c, http.StatusCreated, user)
}

// Login authenticates a user and returns a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.Login(services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.respondWithToken(c, http.StatusOK, user)
}

// GetCurrentUser returns the authenticated user.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	actor, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    dto.ToUserDTO(*actor),
	})
}

// UpdateProfile applies a self-service profile update.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	actor, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type UpdateProfileRequest struct {
		Name     *string   `json:"name"`
		Username *string   `json:"username"`
		Email    *string   `json:"email"`
		Company  *string   `json:"company"`
		Location *string   `json:"location"`
		Bio      *string   `json:"bio"`
		Skills   *[]string `json:"skills"`
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.UpdateProfile(actor.ID, services.UpdateProfileInput{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Company:  req.Company,
		Location: req.Location,
		Bio:      req.Bio,
		Skills:   req.Skills,
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

// ChangePassword re-proves the current password and issues a fresh token.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	actor, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type ChangePasswordRequest struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required"`
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.ChangePassword(actor.ID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.respondWithToken(c, http.StatusOK, user)
}

func (h *AuthHandler) respondWithToken(c *gin.Context, statusCode int, user *models.User) {
	token, err := utils.GenerateToken(user, h.cfg.JWTSecret, h.cfg.JWTExpiresIn)
	if err != nil {
		apierrors.InternalError(c, "Failed to generate token")
		return
	}

	c.JSON(statusCode, gin.H{
		"success": true,
		"token":   token,
		"user":    dto.ToUserDTO(*user),
	})
}
