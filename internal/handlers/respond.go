package handlers

import (
	"errors"
	"log/slog"

	apierrors "github.com/aryankuttarmare14/job-board-app/internal/errors"
	"github.com/aryankuttarmare14/job-board-app/internal/services"
	"github.com/gin-gonic/gin"
)

// respondServiceError translates service-layer errors into the HTTP error
// taxonomy. Anything unrecognized is logged and surfaced as a generic 500.
func respondServiceError(c *gin.Context, err error) {
	var vErr services.ValidationError
	if errors.As(err, &vErr) {
		apierrors.BadRequest(c, vErr.Error())
		return
	}

	switch {
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrUsernameTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrCurrentPasswordIncorrect):
		apierrors.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrJobNotFound),
		errors.Is(err, services.ErrApplicationNotFound),
		errors.Is(err, services.ErrResumeFileNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotJobOwner),
		errors.Is(err, services.ErrNotApplicationOwner),
		errors.Is(err, services.ErrNotApplicationViewer):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrPasswordTooShort),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrJobNotActive),
		errors.Is(err, services.ErrDeadlinePassed),
		errors.Is(err, services.ErrAlreadyApplied):
		apierrors.BadRequest(c, err.Error())
	default:
		slog.Error("unexpected error", "path", c.FullPath(), "error", err)
		apierrors.InternalError(c, "")
	}
}
