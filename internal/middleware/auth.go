package middleware

import (
	"strings"

	"github.com/aryankuttarmare14/job-board-app/internal/constants"
	"github.com/aryankuttarmare14/job-board-app/internal/database"
	apierrors "github.com/aryankuttarmare14/job-board-app/internal/errors"
	"github.com/aryankuttarmare14/job-board-app/internal/models"
	"github.com/aryankuttarmare14/job-board-app/internal/utils"
	"github.com/gin-gonic/gin"
)

// RequireAuth resolves the caller from the Authorization bearer token and
// attaches the user to the request context. Token decode failures and a
// deleted user both collapse to a generic 401.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(strings.TrimPrefix(header, "Bearer "), secret)
		if err != nil {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		var user models.User
		if err := database.GetDB().First(&user, claims.UserID).Error; err != nil {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUser, &user)
		c.Next()
	}
}

// RequireRole rejects callers whose role is outside the given set.
// Must run after RequireAuth.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, exists := GetCurrentUser(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		apierrors.Forbidden(c, "")
		c.Abort()
	}
}

// GetCurrentUser retrieves the authenticated user from the request context.
func GetCurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return nil, false
	}

	user, ok := value.(*models.User)
	if !ok {
		return nil, false
	}

	return user, true
}
