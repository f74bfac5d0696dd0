package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/article-api/internal/models"
	appErrors "github.com/noah-isme/article-api/pkg/errors"
	"github.com/noah-isme/article-api/pkg/response"
)

// RequireRole admits profiles whose role is min or ranks above it. It must run after JWT.
func RequireRole(min models.ProfileRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(ContextUserKey)
		if !exists {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		claims, ok := value.(*models.JWTClaims)
		if !ok || claims == nil {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		if !claims.Role.AtLeast(min) {
			response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "insufficient role"))
			c.Abort()
			return
		}
		c.Next()
	}
}
