package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole runs after AuthMiddleware and rejects callers whose token
// role claim does not match. Admin routes must never be reachable with a
// customer or chef token.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, _ := c.Get(ContextUserRole)
		if got != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient_role"})
			return
		}
		c.Next()
	}
}
