package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Admin checks if the authenticated user has the admin role.
// Must run after Auth.
func Admin() gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get(ContextRole)
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "access denied: admin role required"})
			c.Abort()
			return
		}

		role, ok := roleValue.(string)
		if !ok || role != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"error": "access denied: admin role required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
