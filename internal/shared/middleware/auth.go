package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
)

// Context keys set by Auth and read by handlers.
const (
	ContextUsername = "username"
	ContextRole     = "role"
)

// TokenVerifier resolves a raw session token to a username and role.
// It must reject tokens that were revoked by logout, not just ones that
// fail signature validation.
type TokenVerifier func(ctx context.Context, token string) (username string, role string, err error)

// Auth authenticates requests via the Authorization header.
func Auth(verify TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(401, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(401, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}
		token := parts[1]

		username, role, err := verify(c.Request.Context(), token)
		if err != nil {
			c.JSON(401, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(ContextUsername, username)
		c.Set(ContextRole, role)

		c.Next()
	}
}
