package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	jwtsvc "equipshare/internal/pkg/jwt"
	"equipshare/internal/pkg/response"
)

// Auth validates the bearer token and stores the principal's pid and role in
// the request context for the handlers behind it.
func Auth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing Authorization header")
			c.Abort()
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid Authorization header")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Empty token")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
			c.Abort()
			return
		}

		c.Set("pid", claims.PID)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// PID returns the authenticated principal's pid, or 0 outside Auth.
func PID(c *gin.Context) int64 {
	return c.GetInt64("pid")
}

// Role returns the authenticated principal's role, or "" outside Auth.
func Role(c *gin.Context) string {
	return c.GetString("role")
}
