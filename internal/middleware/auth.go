package middleware

import (
	"interview_sim_backend/internal/config"
	"interview_sim_backend/internal/service"
	"interview_sim_backend/internal/util"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards every protected endpoint in real mode: extract the
// bearer token, verify signature and expiry, attach the identified user.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			util.Unauthorized(c, "Authentication required")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" || tokenString == authHeader {
			util.Unauthorized(c, "Authentication required")
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

// MockAuthMiddleware stands in for the guard in mock mode. The placeholder
// tokens are not verifiable, so any non-empty bearer identifies the fixture
// user. Demo convenience only.
func MockAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if authHeader == "" || tokenString == "" || tokenString == authHeader {
			util.Unauthorized(c, "Authentication required")
			c.Abort()
			return
		}

		c.Set("user", &util.Claims{
			UserID:   service.MockUserID,
			Email:    "demo@example.com",
			FullName: service.MockUserName,
		})
		c.Next()
	}
}
