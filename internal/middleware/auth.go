// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"strings"

	"trekheaven/internal/models"
	"trekheaven/internal/service"
	"trekheaven/pkg/auth"
	"trekheaven/pkg/response"

	"github.com/gin-gonic/gin"
)

// Context keys for storing user data
const (
	UserKey = "currentUser"
)

// Auth returns a middleware that validates JWT bearer tokens and loads the
// authenticated user into the request context.
func Auth(jwtManager auth.TokenManager, authService service.AuthServicer) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		// Check Bearer prefix
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		// Validate token
		claims, err := jwtManager.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		// A valid token for a deleted account is still unauthorized.
		user, err := authService.GetUser(c.Request.Context(), claims.UserID)
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(UserKey, user)

		// Continue to next handler
		c.Next()
	}
}

// Admin returns a middleware gating a route to admin accounts. It must run
// after Auth.
func Admin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin {
			response.Forbidden(c, "admin access required")
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUser retrieves the authenticated user from the context.
// Returns nil if the request was not authenticated.
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(UserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}
