package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prodcat-api/services"
)

var authService = services.NewAuthService()

// AuthMiddleware guards a route group with bearer token authentication.
// Any missing or invalid token yields a 401 "Unauthenticated." response.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			unauthenticated(c)
			return
		}

		user, err := authService.Authenticate(token)
		if err != nil {
			unauthenticated(c)
			return
		}

		// Expose the authenticated user to downstream handlers
		c.Set("user", user)
		c.Set("userId", user.ID)

		c.Next()
	}
}

func unauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"message": "Unauthenticated.",
	})
}
