package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Logout revokes every token of the authenticated user, ending all of
// their sessions at once
func Logout(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"message": "Unauthenticated.",
		})
		return
	}

	if err := authService.Logout(userID.(uint)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to log out.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out",
	})
}
