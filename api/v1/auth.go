package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prodcat-api/dto"
	"github.com/prodcat-api/services"
)

var authService = services.NewAuthService()

// Register handles user registration
func Register(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.NewFieldError("Cannot create user.", "body", "Invalid request body."))
		return
	}

	response, verrs, err := authService.Register(body)
	if verrs.Any() {
		c.JSON(http.StatusBadRequest, dto.NewError("Cannot create user.", verrs))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to create user.",
		})
		return
	}

	c.JSON(http.StatusCreated, response)
}

// Login handles user authentication. Validation failures and bad
// credentials share the same envelope and status.
func Login(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.NewFieldError("Cannot log in.", "body", "Invalid request body."))
		return
	}

	response, verrs, err := authService.Login(body)
	if verrs.Any() {
		c.JSON(http.StatusBadRequest, dto.NewError("Cannot log in.", verrs))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to log in.",
		})
		return
	}

	c.JSON(http.StatusOK, response)
}
