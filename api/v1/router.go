package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/prodcat-api/middleware"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Public product reads
	router.GET("/products", ListProducts)
	router.GET("/products/:id", GetProduct)
	router.GET("/products/:id/attributes", GetProductAttributes)

	// Public auth endpoints
	router.POST("/register", Register)
	router.POST("/login", Login)

	// Product mutations and logout - protected by AuthMiddleware
	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/products", CreateProduct)
		protected.PUT("/products/:id", UpdateProduct)
		protected.DELETE("/products/:id", DeleteProduct)
		protected.POST("/logout", Logout)
	}
}
