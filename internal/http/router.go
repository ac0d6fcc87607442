package http

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/astrolab/observatory-api/internal/usecase"
)

// SetupRouter creates and configures the Gin router.
func SetupRouter(convertUC *usecase.ConvertUseCase, imageUC *usecase.ImageUseCase) *gin.Engine {

	router := gin.Default()

	// Setup CORS middleware.
	corsConfig := cors.DefaultConfig()

	// Get allowed origins from environment variable.
	// Default to allow all origins if not specified.
	allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if allowedOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(allowedOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}

	router.Use(cors.New(corsConfig))

	// Create handler.
	handler := NewHandler(convertUC, imageUC)

	// API v1 routes.
	v1 := router.Group("/v1")

	// Angle conversion.
	angles := v1.Group("/angles")
	angles.GET("/decimal", handler.GetDecimal)
	angles.GET("/sexagesimal", handler.GetSexagesimal)

	// Image persistence and statistics.
	images := v1.Group("/images")
	images.POST("", handler.SaveImage)
	images.POST("/stats", handler.GetImageStats)

	// Health check.
	router.GET("/health", handler.HealthCheck)

	return router
}
