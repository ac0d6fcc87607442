// Package main provides the observatory API HTTP server.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	httpHandler "github.com/astrolab/observatory-api/internal/http"
	"github.com/astrolab/observatory-api/internal/usecase"
)

const version = "0.1.0"

func main() {
	// Parse command-line flags.
	showHelp := flag.Bool("help", false, "Show usage information")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showHelp {
		printUsage()
		return
	}

	if *showVersion {
		fmt.Printf("observatory-api version %s\n", version)
		return
	}

	// Load configuration from environment.
	port := getEnv("PORT", "8080")
	fitsDir := getEnv("FITS_DIR", "./data/fits")

	log.Printf("Starting Observatory API server...")
	log.Printf("Port: %s", port)
	log.Printf("FITS output directory: %s", fitsDir)

	// Ensure the FITS output directory exists.
	if err := os.MkdirAll(fitsDir, 0o755); err != nil {
		log.Fatalf("Failed to create FITS directory: %v", err)
	}

	// Initialize use cases.
	convertUC := usecase.NewConvertUseCase()
	imageUC := usecase.NewImageUseCase(fitsDir)

	// Setup router.
	router := httpHandler.SetupRouter(convertUC, imageUC)

	// Start server.
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Server listening on %s", addr)
	log.Printf("Health check: http://localhost:%s/health", port)
	log.Printf("API endpoints:")
	log.Printf("  - GET  /v1/angles/decimal")
	log.Printf("  - GET  /v1/angles/sexagesimal")
	log.Printf("  - POST /v1/images")
	log.Printf("  - POST /v1/images/stats")

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// printUsage prints usage information.
func printUsage() {
	fmt.Printf("Observatory API Server v%s\n\n", version)
	fmt.Println("USAGE:")
	fmt.Println("  observatory-api [flags]")
	fmt.Println()
	fmt.Println("FLAGS:")
	fmt.Println("  -help          Show this help message")
	fmt.Println("  -version       Show version information")
	fmt.Println()
	fmt.Println("ENVIRONMENT VARIABLES:")
	fmt.Println("  PORT                    Server port (default: 8080)")
	fmt.Println("  FITS_DIR                FITS output directory (default: ./data/fits)")
	fmt.Println("  CORS_ALLOWED_ORIGINS    Comma-separated list of allowed origins (default: all origins)")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  # Start server with default settings")
	fmt.Println("  observatory-api")
	fmt.Println()
	fmt.Println("  # Start server on custom port")
	fmt.Println("  PORT=3000 observatory-api")
	fmt.Println()
	fmt.Println("API ENDPOINTS:")
	fmt.Println("  GET  /health                   Health check")
	fmt.Println("  GET  /v1/angles/decimal        Convert sexagesimal/decimal string to degrees")
	fmt.Println("  GET  /v1/angles/sexagesimal    Format degrees as a sexagesimal string")
	fmt.Println("  POST /v1/images                Save a 2D array as a FITS image")
	fmt.Println("  POST /v1/images/stats          Descriptive statistics of a 2D array")
	fmt.Println()
}
