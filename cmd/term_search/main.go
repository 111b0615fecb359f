package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-term-search/api"
	"github.com/gcbaptista/go-term-search/internal/engine"
)

func main() {
	// Define command-line flags
	var (
		help    = flag.Bool("help", false, "Show help message")
		version = flag.Bool("version", false, "Show version information")
		port    = flag.String("port", "8080", "Port to run the server on")
	)

	flag.Parse()

	// Handle help flag
	if *help {
		fmt.Printf("Term Search - an in-memory fuzzy term-matching and ranking service\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s                # Start server on default port 8080\n", os.Args[0])
		fmt.Printf("  %s --port 9000    # Start server on port 9000\n", os.Args[0])
		return
	}

	// Handle version flag
	if *version {
		fmt.Printf("Term Search v1.0.0\n")
		return
	}

	// Initialize the dataset manager
	searchEngine := engine.NewEngine()

	// Initialize Gin router
	router := gin.Default()

	// Setup API routes
	api.SetupRoutes(router, searchEngine)

	// Start the server
	log.Printf("Starting server on port %s...", *port)
	if err := router.Run(":" + *port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
