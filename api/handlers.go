package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-term-search/services"
)

const maxRequestBodySize = 10 << 20 // 10 MB

// API holds dependencies for API handlers, primarily the dataset manager.
type API struct {
	engine services.DatasetManager
}

// NewAPI creates a new API handler structure.
func NewAPI(engine services.DatasetManager) *API {
	return &API{engine: engine}
}

// SetupRoutes defines all the API routes for the term-search service.
func SetupRoutes(router *gin.Engine, engine services.DatasetManager) {
	apiHandler := NewAPI(engine)

	router.Use(CORSMiddleware())
	router.Use(RequestSizeLimitMiddleware(maxRequestBodySize))

	// Health check route
	router.GET("/health", apiHandler.HealthCheckHandler)

	// Dataset management routes
	datasetRoutes := router.Group("/datasets")
	{
		datasetRoutes.POST("", apiHandler.CreateDatasetHandler)                // Create a new dataset
		datasetRoutes.GET("", apiHandler.ListDatasetsHandler)                  // List all datasets
		datasetRoutes.GET("/:datasetName", apiHandler.GetDatasetHandler)       // Get dataset settings and stats
		datasetRoutes.DELETE("/:datasetName", apiHandler.DeleteDatasetHandler) // Delete a dataset
		datasetRoutes.POST("/:datasetName/documents", apiHandler.AddDocumentsHandler)
		datasetRoutes.POST("/:datasetName/search", apiHandler.SearchHandler)
	}
}

// HealthCheckHandler reports service liveness.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
