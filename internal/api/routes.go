package api

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ZanderH-code/mtg-ai-backend/internal/api/handlers"
	"github.com/ZanderH-code/mtg-ai-backend/internal/services"
)

func SetupRouter(searchService *services.SearchService, translator *services.Translator) *gin.Engine {
	router := gin.Default()

	// CORS configuration - allow origins from environment or use defaults
	config := cors.DefaultConfig()
	if corsOrigins := os.Getenv("CORS_ALLOWED_ORIGINS"); corsOrigins != "" {
		config.AllowOrigins = strings.Split(corsOrigins, ",")
	} else {
		config.AllowOrigins = []string{"http://localhost:8080", "http://localhost:3000"}
	}
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"}
	config.AllowCredentials = false
	router.Use(cors.New(config))

	router.Use(RequestIDMiddleware())
	router.Use(MetricsMiddleware())

	searchHandler := handlers.NewSearchHandler(searchService)
	providerHandler := handlers.NewProviderHandler(translator)

	api := router.Group("/api")
	{
		api.POST("/search", searchHandler.Search)
		api.GET("/models", providerHandler.ListModels)
		api.POST("/validate-key", providerHandler.ValidateKey)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "healthy"})
		})
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "MTG AI Search API", "version": "1.0.0"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
