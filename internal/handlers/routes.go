package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "math-solver-api/docs"
	"math-solver-api/internal/metrics"
	"math-solver-api/internal/middleware"
	"math-solver-api/internal/models"
	"math-solver-api/internal/services"
)

// ServiceName is reported by the health endpoint
const ServiceName = "math-solver-api"

// Version is reported by the health endpoint
const Version = "1.0.0"

// maxRequestBodySize bounds the size of a solve request body
const maxRequestBodySize = 1 << 20

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	SolverService services.SolverService
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	solveHandler := NewSolveHandler(config.SolverService)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	startedAt := time.Now()
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, models.NewHealthCheck(ServiceName, Version, startedAt))
	})

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// The handler answers every method itself, including the preflight
	router.Any("/solve", solveHandler.Solve)

	v1 := router.Group("/api/v1")
	{
		v1.Any("/solve", solveHandler.Solve)
	}
}

// SetupMiddleware configures global middleware
func SetupMiddleware(router *gin.Engine) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RequestSizeLimit(maxRequestBodySize))
	router.Use(middleware.StructuredLogger())
	router.Use(middleware.PerformanceMonitor(0))
	router.Use(middleware.Metrics())
}
