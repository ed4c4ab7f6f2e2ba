package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pretamane/bing-crawling-api/internal/adapter/http/handler"
	"github.com/pretamane/bing-crawling-api/internal/adapter/http/middleware"
	"github.com/pretamane/bing-crawling-api/internal/registry"
	"github.com/pretamane/bing-crawling-api/internal/usecase"
)

// Setup creates and configures the Gin router
func Setup(reg *registry.Registry, redisClient *redis.Client, resultCache usecase.ResultCache, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())

	// Health endpoints
	healthHandler := handler.NewHealthHandler(reg, redisClient)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Initialize usecases
	analysisUC := usecase.NewAnalysisUsecase(reg, resultCache)

	// Initialize handlers
	analysisHandler := handler.NewAnalysisHandler(analysisUC)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		analysis := v1.Group("/analysis")
		{
			analysis.POST("/ner", analysisHandler.ExtractEntities)
			analysis.POST("/classify", analysisHandler.ClassifyText)
		}
	}

	return router
}
