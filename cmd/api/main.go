package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pretamane/bing-crawling-api/internal/adapter/engine"
	"github.com/pretamane/bing-crawling-api/internal/adapter/http/router"
	"github.com/pretamane/bing-crawling-api/internal/domain/service"
	"github.com/pretamane/bing-crawling-api/internal/infrastructure/cache"
	"github.com/pretamane/bing-crawling-api/internal/infrastructure/config"
	"github.com/pretamane/bing-crawling-api/internal/infrastructure/logger"
	"github.com/pretamane/bing-crawling-api/internal/registry"
	"github.com/pretamane/bing-crawling-api/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Initialize model registry
	reg := registry.New(extractorBuilder(cfg), classifierBuilder(cfg), log)

	// Warm both engines at startup. A failed load stays recoverable: the slot
	// is marked unavailable and retried on demand per request.
	if state := reg.EnsureReady(registry.CapabilityExtractor); state != registry.StateReady {
		log.Warn("extractor not ready at startup, will retry on demand")
	}
	if state := reg.EnsureReady(registry.CapabilityClassifier); state != registry.StateReady {
		log.Warn("classifier not ready at startup, will retry on demand")
	}

	// Initialize Redis result cache (optional, continue without it)
	var redisClient *redis.Client
	var resultCache usecase.ResultCache
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			log.Warn("Failed to connect to Redis, continuing without cache", zap.Error(err))
			redisClient = nil
		} else {
			log.Info("Connected to Redis")
			resultCache = cache.NewRedisResultCache(redisClient, cfg.Redis.CacheTTL, log)
		}
	}

	// Setup router
	r := router.Setup(reg, redisClient, resultCache, log)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("Starting server", zap.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	// Close Redis connection
	if redisClient != nil {
		_ = redisClient.Close()
	}

	log.Info("Server exited")
	return nil
}

// extractorBuilder loads the entity lexicon by its configured identifier, or
// from an external file when a path override is set
func extractorBuilder(cfg *config.Config) registry.ExtractorBuilder {
	return func() (service.EntityExtractor, error) {
		var (
			lex *engine.Lexicon
			err error
		)
		if cfg.Models.LexiconPath != "" {
			lex, err = engine.LoadLexiconFile(cfg.Models.LexiconPath)
		} else {
			lex, err = engine.LoadLexicon(cfg.Models.LexiconName)
		}
		if err != nil {
			return nil, err
		}
		return engine.NewLexiconExtractor(lex), nil
	}
}

// classifierBuilder trains the topic classifier from the embedded corpus, or
// from an external corpus file when configured
func classifierBuilder(cfg *config.Config) registry.ClassifierBuilder {
	return func() (service.TopicClassifier, error) {
		corpus := engine.DefaultCorpus()
		if cfg.Models.CorpusPath != "" {
			var err error
			corpus, err = engine.LoadCorpusFile(cfg.Models.CorpusPath)
			if err != nil {
				return nil, err
			}
		}
		return engine.TrainClassifier(corpus)
	}
}
