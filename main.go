package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/cosmiclearn/learning-service/internal/cache"
	"github.com/cosmiclearn/learning-service/internal/completion"
	"github.com/cosmiclearn/learning-service/internal/config"
	"github.com/cosmiclearn/learning-service/internal/events"
	"github.com/cosmiclearn/learning-service/internal/handlers"
	"github.com/cosmiclearn/learning-service/internal/repositories"
	"github.com/cosmiclearn/learning-service/internal/repositories/memory"
	"github.com/cosmiclearn/learning-service/internal/repositories/postgres"
	"github.com/cosmiclearn/learning-service/internal/services"
	"github.com/cosmiclearn/learning-service/internal/utils"
	"github.com/cosmiclearn/learning-service/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	slogLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(slogLogger)
	logger := utils.NewSlogLogger(slogLogger)

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	// Initialize the record store
	repo, err := openRepository(cfg, slogLogger)
	if err != nil {
		log.Fatalf("Failed to initialize repositories: %v", err)
	}

	// Initialize Redis (if configured)
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = cache.NewRedisClient(rootCtx, cfg.RedisURL)
		if err != nil {
			logger.Warn("Failed to initialize Redis, completion cache disabled", "error", err)
		}
	}

	// Initialize the event bus and the AI history recorder
	bus, err := events.NewBus(cfg.Kafka, slogLogger)
	if err != nil {
		log.Fatalf("Failed to initialize event bus: %v", err)
	}
	recorder := events.NewHistoryRecorder(bus.Subscriber, repo.AIContent(), slogLogger)
	if err := recorder.Start(rootCtx); err != nil {
		log.Fatalf("Failed to start history recorder: %v", err)
	}

	completer := completion.NewOpenAIClient(cfg.OpenAI)
	if !completer.Available() {
		logger.Warn("OPENAI_API_KEY not set, assistant runs in fallback mode and other AI features are unavailable")
	}

	// Initialize services
	serviceManager := services.NewServiceManager(services.ServiceDependencies{
		Repo:      repo,
		Completer: completer,
		Cache:     cache.NewCacheManager(redisClient),
		Publisher: bus.Publisher,
		Validator: validator.New(),
		Logger:    slogLogger,
	}, services.ServiceManagerConfig{
		CompletionCacheTTL: cfg.CompletionCacheTTL,
	})
	if err := serviceManager.Initialize(rootCtx); err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}

	// Setup Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	handlers.SetupMiddleware(router, logger)
	handlers.NewHandlerManager(serviceManager, logger).SetupRoutes(router)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	go func() {
		logger.Info("Starting server", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	// Stop the recorder before closing the bus and the store it writes to
	stop()

	if err := bus.Close(); err != nil {
		logger.Error("Failed to close event bus", "error", err)
	}

	if err := serviceManager.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown services", "error", err)
	}

	if redisClient != nil {
		redisClient.Close()
	}

	logger.Info("Server exited")
}

// openRepository uses postgres when DATABASE_URL is set and the in-memory
// store otherwise.
func openRepository(cfg *config.Config, logger *slog.Logger) (repositories.Repository, error) {
	if cfg.DatabaseURL == "" {
		logger.Info("DATABASE_URL not set, using in-memory store")
		return memory.Open(), nil
	}

	db, err := postgres.InitDatabase(cfg.DatabaseURL, logger)
	if err != nil {
		return nil, err
	}

	repoManager := postgres.NewRepositoryManager(postgres.RepositoryConfig{DB: db})
	if err := repoManager.Initialize(); err != nil {
		return nil, err
	}
	return repoManager.GetRepository(), nil
}
