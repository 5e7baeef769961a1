package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cosmiclearn/learning-service/internal/cache"
	"github.com/cosmiclearn/learning-service/internal/completion"
	"github.com/cosmiclearn/learning-service/internal/events"
	"github.com/cosmiclearn/learning-service/internal/repositories"
	"github.com/cosmiclearn/learning-service/internal/validator"
)

// ServiceManagerConfig holds configuration for the service manager
type ServiceManagerConfig struct {
	CompletionCacheTTL time.Duration
}

// ServiceDependencies are the shared clients every service is built from.
// Cache and Publisher are optional.
type ServiceDependencies struct {
	Repo      repositories.Repository
	Completer completion.Completer
	Cache     *cache.CacheManager
	Publisher events.EventPublisher
	Validator *validator.Validator
	Logger    *slog.Logger
}

// serviceManager implements ServiceManager interface
type serviceManager struct {
	deps   ServiceDependencies
	config ServiceManagerConfig
	logger *slog.Logger

	// Service instances
	authService       AuthService
	catalogService    CatalogService
	aiService         AIService
	quizExportService QuizExportService

	// Lifecycle management
	initialized bool
	shutdown    bool
	mu          sync.RWMutex
}

// NewServiceManager creates a new service manager with all dependencies
func NewServiceManager(deps ServiceDependencies, config ServiceManagerConfig) ServiceManager {
	return &serviceManager{
		deps:   deps,
		config: config,
		logger: deps.Logger,
	}
}

// NewDefaultServiceManager creates a service manager with default configuration
func NewDefaultServiceManager(deps ServiceDependencies) ServiceManager {
	return NewServiceManager(deps, ServiceManagerConfig{
		CompletionCacheTTL: cache.CompletionCacheConfig.TTL,
	})
}

// Initialize sets up all services and their dependencies
func (sm *serviceManager) Initialize(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := sm.config.Validate(); err != nil {
		return err
	}
	if sm.deps.Repo == nil || sm.deps.Completer == nil || sm.deps.Validator == nil || sm.logger == nil {
		return fmt.Errorf("service manager: repository, completer, validator and logger are required")
	}

	sm.logger.Info("Initializing service manager")

	var completionCache *cache.CacheHelper
	if sm.deps.Cache != nil {
		completionCache = sm.deps.Cache.Completion
	}

	sm.authService = NewAuthService(sm.deps.Repo, sm.deps.Publisher, sm.logger, sm.deps.Validator)
	sm.catalogService = NewCatalogService(sm.deps.Repo, sm.logger)
	sm.aiService = NewAIService(sm.deps.Completer, sm.deps.Repo, completionCache, sm.config.CompletionCacheTTL, sm.deps.Publisher, sm.logger)
	sm.quizExportService = NewQuizExportService(sm.aiService, sm.logger)

	sm.initialized = true
	sm.logger.Info("Service manager initialized successfully",
		"completion_available", sm.deps.Completer.Available(),
		"completion_model", sm.deps.Completer.Model(),
		"cache_enabled", completionCache != nil && completionCache.Enabled(),
	)

	return nil
}

// Service getters
func (sm *serviceManager) Auth() AuthService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.authService
}

func (sm *serviceManager) Catalog() CatalogService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.catalogService
}

func (sm *serviceManager) AI() AIService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.aiService
}

func (sm *serviceManager) QuizExport() QuizExportService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.quizExportService
}

// Health and lifecycle
func (sm *serviceManager) HealthCheck(ctx context.Context) error {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		return fmt.Errorf("service manager not initialized")
	}

	if sm.shutdown {
		return fmt.Errorf("service manager is shut down")
	}

	if err := sm.deps.Repo.Ping(ctx); err != nil {
		return fmt.Errorf("repository health check failed: %w", err)
	}

	if sm.deps.Cache != nil {
		if err := sm.deps.Cache.HealthCheck(ctx); err != nil && !errors.Is(err, cache.ErrCacheNotAvailable) {
			return err
		}
	}

	return nil
}

func (sm *serviceManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.shutdown {
		return nil
	}

	sm.logger.Info("Shutting down service manager")

	if err := sm.deps.Repo.Close(); err != nil {
		sm.logger.Error("Failed to close repository", "error", err)
	}

	sm.shutdown = true
	sm.logger.Info("Service manager shut down completed")

	return nil
}

// ===== CONFIGURATION VALIDATION =====

// Validate validates the service manager configuration
func (config *ServiceManagerConfig) Validate() error {
	var errs []string

	if config.CompletionCacheTTL < 0 {
		errs = append(errs, "completion cache TTL cannot be negative")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %v", errs)
	}

	return nil
}
