// Package app provides the dependency injection container assembling
// application components.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/gin-gonic/gin"

	aiHTTP "github.com/allisson/lifetrack/internal/ai/http"
	aiUseCase "github.com/allisson/lifetrack/internal/ai/usecase"
	"github.com/allisson/lifetrack/internal/config"
	cryptoService "github.com/allisson/lifetrack/internal/crypto/service"
	"github.com/allisson/lifetrack/internal/database"
	financeHTTP "github.com/allisson/lifetrack/internal/finance/http"
	financeUseCase "github.com/allisson/lifetrack/internal/finance/usecase"
	fitnessHTTP "github.com/allisson/lifetrack/internal/fitness/http"
	fitnessUseCase "github.com/allisson/lifetrack/internal/fitness/usecase"
	foodHTTP "github.com/allisson/lifetrack/internal/food/http"
	foodUseCase "github.com/allisson/lifetrack/internal/food/usecase"
	goalsHTTP "github.com/allisson/lifetrack/internal/goals/http"
	goalsUseCase "github.com/allisson/lifetrack/internal/goals/usecase"
	"github.com/allisson/lifetrack/internal/http"
	learningHTTP "github.com/allisson/lifetrack/internal/learning/http"
	learningUseCase "github.com/allisson/lifetrack/internal/learning/usecase"
	"github.com/allisson/lifetrack/internal/metrics"
	profileHTTP "github.com/allisson/lifetrack/internal/profile/http"
	profileUseCase "github.com/allisson/lifetrack/internal/profile/usecase"
)

// Container holds all application dependencies and provides methods to access
// them. It follows the lazy initialization pattern - components are created on
// first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	db              *sql.DB
	codec           cryptoService.Codec
	safeDecryptor   cryptoService.SafeDecryptor
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Use Cases
	fitnessUseCase    fitnessUseCase.FitnessUseCase
	financeUseCase    financeUseCase.FinanceUseCase
	learningUseCase   learningUseCase.LearningUseCase
	foodUseCase       foodUseCase.FoodUseCase
	goalUseCase       goalsUseCase.GoalUseCase
	profileUseCase    profileUseCase.ProfileUseCase
	estimationUseCase aiUseCase.EstimationUseCase

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                    sync.Mutex
	loggerInit            sync.Once
	dbInit                sync.Once
	codecInit             sync.Once
	metricsProviderInit   sync.Once
	businessMetricsInit   sync.Once
	fitnessUseCaseInit    sync.Once
	financeUseCaseInit    sync.Once
	learningUseCaseInit   sync.Once
	foodUseCaseInit       sync.Once
	goalUseCaseInit       sync.Once
	profileUseCaseInit    sync.Once
	estimationUseCaseInit sync.Once
	httpServerInit        sync.Once
	metricsServerInit     sync.Once
	initErrors            map[string]error
}

// NewContainer creates a new dependency injection container with the provided
// configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database connection.
func (c *Container) DB() (*sql.DB, error) {
	c.dbInit.Do(func() {
		db, err := database.Connect(database.Config{
			ConnectionString:   c.config.DBConnectionString,
			MaxOpenConnections: c.config.DBMaxOpenConnections,
			MaxIdleConnections: c.config.DBMaxIdleConnections,
			ConnMaxLifetime:    c.config.DBConnMaxLifetime,
		})
		if err != nil {
			c.initErrors["db"] = fmt.Errorf("failed to connect to database: %w", err)
			return
		}
		c.db = db
	})
	if err, exists := c.initErrors["db"]; exists {
		return nil, err
	}
	return c.db, nil
}

// MetricsProvider returns the metrics provider, or nil when metrics are
// disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	c.metricsProviderInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}
		provider, err := metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["metricsProvider"] = fmt.Errorf("failed to create metrics provider: %w", err)
			return
		}
		c.metricsProvider = provider
	})
	if err, exists := c.initErrors["metricsProvider"]; exists {
		return nil, err
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder. A no-op recorder is
// returned when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	c.businessMetricsInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["businessMetrics"] = err
			return
		}
		if provider == nil {
			c.businessMetrics = metrics.NewNoOpBusinessMetrics()
			return
		}
		bm, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["businessMetrics"] = fmt.Errorf("failed to create business metrics: %w", err)
			return
		}
		c.businessMetrics = bm
	})
	if err, exists := c.initErrors["businessMetrics"]; exists {
		return nil, err
	}
	return c.businessMetrics, nil
}

// HTTPServer returns the HTTP server instance with all handlers wired.
func (c *Container) HTTPServer() (*http.Server, error) {
	c.httpServerInit.Do(func() {
		server, err := c.initHTTPServer()
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}
		c.httpServer = server
	})
	if err, exists := c.initErrors["httpServer"]; exists {
		return nil, err
	}
	return c.httpServer, nil
}

// MetricsServer returns the Prometheus metrics server, or nil when metrics
// are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	c.metricsServerInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["metricsServer"] = err
			return
		}
		if provider == nil {
			return
		}
		c.metricsServer = http.NewMetricsServer(
			c.config.ServerHost,
			c.config.MetricsPort,
			c.Logger(),
			provider,
		)
	})
	if err, exists := c.initErrors["metricsServer"]; exists {
		return nil, err
	}
	return c.metricsServer, nil
}

// Shutdown gracefully releases all initialized resources.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initHTTPServer creates the HTTP server with all its dependencies.
func (c *Container) initHTTPServer() (*http.Server, error) {
	logger := c.Logger()

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for http server: %w", err)
	}

	handlers, err := c.buildHandlers()
	if err != nil {
		return nil, err
	}

	var metricsMiddleware gin.HandlerFunc
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, err
	}
	if provider != nil {
		metricsMiddleware = metrics.HTTPMetricsMiddleware(
			provider.MeterProvider(),
			c.config.MetricsNamespace,
		)
	}

	return http.NewServer(c.config, db, handlers, metricsMiddleware, logger), nil
}

// buildHandlers assembles the per-module handlers for route registration.
func (c *Container) buildHandlers() (http.Handlers, error) {
	logger := c.Logger()

	fitnessUC, err := c.FitnessUseCase()
	if err != nil {
		return http.Handlers{}, err
	}
	financeUC, err := c.FinanceUseCase()
	if err != nil {
		return http.Handlers{}, err
	}
	learningUC, err := c.LearningUseCase()
	if err != nil {
		return http.Handlers{}, err
	}
	foodUC, err := c.FoodUseCase()
	if err != nil {
		return http.Handlers{}, err
	}
	goalUC, err := c.GoalUseCase()
	if err != nil {
		return http.Handlers{}, err
	}
	profileUC, err := c.ProfileUseCase()
	if err != nil {
		return http.Handlers{}, err
	}
	estimationUC, err := c.EstimationUseCase()
	if err != nil {
		return http.Handlers{}, err
	}

	return http.Handlers{
		Fitness:  fitnessHTTP.NewFitnessHandler(fitnessUC, logger),
		Finance:  financeHTTP.NewFinanceHandler(financeUC, logger),
		Learning: learningHTTP.NewLearningHandler(learningUC, logger),
		Food:     foodHTTP.NewFoodHandler(foodUC, logger),
		Goals:    goalsHTTP.NewGoalsHandler(goalUC, logger),
		Profile:  profileHTTP.NewProfileHandler(profileUC, logger),
		AI:       aiHTTP.NewAIHandler(estimationUC, logger),
	}, nil
}
