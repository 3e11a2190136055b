// Package http provides the HTTP server and route registration.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	aiHTTP "github.com/allisson/lifetrack/internal/ai/http"
	"github.com/allisson/lifetrack/internal/config"
	financeHTTP "github.com/allisson/lifetrack/internal/finance/http"
	fitnessHTTP "github.com/allisson/lifetrack/internal/fitness/http"
	foodHTTP "github.com/allisson/lifetrack/internal/food/http"
	goalsHTTP "github.com/allisson/lifetrack/internal/goals/http"
	"github.com/allisson/lifetrack/internal/httputil"
	learningHTTP "github.com/allisson/lifetrack/internal/learning/http"
	profileHTTP "github.com/allisson/lifetrack/internal/profile/http"
)

// Handlers groups the per-module HTTP handlers registered on the server.
type Handlers struct {
	Fitness  *fitnessHTTP.FitnessHandler
	Finance  *financeHTTP.FinanceHandler
	Learning *learningHTTP.LearningHandler
	Food     *foodHTTP.FoodHandler
	Goals    *goalsHTTP.GoalsHandler
	Profile  *profileHTTP.ProfileHandler
	AI       *aiHTTP.AIHandler
}

// Server represents the HTTP server.
type Server struct {
	config            *config.Config
	server            *http.Server
	logger            *slog.Logger
	db                *sql.DB
	handlers          Handlers
	metricsMiddleware gin.HandlerFunc
}

// NewServer creates a new HTTP server.
func NewServer(
	cfg *config.Config,
	db *sql.DB,
	handlers Handlers,
	metricsMiddleware gin.HandlerFunc,
	logger *slog.Logger,
) *Server {
	return &Server{
		config:            cfg,
		logger:            logger,
		db:                db,
		handlers:          handlers,
		metricsMiddleware: metricsMiddleware,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 120 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter builds the gin engine with middleware and all routes.
func (s *Server) SetupRouter() *gin.Engine {
	gin.SetMode(s.config.GetGinMode())

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(
		s.config.CORSEnabled,
		s.config.CORSAllowOrigins,
		s.logger,
	); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if s.metricsMiddleware != nil {
		router.Use(s.metricsMiddleware)
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")

	fitness := v1.Group("/fitness")
	fitness.POST("/logs", s.handlers.Fitness.CreateHandler)
	fitness.GET("/weekly", s.handlers.Fitness.WeeklySummaryHandler)

	finance := v1.Group("/finance")
	finance.POST("/logs", s.handlers.Finance.CreateHandler)
	finance.GET("/summary", s.handlers.Finance.SummaryHandler)

	learning := v1.Group("/learning")
	learning.POST("/notes", s.handlers.Learning.CreateHandler)
	learning.GET("/notes", s.handlers.Learning.ListHandler)
	learning.DELETE("/notes/:id", s.handlers.Learning.DeleteHandler)

	food := v1.Group("/food")
	food.POST("/logs", s.handlers.Food.CreateHandler)
	food.DELETE("/logs/:id", s.handlers.Food.DeleteHandler)
	food.GET("/today", s.handlers.Food.TodayHandler)
	food.GET("/weekly", s.handlers.Food.WeeklyHandler)
	food.PUT("/target", s.handlers.Food.SetTargetHandler)
	food.GET("/target", s.handlers.Food.GetTargetHandler)

	goals := v1.Group("/goals")
	goals.POST("", s.handlers.Goals.CreateHandler)
	goals.GET("", s.handlers.Goals.ListHandler)
	goals.DELETE("/:id", s.handlers.Goals.DeleteHandler)

	profile := v1.Group("/profile")
	profile.GET("", s.handlers.Profile.GetHandler)
	profile.PUT("", s.handlers.Profile.UpdateHandler)

	// Generation endpoints issue expensive model calls, so they carry their
	// own rate limit.
	ai := v1.Group("/ai")
	if s.config.RateLimitAIEnabled {
		ai.Use(RateLimitMiddleware(
			s.config.RateLimitAIRequestsPerSec,
			s.config.RateLimitAIBurst,
			httputil.UserIDHeader,
			s.logger,
		))
	}
	ai.POST("/estimate-calories", s.handlers.AI.EstimateCaloriesHandler)
	ai.POST("/estimate-food", s.handlers.AI.EstimateFoodKcalHandler)
	ai.POST("/analyze-food-image", s.handlers.AI.AnalyzeFoodImageHandler)
	ai.GET("/weekly-insight", s.handlers.AI.InsightHandler)
	ai.GET("/finance-plan", s.handlers.AI.FinanceGoalPlanHandler)

	return router
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can serve traffic, checking
// each dependency it needs.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{}
	status := "ready"
	code := http.StatusOK

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		components["database"] = "error"
		status = "not_ready"
		code = http.StatusServiceUnavailable
	} else {
		components["database"] = "ok"
	}

	c.JSON(code, gin.H{"status": status, "components": components})
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.server.Handler = s.SetupRouter()

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
