// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// ServerHost is the host address the server will bind to.
	ServerHost string
	// ServerPort is the port number the server will listen on.
	ServerPort int

	// DBConnectionString is the MySQL connection string for the database.
	DBConnectionString string
	// DBMaxOpenConnections is the maximum number of open connections to the database.
	DBMaxOpenConnections int
	// DBMaxIdleConnections is the maximum number of idle connections in the database pool.
	DBMaxIdleConnections int
	// DBConnMaxLifetime is the maximum amount of time a connection may be reused.
	DBConnMaxLifetime time.Duration

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// EncryptionSecret is the secret used to derive the 32-byte field
	// encryption key. It is normalized (padded or truncated) at key
	// construction time and must never be logged.
	EncryptionSecret string

	// OllamaURL is the base URL of the generation service.
	OllamaURL string
	// OllamaModel is the text model used for estimation and advisory prompts.
	OllamaModel string
	// OllamaVisionModel is the multimodal model used for food image analysis.
	OllamaVisionModel string
	// OllamaTimeout is the per-call timeout for text generation.
	OllamaTimeout time.Duration
	// OllamaVisionTimeout is the per-call timeout for image+text generation.
	OllamaVisionTimeout time.Duration

	// RateLimitAIEnabled indicates whether rate limiting for AI endpoints is enabled.
	RateLimitAIEnabled bool
	// RateLimitAIRequestsPerSec is the number of requests allowed per second for AI endpoints.
	RateLimitAIRequestsPerSec float64
	// RateLimitAIBurst is the burst size for AI endpoint rate limiting.
	RateLimitAIBurst int

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins for CORS.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Server configuration
		ServerHost: env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort: env.GetInt("SERVER_PORT", 8080),

		// Database configuration
		DBConnectionString: env.GetString(
			"DB_CONNECTION_STRING",
			"user:password@tcp(localhost:3306)/lifetrack?parseTime=true",
		),
		DBMaxOpenConnections: env.GetInt("DB_MAX_OPEN_CONNECTIONS", 25),
		DBMaxIdleConnections: env.GetInt("DB_MAX_IDLE_CONNECTIONS", 5),
		DBConnMaxLifetime:    env.GetDuration("DB_CONN_MAX_LIFETIME", 5, time.Minute),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Field encryption
		EncryptionSecret: env.GetString("ENCRYPTION_KEY", "0123456789abcdef0123456789abcdef"),

		// Generation service
		OllamaURL:           env.GetString("OLLAMA_URL", "http://localhost:11434"),
		OllamaModel:         env.GetString("OLLAMA_MODEL", "llama3"),
		OllamaVisionModel:   env.GetString("OLLAMA_VISION_MODEL", "llava"),
		OllamaTimeout:       env.GetDuration("OLLAMA_TIMEOUT_SECONDS", 60, time.Second),
		OllamaVisionTimeout: env.GetDuration("OLLAMA_VISION_TIMEOUT_SECONDS", 90, time.Second),

		// Rate Limiting (AI endpoints issue expensive generation calls)
		RateLimitAIEnabled:        env.GetBool("RATE_LIMIT_AI_ENABLED", true),
		RateLimitAIRequestsPerSec: env.GetFloat64("RATE_LIMIT_AI_REQUESTS_PER_SEC", 2.0),
		RateLimitAIBurst:          env.GetInt("RATE_LIMIT_AI_BURST", 5),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "lifetrack"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8081),
	}
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	switch c.LogLevel {
	case "debug":
		return "debug"
	case "info", "warn", "error":
		return "release"
	default:
		return "release"
	}
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	// Search for .env file recursively up the directory tree
	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// .env file found, load it
			_ = godotenv.Load(envPath)
			return
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}
}
