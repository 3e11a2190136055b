package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/lifetrack/internal/config"
	"github.com/allisson/lifetrack/internal/metrics"
)

func TestNewContainer(t *testing.T) {
	cfg := &config.Config{
		LogLevel:             "info",
		DBConnectionString:   "user:password@tcp(localhost:3306)/lifetrack?parseTime=true",
		DBMaxOpenConnections: 10,
		DBMaxIdleConnections: 5,
		DBConnMaxLifetime:    time.Hour,
		ServerHost:           "localhost",
		ServerPort:           8080,
	}

	container := NewContainer(cfg)

	require.NotNil(t, container)
	assert.Same(t, cfg, container.Config())
}

func TestContainerLogger(t *testing.T) {
	container := NewContainer(&config.Config{LogLevel: "debug"})

	logger := container.Logger()
	require.NotNil(t, logger)

	// Singleton: repeated calls return the same instance
	assert.Same(t, logger, container.Logger())
}

func TestContainerCodec(t *testing.T) {
	t.Run("derives the codec from the configured secret", func(t *testing.T) {
		container := NewContainer(&config.Config{
			EncryptionSecret: "0123456789abcdef0123456789abcdef",
		})

		codec, safe, err := container.Codec()
		require.NoError(t, err)
		require.NotNil(t, codec)
		require.NotNil(t, safe)

		payload, err := codec.Encrypt("450")
		require.NoError(t, err)
		assert.Equal(t, "450", safe.SafeDecrypt(payload))
	})

	t.Run("empty secret fails initialization", func(t *testing.T) {
		container := NewContainer(&config.Config{EncryptionSecret: ""})

		_, _, err := container.Codec()
		assert.Error(t, err)

		// Initialization errors are sticky
		_, _, err = container.Codec()
		assert.Error(t, err)
	})
}

func TestContainerMetrics(t *testing.T) {
	t.Run("disabled metrics yield nil provider and no-op recorder", func(t *testing.T) {
		container := NewContainer(&config.Config{MetricsEnabled: false})

		provider, err := container.MetricsProvider()
		require.NoError(t, err)
		assert.Nil(t, provider)

		bm, err := container.BusinessMetrics()
		require.NoError(t, err)
		assert.IsType(t, &metrics.NoOpBusinessMetrics{}, bm)

		server, err := container.MetricsServer()
		require.NoError(t, err)
		assert.Nil(t, server)
	})

	t.Run("enabled metrics yield a real provider", func(t *testing.T) {
		container := NewContainer(&config.Config{
			MetricsEnabled:   true,
			MetricsNamespace: "lifetrack",
			MetricsPort:      8081,
		})

		provider, err := container.MetricsProvider()
		require.NoError(t, err)
		require.NotNil(t, provider)

		bm, err := container.BusinessMetrics()
		require.NoError(t, err)
		assert.NotNil(t, bm)
	})
}
