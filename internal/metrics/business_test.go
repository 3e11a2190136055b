package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertMetricLine checks that the Prometheus output contains a metric with
// the given name, partial label pattern, and value. Uses a regex to tolerate
// the extra OTel scope labels injected by the Prometheus exporter.
func assertMetricLine(t *testing.T, output, name, labels, value string) {
	t.Helper()
	pattern := name + `\{[^}]*` + labels + `[^}]*\} ` + value
	assert.Regexp(t, pattern, output)
}

func scrape(t *testing.T, provider *Provider) string {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	provider.Handler().ServeHTTP(w, req)
	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	return string(body)
}

func TestNewBusinessMetrics(t *testing.T) {
	provider, err := NewProvider("lifetrack")
	require.NoError(t, err)

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "lifetrack")

	require.NoError(t, err)
	assert.NotNil(t, bm)
}

func TestBusinessMetrics_RecordOperation(t *testing.T) {
	provider, err := NewProvider("lifetrack")
	require.NoError(t, err)

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "lifetrack")
	require.NoError(t, err)

	bm.RecordOperation(context.Background(), "ai", "activity_estimate", "success")
	bm.RecordOperation(context.Background(), "ai", "activity_estimate", "fallback")
	bm.RecordOperation(context.Background(), "ai", "activity_estimate", "fallback")

	output := scrape(t, provider)
	assertMetricLine(t, output, "lifetrack_operations_total", `status="success"`, "1")
	assertMetricLine(t, output, "lifetrack_operations_total", `status="fallback"`, "2")
}

func TestBusinessMetrics_RecordDuration(t *testing.T) {
	provider, err := NewProvider("lifetrack")
	require.NoError(t, err)

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "lifetrack")
	require.NoError(t, err)

	bm.RecordDuration(context.Background(), "ai", "weekly_insight", 250*time.Millisecond, "success")

	output := scrape(t, provider)
	assert.Contains(t, output, "lifetrack_operation_duration_seconds")
}

func TestNoOpBusinessMetrics(t *testing.T) {
	bm := NewNoOpBusinessMetrics()

	// Should not panic
	bm.RecordOperation(context.Background(), "ai", "food_estimate", "error")
	bm.RecordDuration(context.Background(), "ai", "food_estimate", time.Second, "error")
}
