package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRequestLoggerRecordsRequests(t *testing.T) {
	metrics := NewMetrics()

	app := fiber.New()
	app.Use(RequestLogger(zap.NewNop(), metrics))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})

	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil), -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	assert.Equal(t, int64(3), metrics.RequestCount("/ping", http.MethodGet, http.StatusOK))
	assert.Equal(t, int64(0), metrics.RequestCount("/ping", http.MethodGet, http.StatusNotFound))
}

func TestErrorCount(t *testing.T) {
	metrics := NewMetrics()

	metrics.RecordError("/api/signin", http.MethodPost, "23505")
	metrics.RecordError("/api/signin", http.MethodPost, "23505")

	assert.Equal(t, int64(2), metrics.ErrorCount("/api/signin", http.MethodPost, "23505"))
	assert.Equal(t, int64(0), metrics.ErrorCount("/api/signin", http.MethodPost, "400"))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var metrics *Metrics
	metrics.RecordRequest("/ping", http.MethodGet, http.StatusOK, 0)
	metrics.RecordError("/ping", http.MethodGet, "500")
	assert.Equal(t, int64(0), metrics.RequestCount("/ping", http.MethodGet, http.StatusOK))
	assert.Equal(t, int64(0), metrics.ErrorCount("/ping", http.MethodGet, "500"))
}
