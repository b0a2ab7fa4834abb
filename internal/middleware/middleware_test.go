package api_middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/svcbase/item-service/internal/metrics"
	api_middleware "github.com/svcbase/item-service/internal/middleware"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	handler := api_middleware.RateLimitMiddleware(okHandler())

	limited := false
	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		r := httptest.NewRequest("POST", "/api/v1/items", nil)
		handler.ServeHTTP(w, r)
		if w.Code == http.StatusTooManyRequests {
			limited = true
			break
		}
		assert.Equal(t, http.StatusOK, w.Code)
	}
	assert.True(t, limited, "burst of 50 requests should trip the limiter")
}

func TestRequestIDMiddlewareGeneratesID(t *testing.T) {
	handler := api_middleware.RequestIDMiddleware(okHandler())

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/api/v1/items", nil)
	handler.ServeHTTP(w, r)

	id := w.Header().Get(api_middleware.RequestIDHeader)
	require.NotEmpty(t, id)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestRequestIDMiddlewarePreservesUpstreamID(t *testing.T) {
	handler := api_middleware.RequestIDMiddleware(okHandler())

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/api/v1/items", nil)
	r.Header.Set(api_middleware.RequestIDHeader, "upstream-id")
	handler.ServeHTTP(w, r)

	assert.Equal(t, "upstream-id", w.Header().Get(api_middleware.RequestIDHeader))
}

func TestMetricsMiddlewareRecordsRoutePattern(t *testing.T) {
	m := metrics.New()

	router := chi.NewRouter()
	router.Use(api_middleware.MetricsMiddleware(m))
	router.Get("/api/v1/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/api/v1/items/7", nil)
	router.ServeHTTP(w, r)

	metricsRec := httptest.NewRecorder()
	m.Handler().ServeHTTP(metricsRec, httptest.NewRequest("GET", "/metrics", nil))

	body := metricsRec.Body.String()
	assert.True(t, strings.Contains(body, `route="/api/v1/items/{id}"`), "expected route pattern label, got:\n%s", body)
	assert.Contains(t, body, `status="404"`)
}
