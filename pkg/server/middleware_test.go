package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func testServer(limiter *rate.Limiter) *Server {
	return &Server{
		config:      NewConfig(),
		rateLimiter: limiter,
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	s := testServer(rate.NewLimiter(100, 200))
	valid := uuid.New().String()

	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "generates when missing"},
		{name: "keeps valid uuid", header: valid, wantSame: true},
		{name: "replaces invalid", header: "not-a-uuid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured string
			handler := s.requestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {
				captured = RequestID(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/v1/search", nil)
			if tt.header != "" {
				req.Header.Set("X-Request-Id", tt.header)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)

			_, err := uuid.Parse(captured)
			require.NoError(t, err)
			assert.Equal(t, captured, rec.Header().Get("X-Request-Id"))
			if tt.wantSame {
				assert.Equal(t, tt.header, captured)
			} else {
				assert.NotEqual(t, tt.header, captured)
			}
		})
	}
}

func TestVersionMiddleware(t *testing.T) {
	s := testServer(rate.NewLimiter(100, 200))

	var captured string
	handler := s.versionMiddleware(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = r.Context().Value(contextKeyAPIVersion).(string)
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/v1/search", nil))

	assert.Equal(t, DefaultAPIVersion, captured)
	assert.Equal(t, DefaultAPIVersion, rec.Header().Get("X-API-Version"))
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("allows and sets headers", func(t *testing.T) {
		s := testServer(rate.NewLimiter(100, 200))
		called := false
		handler := s.rateLimitMiddleware(func(w http.ResponseWriter, _ *http.Request) {
			called = true
			w.WriteHeader(http.StatusOK)
		})

		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodGet, "/v1/search", nil))

		assert.True(t, called)
		for _, h := range []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"} {
			assert.NotEmpty(t, rec.Header().Get(h), h)
		}
	})

	t.Run("rejects when exhausted", func(t *testing.T) {
		s := testServer(rate.NewLimiter(0, 0))
		called := false
		handler := s.rateLimitMiddleware(func(w http.ResponseWriter, _ *http.Request) {
			called = true
		})

		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodGet, "/v1/search", nil))

		assert.False(t, called)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("Retry-After"))
		assert.Contains(t, rec.Body.String(), "RATE_LIMIT_EXCEEDED")
	})
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	s := testServer(rate.NewLimiter(100, 200))

	handler := s.panicRecoveryMiddleware(func(_ http.ResponseWriter, _ *http.Request) {
		panic("kaboom")
	})

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		handler(rec, httptest.NewRequest(http.MethodGet, "/v1/search", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL")
}

func TestLoggingMiddleware_PassesStatus(t *testing.T) {
	s := testServer(rate.NewLimiter(100, 200))

	for _, status := range []int{http.StatusOK, http.StatusBadRequest, http.StatusBadGateway} {
		handler := s.loggingMiddleware(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
		})
		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodGet, "/v1/search", nil))
		assert.Equal(t, status, rec.Code)
	}
}

func TestMiddlewareChain(t *testing.T) {
	s := testServer(rate.NewLimiter(100, 200))

	var hasRequestID, hasAPIVersion bool
	handler := s.withMiddleware("/v1/search", func(w http.ResponseWriter, r *http.Request) {
		hasRequestID = RequestID(r.Context()) != ""
		hasAPIVersion = r.Context().Value(contextKeyAPIVersion) != nil
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/v1/search", nil))

	assert.True(t, hasRequestID)
	assert.True(t, hasAPIVersion)
	for _, h := range []string{"X-Request-Id", "X-RateLimit-Limit", "X-API-Version"} {
		assert.NotEmpty(t, rec.Header().Get(h), h)
	}
}

func TestRecorder(t *testing.T) {
	t.Run("first header wins and bytes are counted", func(t *testing.T) {
		w := httptest.NewRecorder()
		rec := record(w)

		rec.WriteHeader(http.StatusNotFound)
		rec.WriteHeader(http.StatusOK)
		_, err := rec.Write([]byte("missing"))
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, rec.status)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, len("missing"), rec.bytes)
	})

	t.Run("write implies 200", func(t *testing.T) {
		rec := record(httptest.NewRecorder())
		_, err := rec.Write([]byte("{}"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.status)
	})

	t.Run("reuses an outer recorder", func(t *testing.T) {
		outer := record(httptest.NewRecorder())
		assert.Same(t, outer, record(outer))
	})

	t.Run("reports the handler result", func(t *testing.T) {
		rec := record(httptest.NewRecorder())
		assert.Empty(t, rec.result())
		rec.Header().Set(HeaderResultStatus, "no_results")
		assert.Equal(t, "no_results", rec.result())
	})
}

func TestMetricsMiddleware_LabelsByRoute(t *testing.T) {
	s := testServer(rate.NewLimiter(100, 200))

	handler := s.metricsMiddleware("/v1/search")(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set(HeaderResultStatus, "no_results")
		w.WriteHeader(http.StatusOK)
	})

	requests := counterValue(t, httpRequestsTotal.WithLabelValues(http.MethodGet, "/v1/search", "200"))
	results := counterValue(t, httpResultsTotal.WithLabelValues("/v1/search", "no_results"))

	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/search?ingredients=egg", nil))

	assert.InDelta(t, requests+1, counterValue(t, httpRequestsTotal.WithLabelValues(http.MethodGet, "/v1/search", "200")), 0)
	assert.InDelta(t, results+1, counterValue(t, httpResultsTotal.WithLabelValues("/v1/search", "no_results")), 0)
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}
