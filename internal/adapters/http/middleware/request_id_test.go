package middleware_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/eventsourced-catalog/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/platform/config"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/platform/httpclient"
)

// captureRequestID runs one request through RequestID and returns the id
// the handler saw and the id echoed in the response.
func captureRequestID(t *testing.T, header string) (seen, echoed string) {
	t.Helper()

	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = middleware.RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/items", http.NoBody)
	if header != "" {
		req.Header.Set("X-Request-ID", header)
	}
	handler.ServeHTTP(rec, req)

	return seen, rec.Header().Get("X-Request-ID")
}

func TestRequestID_AcceptsClientID(t *testing.T) {
	t.Parallel()

	seen, echoed := captureRequestID(t, "incoming-123")

	assert.Equal(t, "incoming-123", seen)
	assert.Equal(t, "incoming-123", echoed)
}

func TestRequestID_GeneratesWhenMissingOrInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing", header: ""},
		{name: "oversized", header: strings.Repeat("a", 200)},
		{name: "contains space", header: "req 1"},
		{name: "contains non-ascii", header: "req-é"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			seen, echoed := captureRequestID(t, tt.header)

			id, err := uuid.Parse(seen)
			require.NoError(t, err, "id %q", seen)
			assert.Equal(t, uuid.Version(4), id.Version())
			assert.Equal(t, seen, echoed)
		})
	}
}

func TestRequestID_UniqueAcrossRequests(t *testing.T) {
	t.Parallel()

	ids := make(map[string]struct{})
	for range 50 {
		seen, _ := captureRequestID(t, "")
		ids[seen] = struct{}{}
	}

	assert.Len(t, ids, 50)
}

func TestRequestIDFromContext_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, middleware.RequestIDFromContext(context.Background()))
}

func TestRequestID_ForwardedToOutboundCalls(t *testing.T) {
	t.Parallel()

	var forwarded string
	hub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		forwarded = r.Header.Get("X-Request-ID")
		w.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(hub.Close)

	client := httpclient.New(&config.ClientConfig{
		BaseURL: hub.URL,
		Timeout: time.Second,
		Retry:   config.RetryConfig{MaxAttempts: 1},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures: 5, Timeout: time.Second, HalfOpenLimit: 1,
		},
	}, "catalog-hub", nil, slog.New(slog.DiscardHandler))

	handler := middleware.RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		out, err := http.NewRequestWithContext(r.Context(), http.MethodPost, hub.URL+"/api/v1/notifications", http.NoBody)
		require.NoError(t, err)
		resp, err := client.Do(r.Context(), out)
		require.NoError(t, err)
		_ = resp.Body.Close()
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/items", http.NoBody)
	req.Header.Set("X-Request-ID", "req-forward-1")
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "req-forward-1", forwarded)
}
