package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/eventsourced-catalog/internal/platform/telemetry"
)

// Chain composes multiple middleware into a single middleware. The first
// argument becomes the outermost middleware (executed first on request,
// last on response):
//
//	Chain(RequestID(), Recovery(logger))(handler)
//
// is equivalent to:
//
//	RequestID()(Recovery(logger)(handler))
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}

// Stack returns the inbound pipeline the catalog API runs behind. RequestID
// sits outside Recovery so panic logs carry the request id. A zero timeout
// leaves requests unbounded.
func Stack(logger *slog.Logger, metrics *telemetry.Metrics, timeout time.Duration) []func(http.Handler) http.Handler {
	stack := []func(http.Handler) http.Handler{
		RequestID(),
		Recovery(logger),
		OpenTelemetry(metrics),
		Logging(logger),
	}
	if timeout > 0 {
		stack = append(stack, Timeout(timeout))
	}
	return stack
}
