package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/eventsourced-catalog/internal/platform/logging"
)

// Logging returns middleware that logs each request twice, on arrival and on
// completion. The child logger it derives carries the request ID and is
// stored in the request context, so services and the unit of work log under
// it.
//
// Completion is logged at Error for 5xx, Warn for 4xx and Info otherwise.
// Request headers are logged at Debug with credentials redacted.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			child := logger.With(slog.String("request_id", RequestIDFromContext(r.Context())))
			ctx := logging.WithLogger(r.Context(), child)
			route := []any{slog.String("method", r.Method), slog.String("path", r.URL.Path)}

			child.InfoContext(ctx, "request started", route...)
			logHeaders(ctx, child, r.Header)

			rw := record(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			child.Log(ctx, completionLevel(rw.status), "request completed", append(route,
				slog.Int("status", rw.status),
				slog.Int64("bytes", rw.bytes),
				slog.Duration("duration", time.Since(start)),
			)...)
		})
	}
}

func logHeaders(ctx context.Context, logger *slog.Logger, h http.Header) {
	if !logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	attrs := RedactHeaders(h)
	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}
	logger.DebugContext(ctx, "request headers", slog.Group("headers", args...))
}

func completionLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
