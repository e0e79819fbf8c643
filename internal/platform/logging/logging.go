// Package logging builds the service's slog loggers and carries them through
// context.Context.
//
//	logger := logging.New("info", "json", os.Stderr)
//	ctx = logging.WithLogger(ctx, logger)
//
// Request middleware installs a logger carrying request_id; deeper layers
// add their own fields and read it back:
//
//	ctx = logging.WithAttrs(ctx, slog.String("aggregate_id", id.String()))
//	logging.FromContext(ctx).ErrorContext(ctx, "failed to append events",
//	    slog.String("operation", "UnitOfWork.Commit"),
//	    slog.Any("error", err),
//	)
//
// Error logs name the operation and the aggregate involved, and pass the
// error itself with slog.Any so the whole chain is kept. Every logger from
// New scrubs credentials before they are written.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// contextKey is the unexported key type for storing loggers in context.
type contextKey struct{}

// New returns a logger writing to w. level is one of debug, info, warn or
// error, case-insensitive, with anything else meaning info. format "text"
// selects the text handler; any other value selects JSON. Source locations
// are included at debug level.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger returns a new context with the given logger stored in it.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext extracts a *slog.Logger from the context.
// If no logger is stored, it returns slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// WithAttrs returns a context whose logger carries the given attributes in
// addition to whatever the context logger already has.
func WithAttrs(ctx context.Context, args ...any) context.Context {
	if len(args) == 0 {
		return ctx
	}
	return WithLogger(ctx, FromContext(ctx).With(args...))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
