// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/eventsourced-catalog/internal/adapters/http"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/eventsourced-catalog/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/adapters/eventstore/codec"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/adapters/eventstore/memory"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/adapters/eventstore/sqlite"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/adapters/notify/redis"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/app"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/domain/aggregate"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/platform/config"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/platform/health"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/platform/httpclient"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/platform/logging"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/platform/telemetry"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Process-wide aggregate hooks: unhandled-event reporting and provenance.
	aggregate.Default.SetObserver(app.NewDispatchObserver(logger, otel.metrics))
	aggregate.SetModifier(app.SourceStamper(cfg.Events.Source))

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	store := do.MustInvoke[eventStore](injector)
	registry.Register(store)
	publishers := do.MustInvoke[[]ports.EventPublisher](injector)
	for _, p := range publishers {
		if hc, ok := p.(ports.HealthChecker); ok {
			registry.Register(hc)
		}
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Release the store and publisher connections once no requests remain.
	closeAll(logger, append([]any{store}, toAny(publishers)...)...)

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

// eventStore is the store as main sees it: appendable, loadable, and
// reported on the readiness endpoint.
type eventStore interface {
	ports.EventStore
	ports.HealthChecker
}

func openStore(cfg config.StoreConfig, registry *codec.Registry) (eventStore, error) {
	switch cfg.Driver {
	case config.StoreDriverSQLite:
		store, err := sqlite.Open(cfg.SQLitePath, registry)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite event store: %w", err)
		}
		return store, nil
	default:
		return memory.New(registry), nil
	}
}

func closeAll(logger *slog.Logger, resources ...any) {
	for _, r := range resources {
		c, ok := r.(io.Closer)
		if !ok {
			continue
		}
		if err := c.Close(); err != nil {
			logger.Error("close error", slog.String("resource", fmt.Sprintf("%T", r)), slog.Any("error", err))
		}
	}
}

func toAny[T any](items []T) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*codec.Registry, error) {
		return codec.NewShopRegistry()
	})

	do.Provide(injector, func(i do.Injector) (eventStore, error) {
		registry := do.MustInvoke[*codec.Registry](i)
		return openStore(cfg.Store, registry)
	})

	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Notify.Hub.Client, "catalog-hub", metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) ([]ports.EventPublisher, error) {
		registry := do.MustInvoke[*codec.Registry](i)

		var publishers []ports.EventPublisher
		if cfg.Notify.Redis.Enabled {
			client := redis.NewClient(cfg.Notify.Redis.Addr, cfg.Notify.Redis.Password)
			publishers = append(publishers, redis.NewPublisher(client, cfg.Notify.Redis.Channel, registry, logger))
		}
		if cfg.Notify.Hub.Enabled {
			client := do.MustInvoke[*httpclient.Client](i)
			publishers = append(publishers, acl.NewHubClient(client, registry, logger))
		}
		return publishers, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.CatalogService, error) {
		store := do.MustInvoke[eventStore](i)
		publishers := do.MustInvoke[[]ports.EventPublisher](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewCatalogService(store, publishers, metrics, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.CatalogHandler, error) {
		svc := do.MustInvoke[ports.CatalogService](i)
		return handlers.NewCatalogHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry, "eventstore"), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		catalogH := do.MustInvoke[*handlers.CatalogHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(catalogH, healthH,
			middleware.Stack(logger, metrics, cfg.Server.WriteTimeout)...,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
