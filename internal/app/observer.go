package app

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/eventsourced-catalog/internal/domain/aggregate"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/platform/telemetry"
)

// SourceAnnotation is the annotation key SourceStamper writes.
const SourceAnnotation = "source"

// Compile-time check that DispatchObserver implements aggregate.Observer.
var _ aggregate.Observer = (*DispatchObserver)(nil)

// DispatchObserver reports events that reached an aggregate with no handler.
// Such events are applied as no-ops, so the log line and counter are the only
// trace they leave.
type DispatchObserver struct {
	logger  *slog.Logger
	metrics *telemetry.Metrics
}

// NewDispatchObserver creates a DispatchObserver. metrics may be nil.
func NewDispatchObserver(logger *slog.Logger, metrics *telemetry.Metrics) *DispatchObserver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &DispatchObserver{logger: logger, metrics: metrics}
}

// Unhandled implements aggregate.Observer.
func (o *DispatchObserver) Unhandled(target string, evt aggregate.Event) {
	name := aggregate.EventName(evt)
	meta := evt.Meta()

	o.logger.Warn("event not handled",
		slog.String("target", target),
		slog.String("event_type", name),
		slog.String("aggregate_id", meta.AggregateID.String()),
		slog.Uint64("sequence", meta.Sequence),
	)

	if o.metrics != nil {
		// Observer carries no context, so the point has no trace linkage.
		o.metrics.EventsUnhandled.Add(context.Background(), 1, metric.WithAttributes(
			telemetry.AttrTarget.String(target),
			telemetry.AttrEventType.String(name),
		))
	}
}

// SourceStamper returns a modifier that annotates every newly raised event
// with the service it originated from.
func SourceStamper(source string) aggregate.Modifier {
	return func(evt aggregate.Event) {
		evt.Meta().Annotate(SourceAnnotation, source)
	}
}
