package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/eventsourced-catalog/internal/domain/aggregate"
)

// EventStore persists the event streams of aggregates.
// Implemented by the eventstore adapters; called by the unit of work.
type EventStore interface {
	HealthChecker

	// Load returns the stream of the aggregate in ascending sequence order.
	// An unknown aggregate yields an empty stream and a nil error.
	Load(ctx context.Context, aggregateID uuid.UUID) ([]aggregate.Event, error)

	// Append adds events to the stream. expectedSeq is the last sequence the
	// caller observed; if the stored stream has moved on, Append returns an
	// error wrapping domain.ErrConflict and stores nothing.
	Append(ctx context.Context, aggregateID uuid.UUID, expectedSeq uint64, events []aggregate.Event) error
}

// EventPublisher announces committed events to the outside world.
// Publishing happens after the events are durable; failures do not undo the
// commit.
type EventPublisher interface {
	Publish(ctx context.Context, events []aggregate.Event) error
}
