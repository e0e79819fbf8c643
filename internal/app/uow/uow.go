// Package uow provides the unit of work that application services run each
// use case in.
//
// A UnitOfWork is an identity map over event-sourced aggregates plus a
// commit step that persists their pending events and then notifies
// publishers:
//
//	u := uow.New(ctx, store, publishers...)
//
//	// Stage 1: Load (replay) or track aggregates
//	item, err := uow.GetOrLoad(u, id, shop.Empty)
//
//	// Stage 2: Invoke domain behaviour
//	err = item.SetBasePrice(1299)
//
//	// Stage 3: Persist, commit and publish
//	err = u.Commit(ctx)
package uow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/eventsourced-catalog/internal/domain"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/domain/aggregate"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/platform/logging"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/platform/telemetry"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/ports"
)

// ErrAlreadyCommitted is returned when Track or Commit is called on a
// UnitOfWork that has already been committed.
var ErrAlreadyCommitted = errors.New("uow: unit of work already committed")

// ErrNilAggregate is returned when a nil aggregate is passed to Track.
var ErrNilAggregate = errors.New("uow: nil aggregate")

// ErrTypeMismatch is returned by GetOrLoad when the aggregate held for an id
// is not of the requested type.
var ErrTypeMismatch = errors.New("uow: tracked aggregate type mismatch")

// Aggregate is what a UnitOfWork needs from an aggregate root. Every type
// embedding aggregate.Root satisfies it.
type Aggregate interface {
	ID() uuid.UUID
	LastSequence() uint64
	PendingEvents() []aggregate.Event
	Commit()
}

// Replayable is an Aggregate that can be rebuilt from its history.
type Replayable interface {
	Aggregate
	LoadFromHistory(events ...aggregate.Event) error
}

// UnitOfWork tracks the aggregates a single use case touches. It embeds the
// context it was created with; loads run under that context.
//
// A UnitOfWork is scoped to one use case and must not be reused after
// Commit.
type UnitOfWork struct {
	context.Context

	store      ports.EventStore
	publishers []ports.EventPublisher
	metrics    *telemetry.Metrics

	mu        sync.Mutex
	loaded    map[uuid.UUID]entry
	tracked   []Aggregate
	committed bool
}

// entry stores the outcome of a load, including any error, so repeated
// lookups of the same id within a unit of work hit the store once.
type entry struct {
	agg Aggregate
	err error
}

// New creates a UnitOfWork over store. Committed events are handed to every
// publisher.
func New(ctx context.Context, store ports.EventStore, publishers ...ports.EventPublisher) *UnitOfWork {
	return &UnitOfWork{
		Context:    ctx,
		store:      store,
		publishers: publishers,
		loaded:     make(map[uuid.UUID]entry),
	}
}

// WithMetrics enables the events-raised and append-duration instruments.
func (u *UnitOfWork) WithMetrics(m *telemetry.Metrics) *UnitOfWork {
	u.metrics = m
	return u
}

// GetOrLoad returns the aggregate tracked under id, replaying it from the
// store on first use. empty constructs the zero aggregate to replay into.
//
// Both results and errors are memoized. An id with no stored events yields
// an error wrapping domain.ErrNotFound.
func GetOrLoad[T Replayable](u *UnitOfWork, id uuid.UUID, empty func() T) (T, error) {
	var zero T

	u.mu.Lock()
	e, ok := u.loaded[id]
	u.mu.Unlock()
	if ok {
		if e.err != nil {
			return zero, e.err
		}
		agg, ok := e.agg.(T)
		if !ok {
			return zero, fmt.Errorf("%w: %s holds %T, requested %T", ErrTypeMismatch, id, e.agg, zero)
		}
		return agg, nil
	}

	agg, err := load(u, id, empty)

	u.mu.Lock()
	defer u.mu.Unlock()
	if prev, ok := u.loaded[id]; ok && prev.err == nil {
		if held, ok := prev.agg.(T); ok {
			return held, nil
		}
	}
	if err != nil {
		u.loaded[id] = entry{err: err}
		return zero, err
	}
	u.loaded[id] = entry{agg: agg}
	u.tracked = append(u.tracked, agg)
	return agg, nil
}

func load[T Replayable](u *UnitOfWork, id uuid.UUID, empty func() T) (T, error) {
	var zero T

	events, err := u.store.Load(u.Context, id)
	if err != nil {
		return zero, fmt.Errorf("loading %s: %w", id, err)
	}
	if len(events) == 0 {
		return zero, fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
	}

	agg := empty()
	if err := agg.LoadFromHistory(events...); err != nil {
		return zero, fmt.Errorf("replaying %s: %w", id, err)
	}
	return agg, nil
}

// Track adds a newly created aggregate to the unit of work so its pending
// events are persisted on Commit. Tracking the same instance twice is a
// no-op; tracking a different instance under an id already held is a
// conflict.
func (u *UnitOfWork) Track(agg Aggregate) error {
	if agg == nil {
		return ErrNilAggregate
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if u.committed {
		return ErrAlreadyCommitted
	}
	if e, ok := u.loaded[agg.ID()]; ok {
		if e.agg == agg {
			return nil
		}
		return fmt.Errorf("aggregate %s already tracked: %w", agg.ID(), domain.ErrConflict)
	}
	u.loaded[agg.ID()] = entry{agg: agg}
	u.tracked = append(u.tracked, agg)
	return nil
}

// Commit appends the pending events of every tracked aggregate in tracking
// order, marks them committed, and then hands all committed events to the
// publishers concurrently.
//
// The expected head of each stream is LastSequence minus the number of
// pending events, so a concurrent writer surfaces as domain.ErrConflict from
// the store. An append failure stops the commit; aggregates appended before
// it stay committed. Publish failures are logged and never returned.
//
// Returns ErrAlreadyCommitted if called more than once.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	u.mu.Lock()
	if u.committed {
		u.mu.Unlock()
		return ErrAlreadyCommitted
	}
	u.committed = true
	tracked := u.tracked
	u.mu.Unlock()

	logger := logging.FromContext(ctx)

	var published []aggregate.Event
	for _, agg := range tracked {
		pending := agg.PendingEvents()
		if len(pending) == 0 {
			continue
		}

		if err := u.append(ctx, agg, pending); err != nil {
			logger.ErrorContext(ctx, "failed to append events",
				slog.String("operation", "UnitOfWork.Commit"),
				slog.String("aggregate_id", agg.ID().String()),
				slog.Int("pending", len(pending)),
				slog.Any("error", err),
			)
			return fmt.Errorf("appending events for %s: %w", agg.ID(), err)
		}

		agg.Commit()
		u.countRaised(ctx, pending)
		published = append(published, pending...)
	}

	u.publish(ctx, published)
	return nil
}

func (u *UnitOfWork) append(ctx context.Context, agg Aggregate, pending []aggregate.Event) error {
	expected := agg.LastSequence() - uint64(len(pending))

	start := time.Now()
	err := u.store.Append(ctx, agg.ID(), expected, pending)
	if u.metrics != nil {
		result := "success"
		if err != nil {
			result = "error"
		}
		u.metrics.AppendDuration.Record(ctx, time.Since(start).Seconds(),
			metric.WithAttributes(telemetry.AttrResult.String(result)))
	}
	return err
}

func (u *UnitOfWork) countRaised(ctx context.Context, events []aggregate.Event) {
	if u.metrics == nil {
		return
	}
	for _, evt := range events {
		u.metrics.EventsRaised.Add(ctx, 1,
			metric.WithAttributes(telemetry.AttrEventType.String(aggregate.EventName(evt))))
	}
}

// publish fans committed events out to every publisher and waits for all of
// them. Each publisher sees the full batch in commit order.
func (u *UnitOfWork) publish(ctx context.Context, events []aggregate.Event) {
	if len(events) == 0 || len(u.publishers) == 0 {
		return
	}

	logger := logging.FromContext(ctx)

	var g errgroup.Group
	for _, p := range u.publishers {
		g.Go(func() error {
			if err := p.Publish(ctx, events); err != nil {
				logger.WarnContext(ctx, "failed to publish committed events",
					slog.String("operation", "UnitOfWork.Commit"),
					slog.String("publisher", publisherName(p)),
					slog.Int("events", len(events)),
					slog.Any("error", err),
				)
			}
			return nil
		})
	}
	_ = g.Wait()
}

func publisherName(p ports.EventPublisher) string {
	if n, ok := p.(interface{ Name() string }); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", p)
}
