// Package codec maps aggregate events to storable records and back.
//
// Events are stored as a JSON payload plus the metadata columns every store
// indexes on. A Registry knows how to construct each concrete event type by
// name; decoding an unregistered name fails with ErrUnknownEvent.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/eventsourced-catalog/internal/domain"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/domain/aggregate"
)

var (
	// ErrUnknownEvent is returned when a record names an unregistered type.
	ErrUnknownEvent = errors.New("codec: unknown event type")

	// ErrDuplicateType is returned when a type name is registered twice.
	ErrDuplicateType = errors.New("codec: event type already registered")
)

// Record is the stored form of one event.
type Record struct {
	AggregateID uuid.UUID
	Sequence    uint64
	Type        string
	EntityID    uuid.UUID
	Timestamp   time.Time
	Payload     json.RawMessage
}

// Factory returns a new zero value of one concrete event type.
type Factory func() aggregate.Event

// Registry maps type names to factories. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// RegisterFactory binds name to f.
func (r *Registry) RegisterFactory(name string, f Factory) error {
	if name == "" || f == nil {
		return errors.New("codec: name and factory are required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateType, name)
	}
	r.factories[name] = f
	return nil
}

// Register binds the event type *T under its type name, the same name
// aggregate.EventName reports for its values.
func Register[T any, E interface {
	*T
	aggregate.Event
}](r *Registry) error {
	name := reflect.TypeFor[T]().Name()
	return r.RegisterFactory(name, func() aggregate.Event {
		return E(new(T))
	})
}

// Types returns the number of registered types.
func (r *Registry) Types() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.factories)
}

// Encode converts evt into a record.
func (r *Registry) Encode(evt aggregate.Event) (Record, error) {
	if evt == nil {
		return Record{}, aggregate.ErrNilEvent
	}
	name := aggregate.EventName(evt)
	r.mu.RLock()
	_, known := r.factories[name]
	r.mu.RUnlock()
	if !known {
		return Record{}, fmt.Errorf("%w: %s", ErrUnknownEvent, name)
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		return Record{}, fmt.Errorf("encoding %s: %w", name, err)
	}
	meta := evt.Meta()
	rec := Record{
		AggregateID: meta.AggregateID,
		Sequence:    meta.Sequence,
		Type:        name,
		Timestamp:   meta.Timestamp,
		Payload:     payload,
	}
	if scoped, ok := evt.(aggregate.EntityScoped); ok {
		rec.EntityID = scoped.TargetEntityID()
	}
	return rec, nil
}

// Decode rebuilds the event stored in rec. The record columns are
// authoritative for the metadata.
func (r *Registry) Decode(rec Record) (aggregate.Event, error) {
	r.mu.RLock()
	factory, ok := r.factories[rec.Type]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEvent, rec.Type)
	}

	evt := factory()
	if err := json.Unmarshal(rec.Payload, evt); err != nil {
		return nil, fmt.Errorf("decoding %s (sequence %d): %w", rec.Type, rec.Sequence, err)
	}
	meta := evt.Meta()
	meta.AggregateID = rec.AggregateID
	meta.Sequence = rec.Sequence
	meta.Timestamp = rec.Timestamp
	return evt, nil
}

// EncodeStream encodes a batch destined for one stream and checks that it
// continues the stream: every event belongs to aggregateID and sequences run
// contiguously from expectedSeq+1.
func (r *Registry) EncodeStream(aggregateID uuid.UUID, expectedSeq uint64, events []aggregate.Event) ([]Record, error) {
	records := make([]Record, 0, len(events))
	for i, evt := range events {
		rec, err := r.Encode(evt)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		if rec.AggregateID != aggregateID {
			return nil, &domain.ValidationError{Fields: map[string]string{
				"aggregate_id": fmt.Sprintf("event %d belongs to %s, not %s", i, rec.AggregateID, aggregateID),
			}}
		}
		if want := expectedSeq + uint64(i) + 1; rec.Sequence != want {
			return nil, &domain.ValidationError{Fields: map[string]string{
				"sequence": fmt.Sprintf("event %d has sequence %d, want %d", i, rec.Sequence, want),
			}}
		}
		records = append(records, rec)
	}
	return records, nil
}

// DecodeStream decodes records in order.
func (r *Registry) DecodeStream(records []Record) ([]aggregate.Event, error) {
	events := make([]aggregate.Event, 0, len(records))
	for _, rec := range records {
		evt, err := r.Decode(rec)
		if err != nil {
			return nil, err
		}
		events = append(events, evt)
	}
	return events, nil
}
