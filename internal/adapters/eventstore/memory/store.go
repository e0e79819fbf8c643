// Package memory provides an in-process event store. Streams are kept as
// encoded records, so every Load hands out freshly decoded events.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/eventsourced-catalog/internal/adapters/eventstore/codec"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/domain"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/domain/aggregate"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/ports"
)

// Compile-time check that Store implements ports.EventStore.
var _ ports.EventStore = (*Store)(nil)

// Store is an event store held in memory. It is safe for concurrent use.
type Store struct {
	registry *codec.Registry

	mu      sync.RWMutex
	streams map[uuid.UUID][]codec.Record
}

// New creates an empty store decoding with registry.
func New(registry *codec.Registry) *Store {
	return &Store{
		registry: registry,
		streams:  make(map[uuid.UUID][]codec.Record),
	}
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "eventstore" }

// HealthCheck implements ports.HealthChecker. The in-memory store is always
// healthy while the context is live.
func (s *Store) HealthCheck(ctx context.Context) error {
	return ctx.Err()
}

// Load implements ports.EventStore.
func (s *Store) Load(ctx context.Context, aggregateID uuid.UUID) ([]aggregate.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	records := slices.Clone(s.streams[aggregateID])
	s.mu.RUnlock()

	return s.registry.DecodeStream(records)
}

// Append implements ports.EventStore.
func (s *Store) Append(ctx context.Context, aggregateID uuid.UUID, expectedSeq uint64, events []aggregate.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}
	records, err := s.registry.EncodeStream(aggregateID, expectedSeq, events)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stream := s.streams[aggregateID]
	if current := lastSequence(stream); current != expectedSeq {
		return fmt.Errorf("stream %s is at sequence %d, expected %d: %w",
			aggregateID, current, expectedSeq, domain.ErrConflict)
	}
	s.streams[aggregateID] = append(stream, records...)
	return nil
}

func lastSequence(stream []codec.Record) uint64 {
	if len(stream) == 0 {
		return 0
	}
	return stream[len(stream)-1].Sequence
}
