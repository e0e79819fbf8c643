// Package notify defines the wire form of committed-event notifications
// shared by the outbound publishers.
package notify

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/eventsourced-catalog/internal/adapters/eventstore/codec"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/domain/aggregate"
)

// Notification describes one committed event to subscribers outside the
// process.
type Notification struct {
	AggregateID string            `json:"aggregate_id"`
	Sequence    uint64            `json:"sequence"`
	Type        string            `json:"type"`
	EntityID    string            `json:"entity_id,omitempty"`
	OccurredAt  time.Time         `json:"occurred_at"`
	Annotations map[string]string `json:"annotations,omitempty"`
	Payload     json.RawMessage   `json:"payload"`
}

// Build encodes events through the registry and converts each record into
// a Notification, preserving order.
func Build(reg *codec.Registry, events []aggregate.Event) ([]Notification, error) {
	out := make([]Notification, 0, len(events))
	for _, evt := range events {
		rec, err := reg.Encode(evt)
		if err != nil {
			return nil, fmt.Errorf("encoding notification: %w", err)
		}
		n := Notification{
			AggregateID: rec.AggregateID.String(),
			Sequence:    rec.Sequence,
			Type:        rec.Type,
			OccurredAt:  rec.Timestamp.UTC(),
			Annotations: evt.Meta().Annotations,
			Payload:     rec.Payload,
		}
		if rec.EntityID != uuid.Nil {
			n.EntityID = rec.EntityID.String()
		}
		out = append(out, n)
	}
	return out, nil
}
