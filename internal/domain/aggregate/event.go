package aggregate

import (
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Event is a domain event. Concrete events are pointer types that embed
// [Metadata] (or [EntityMetadata] for entity-scoped events).
type Event interface {
	Meta() *Metadata
}

// EntityScoped is an event that also targets one owned entity by id.
type EntityScoped interface {
	Event
	TargetEntityID() uuid.UUID
}

// Metadata carries the identity and ordering of an event. Sequence,
// AggregateID and Timestamp are stamped by the owning [Root] at raise time.
type Metadata struct {
	AggregateID uuid.UUID         `json:"aggregate_id"`
	Sequence    uint64            `json:"sequence"`
	Timestamp   time.Time         `json:"timestamp"`
	Annotations map[string]string `json:"annotations,omitempty"`
}

// Meta returns m itself so that embedding types satisfy [Event].
func (m *Metadata) Meta() *Metadata {
	return m
}

// Annotate records a key/value pair alongside the event. Intended for
// modifier hooks that enrich events with provenance.
func (m *Metadata) Annotate(key, value string) {
	if m.Annotations == nil {
		m.Annotations = make(map[string]string)
	}
	m.Annotations[key] = value
}

// EntityMetadata is the metadata of an entity-scoped event.
type EntityMetadata struct {
	Metadata
	EntityID uuid.UUID `json:"entity_id"`
}

// TargetEntityID returns the id of the entity the event is routed to.
func (m *EntityMetadata) TargetEntityID() uuid.UUID {
	return m.EntityID
}

// EventName returns the name of the event's concrete type, without package
// qualifier or pointer indirection.
func EventName(evt Event) string {
	if evt == nil {
		return ""
	}
	return typeName(reflect.TypeOf(evt))
}

func typeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// isNil reports whether evt is nil or a typed nil pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
