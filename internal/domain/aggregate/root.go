package aggregate

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"time"

	"github.com/google/uuid"
)

// now is the clock used to stamp raised events.
var now = time.Now

// Root is the event-sourcing state machine embedded by every aggregate.
// The zero value is empty (sequence 0, nothing pending) but unbound; call
// Init with the embedding aggregate before raising or replaying events.
type Root struct {
	owner      any
	id         uuid.UUID
	last       uint64
	pending    []Event
	entities   []Entity
	dispatcher *Dispatcher
}

// Init binds the concrete aggregate that events are dispatched to.
func (r *Root) Init(owner any) {
	r.owner = owner
}

// UseDispatcher overrides the process-wide [Default] dispatcher for this
// aggregate and its entities.
func (r *Root) UseDispatcher(d *Dispatcher) {
	r.dispatcher = d
}

// ID returns the aggregate id.
func (r *Root) ID() uuid.UUID {
	return r.id
}

// SetID assigns the aggregate id. Domain constructors call it before raising
// the creation event so that the event is stamped with it.
func (r *Root) SetID(id uuid.UUID) {
	r.id = id
}

// LastSequence returns the sequence number of the last applied event.
func (r *Root) LastSequence() uint64 {
	return r.last
}

// LoadFromHistory applies previously committed events. The events are
// ordered by sequence before being applied; events sharing a sequence keep
// their input order. Last sequence advances with every applied event, so
// after a handler error it names the last event that was applied. Events are
// neither queued nor re-stamped. An empty call is a no-op.
//
// When the aggregate id is unset it is taken from the history.
func (r *Root) LoadFromHistory(events ...Event) error {
	if len(events) == 0 {
		return nil
	}
	if r.owner == nil {
		return ErrUnbound
	}
	for i, evt := range events {
		if isNil(evt) {
			return fmt.Errorf("%w at index %d", ErrNilEvent, i)
		}
	}

	ordered := slices.Clone(events)
	slices.SortStableFunc(ordered, func(a, b Event) int {
		return cmp.Compare(a.Meta().Sequence, b.Meta().Sequence)
	})

	if r.id == uuid.Nil {
		r.id = ordered[0].Meta().AggregateID
	}

	for _, evt := range ordered {
		if err := r.apply(evt); err != nil {
			return err
		}
		r.last = evt.Meta().Sequence
	}
	return nil
}

// Raise sequences evt, applies it to the aggregate and its matching
// entities, stamps it with the aggregate id and the current UTC time, passes
// it through the process-wide [Modifier] and queues it.
//
// If a handler fails the sequence is not consumed and nothing is queued.
func (r *Root) Raise(evt Event) error {
	if isNil(evt) {
		return ErrNilEvent
	}
	if r.owner == nil {
		return ErrUnbound
	}

	meta := evt.Meta()
	seq := r.last + 1
	meta.Sequence = seq

	if err := r.apply(evt); err != nil {
		meta.Sequence = 0
		return err
	}
	r.last = seq

	meta.AggregateID = r.id
	meta.Timestamp = now().UTC()
	stamped := *meta

	modify(evt)

	meta = evt.Meta()
	meta.Sequence = stamped.Sequence
	meta.AggregateID = stamped.AggregateID
	meta.Timestamp = stamped.Timestamp

	r.pending = append(r.pending, evt)
	return nil
}

// PendingEvents returns a snapshot of the events raised since the last
// commit, in the order they were raised.
func (r *Root) PendingEvents() []Event {
	return slices.Clone(r.pending)
}

// Commit clears the pending queue and commits every owned entity. Call it
// once the pending events have been persisted.
func (r *Root) Commit() {
	r.pending = nil
	for _, e := range r.entities {
		e.Commit()
	}
}

// RegisterEntity takes ownership of e. From then on e receives every
// entity-scoped event whose target id equals e's id.
func (r *Root) RegisterEntity(e Entity) error {
	if isNil(e) {
		return ErrNilEntity
	}
	e.attach(r)
	r.entities = append(r.entities, e)
	return nil
}

// Entities returns the owned entities in registration order.
func (r *Root) Entities() []Entity {
	return slices.Clone(r.entities)
}

func (r *Root) dispatch() *Dispatcher {
	if r.dispatcher != nil {
		return r.dispatcher
	}
	return Default
}

// apply runs the dispatch algorithm for evt on the owner and then on every
// entity it targets.
func (r *Root) apply(evt Event) error {
	d := r.dispatch()

	handled, err := d.apply(r.owner, evt)
	if err != nil {
		return applyError(evt, err)
	}

	if scoped, ok := evt.(EntityScoped); ok {
		target := scoped.TargetEntityID()
		for _, e := range r.entities {
			if e.EntityID() != target {
				continue
			}
			ok, err := d.apply(e, evt)
			if err != nil {
				return applyError(evt, err)
			}
			handled = handled || ok
		}
	}

	if !handled {
		d.observer().Unhandled(typeName(reflect.TypeOf(r.owner)), evt)
	}
	return nil
}

func applyError(evt Event, err error) error {
	return fmt.Errorf("applying %s (sequence %d): %w", EventName(evt), evt.Meta().Sequence, err)
}
