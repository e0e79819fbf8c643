package aggregate

import "github.com/google/uuid"

// Entity is an identity-bearing object owned by an aggregate. Implement it
// by embedding [EntityBase]; the unexported method keeps other
// implementations out.
type Entity interface {
	EntityID() uuid.UUID
	ApplyHistoricalEvent(evt Event) error
	Commit()

	attach(root *Root)
}

// EntityBase is embedded by concrete entities. Like [Root], bind the
// embedding entity with Init before use.
type EntityBase struct {
	owner any
	id    uuid.UUID
	root  *Root
}

// Init binds the concrete entity that events are dispatched to and assigns
// its id.
func (e *EntityBase) Init(owner any, id uuid.UUID) {
	e.owner = owner
	e.id = id
}

// EntityID returns the entity id.
func (e *EntityBase) EntityID() uuid.UUID {
	return e.id
}

// AggregateID returns the id of the owning aggregate, or uuid.Nil while the
// entity is not registered.
func (e *EntityBase) AggregateID() uuid.UUID {
	if e.root == nil {
		return uuid.Nil
	}
	return e.root.ID()
}

// ApplyHistoricalEvent runs the dispatch algorithm for evt against the
// entity's own type. Only the entity's state changes.
func (e *EntityBase) ApplyHistoricalEvent(evt Event) error {
	if isNil(evt) {
		return ErrNilEvent
	}
	if e.owner == nil {
		return ErrUnbound
	}
	d := Default
	if e.root != nil {
		d = e.root.dispatch()
	}
	return d.Dispatch(e.owner, evt)
}

// Commit is a no-op: entities never queue events of their own. It is the
// hook the owning root cascades to on commit.
func (e *EntityBase) Commit() {}

func (e *EntityBase) attach(root *Root) {
	e.root = root
}
