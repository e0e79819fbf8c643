// Package aggregate is the runtime for event-sourced aggregates.
//
// An aggregate embeds [Root] and binds itself as the dispatch target:
//
//	type Item struct {
//	    aggregate.Root
//	    Description string
//	}
//
//	func Empty() *Item {
//	    it := &Item{}
//	    it.Init(it)
//	    return it
//	}
//
// State changes are expressed as events. Raise sequences, applies, stamps and
// queues a new event; LoadFromHistory re-applies committed events in sequence
// order without queueing them. Commit drains the pending queue once the
// caller has persisted it.
//
// Events reach state-mutation code through a [Dispatcher]. Handlers are
// resolved in this order:
//
//  1. A method named "On" + the event type name (minus a trailing "Event")
//     whose single parameter is exactly the event's concrete type.
//  2. A typed handler registered with [Handle] before the type is first used.
//  3. A method named "Apply" (case-insensitive) whose single parameter is the
//     event type or an interface the event implements. A sealed per-aggregate
//     event interface turns this into one type-switch dispatch site.
//
// An event nothing handles is accepted as a no-op so that long-lived logs
// survive schema drift; the dispatcher's [Observer] is told about it.
//
// Entity-scoped events are also delivered to each registered [Entity] whose
// id matches the event's target entity id, using the entity's own type.
//
// A single aggregate instance is not safe for concurrent use. Dispatch tables
// are shared process-wide and are safe under concurrent first use.
package aggregate
