package aggregate

import "sync/atomic"

// Modifier is invoked with every newly raised event after it has been
// applied and stamped, just before it is queued. It may annotate the event;
// changes to the sequence, aggregate id or timestamp are discarded.
type Modifier func(Event)

var modifier atomic.Pointer[Modifier]

// SetModifier installs m as the process-wide event modifier and returns the
// previous one. A nil m restores the default no-op.
func SetModifier(m Modifier) Modifier {
	var next *Modifier
	if m != nil {
		next = &m
	}
	prev := modifier.Swap(next)
	if prev == nil {
		return nil
	}
	return *prev
}

func modify(evt Event) {
	if m := modifier.Load(); m != nil {
		(*m)(evt)
	}
}
