// Package aggregate provides the event-sourced aggregate root. State is
// always the left-fold of a pure apply function over the event history in
// store order; no other mutation path exists.
package aggregate

import (
	"github.com/apothek/sagacore/pkg/event"
)

// ApplyFunc folds one event into the owning aggregate's state. It must be
// pure and total: no I/O, no randomness, and a silent no-op for event types
// it does not know (forward compatibility).
type ApplyFunc func(e event.Event)

// Root is the base for event-sourced aggregates. Concrete types embed Root
// and bind their apply function at construction time, keeping the fold closed
// over the concrete type without runtime type switches.
type Root struct {
	uuid    string
	kind    string
	apply   ApplyFunc
	pending []event.Event
}

// NewRoot constructs a root for the given stream identity. The apply function
// must be bound before any event is recorded or replayed.
func NewRoot(uuid, kind string, apply ApplyFunc) Root {
	return Root{uuid: uuid, kind: kind, apply: apply}
}

// UUID returns the aggregate identifier.
func (r *Root) UUID() string { return r.uuid }

// Kind returns the logical stream name.
func (r *Root) Kind() string { return r.kind }

// RecordThat buffers a newly recorded event and immediately applies it, so
// in-memory state reflects the fact before persistence.
func (r *Root) RecordThat(e event.Event) {
	r.pending = append(r.pending, e)
	r.apply(e)
}

// ReleaseEvents returns the uncommitted buffer and clears it. Call once per
// command handling, after which the caller appends the events to the store.
func (r *Root) ReleaseEvents() []event.Event {
	out := r.pending
	r.pending = nil
	return out
}

// HasPendingEvents reports whether uncommitted events are buffered.
func (r *Root) HasPendingEvents() bool { return len(r.pending) > 0 }

// Reconstitute folds apply over an ordered historical sequence without
// re-buffering: the events are already-stored facts, not new ones.
func (r *Root) Reconstitute(history []event.Event) {
	for _, e := range history {
		r.apply(e)
	}
}
