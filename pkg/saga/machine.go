// Package saga models long-running multi-step business processes as
// event-sourced aggregates with a finite state machine, bounded retries and a
// recorded compensation stack.
package saga

import (
	"sort"

	"github.com/apothek/sagacore/pkg/errmodel"
)

// Machine is a table-driven transition guard. One machine is built per saga
// type and shared by all of its instances; it is immutable after construction.
type Machine struct {
	transitions map[string]map[string]bool
}

// NewMachine builds a machine from a state -> permitted-next-states table.
// Reflexive transitions (from == to) are implicitly legal and need not appear
// in the table.
func NewMachine(table map[string][]string) *Machine {
	m := &Machine{transitions: make(map[string]map[string]bool, len(table))}
	for from, tos := range table {
		set := make(map[string]bool, len(tos))
		for _, to := range tos {
			set[to] = true
		}
		m.transitions[from] = set
	}
	return m
}

// Validate returns nil when the transition is legal and a transition error
// otherwise. from == to is always a legal no-op.
func (m *Machine) Validate(from, to string) error {
	if from == to {
		return nil
	}
	allowed, known := m.transitions[from]
	if !known {
		return errmodel.Transition("unknown_state", "state has no outgoing transitions", map[string]any{"from": from, "to": to})
	}
	if !allowed[to] {
		return errmodel.Transition("illegal_transition", "transition not permitted", map[string]any{"from": from, "to": to, "allowed": allowedList(allowed)})
	}
	return nil
}

// IsValid is the non-throwing variant used for guards.
func (m *Machine) IsValid(from, to string) bool {
	return m.Validate(from, to) == nil
}

func allowedList(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
