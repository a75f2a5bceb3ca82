// Package projection rebuilds read-side state from the event log. Projectors
// apply events to an external read-model store; the replayer re-drives
// historical ranges of the log through them.
package projection

import (
	"context"
	"sort"
	"sync"

	"github.com/apothek/sagacore/pkg/errmodel"
	"github.com/apothek/sagacore/pkg/event"
)

// ReadModel is the external read-side storage contract.
type ReadModel interface {
	UpsertByKey(ctx context.Context, key string, fields map[string]any) error
}

// Projector applies events to a read model.
type Projector interface {
	// Name identifies the projection for replay filtering.
	Name() string
	// EventTypes lists the event types this projection cares about.
	// An empty list means every type.
	EventTypes() []string
	// Project applies one event. model is the concrete shape produced by
	// the event-type registry's decoder, or nil when the type has none.
	Project(ctx context.Context, e event.Event, model any, seq int64) error
}

// Registry holds projectors by name.
type Registry struct {
	byName map[string]Projector
}

// NewRegistry returns an empty projector registry.
func NewRegistry() *Registry {
	return &Registry{byName: map[string]Projector{}}
}

// Register adds a projector. Duplicate names are an error.
func (r *Registry) Register(p Projector) error {
	if p == nil || p.Name() == "" {
		return errmodel.Validation("bad_projector", "projector is nil or unnamed", nil)
	}
	if _, exists := r.byName[p.Name()]; exists {
		return errmodel.Validation("duplicate_projection", "projection already registered", map[string]any{"projection": p.Name()})
	}
	r.byName[p.Name()] = p
	return nil
}

// Get returns a projector by name.
func (r *Registry) Get(name string) (Projector, bool) {
	p, ok := r.byName[name]
	return p, ok
}

// Names returns the registered projection names in stable order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.byName))
	for n := range r.byName {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// MemoryReadModel is an in-memory ReadModel for tests and dry runs.
type MemoryReadModel struct {
	mu      sync.RWMutex
	rows    map[string]map[string]any
	upserts int
}

// NewMemoryReadModel returns an empty memory read model.
func NewMemoryReadModel() *MemoryReadModel {
	return &MemoryReadModel{rows: map[string]map[string]any{}}
}

func (m *MemoryReadModel) UpsertByKey(ctx context.Context, key string, fields map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	row := m.rows[key]
	if row == nil {
		row = map[string]any{}
		m.rows[key] = row
	}
	for k, v := range fields {
		row[k] = v
	}
	m.upserts++
	return nil
}

// Get returns a copy of the row for key.
func (m *MemoryReadModel) Get(key string) (map[string]any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	row, ok := m.rows[key]
	if !ok {
		return nil, false
	}
	out := make(map[string]any, len(row))
	for k, v := range row {
		out[k] = v
	}
	return out, true
}

// Upserts reports the number of writes received.
func (m *MemoryReadModel) Upserts() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.upserts
}

// StatusProjector maintains one read-model row per aggregate with its latest
// state and event. It subscribes to the saga lifecycle event types it is
// constructed with; an empty list follows every stream.
type StatusProjector struct {
	name  string
	rm    ReadModel
	types []string
}

// NewStatusProjector constructs a status projector writing to rm.
func NewStatusProjector(name string, rm ReadModel, eventTypes []string) *StatusProjector {
	return &StatusProjector{name: name, rm: rm, types: eventTypes}
}

func (p *StatusProjector) Name() string         { return p.name }
func (p *StatusProjector) EventTypes() []string { return p.types }

func (p *StatusProjector) Project(ctx context.Context, e event.Event, model any, seq int64) error {
	fields := map[string]any{
		"aggregate_type":  e.AggregateType,
		"last_event_type": e.Type,
		"last_event_id":   seq,
		"occurred_at":     e.OccurredAt,
	}
	if to, ok := event.String(e.Payload, "to_state"); ok {
		fields["state"] = to
	}
	return p.rm.UpsertByKey(ctx, e.AggregateUUID, fields)
}
