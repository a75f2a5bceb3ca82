package event

import (
	"sort"

	"github.com/apothek/sagacore/pkg/errmodel"
)

// Decoder turns a migrated payload into the concrete shape a projector or
// aggregate wants to consume.
type Decoder func(payload map[string]any) (any, error)

// Entry describes one known event type: how to decode it and the latest
// schema version its payload should be migrated to before decoding.
type Entry struct {
	Decode        Decoder
	LatestVersion int
}

// Registry is an explicit, instance-scoped map from event-type tag to Entry.
// Unknown tags are not an error: Resolve reports them as unknown so callers
// can skip forward-incompatible events instead of aborting.
type Registry struct {
	entries map[string]Entry
}

// NewRegistry returns an empty registry. Populate it once at startup and
// treat it as immutable afterwards.
func NewRegistry() *Registry {
	return &Registry{entries: map[string]Entry{}}
}

// Register adds a known event type. Re-registering a tag is an error.
func (r *Registry) Register(eventType string, latestVersion int, dec Decoder) error {
	if eventType == "" {
		return errmodel.Validation("empty_event_type", "event type is empty", nil)
	}
	if latestVersion < 1 {
		return errmodel.Validation("bad_version", "latest version must be >= 1", map[string]any{"event_type": eventType})
	}
	if _, exists := r.entries[eventType]; exists {
		return errmodel.Validation("duplicate_event_type", "event type already registered", map[string]any{"event_type": eventType})
	}
	r.entries[eventType] = Entry{Decode: dec, LatestVersion: latestVersion}
	return nil
}

// Resolve returns the entry for a tag. ok is false for unknown tags; treat
// those as a skip variant, never a failure.
func (r *Registry) Resolve(eventType string) (Entry, bool) {
	e, ok := r.entries[eventType]
	return e, ok
}

// Types returns the registered tags in stable order.
func (r *Registry) Types() []string {
	out := make([]string, 0, len(r.entries))
	for t := range r.entries {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
