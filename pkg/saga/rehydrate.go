package saga

import (
	"context"

	"github.com/apothek/sagacore/pkg/event"
	"github.com/apothek/sagacore/pkg/store"
)

// LoadHistory reads a stream and converts it for reconstitution, without any
// schema migration. Use a Loader when older payload versions may be present.
func LoadHistory(ctx context.Context, st store.EventStore, aggregateUUID, aggregateType string) ([]event.Event, error) {
	recs, err := st.ReadStream(ctx, aggregateUUID, aggregateType)
	if err != nil {
		return nil, err
	}
	out := make([]event.Event, 0, len(recs))
	for _, r := range recs {
		e, err := event.FromRecord(r)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// Loader rehydrates streams whose payloads may predate the current schema.
// The type registry and migrator are injected once at startup and treated as
// immutable configuration.
type Loader struct {
	st    store.EventStore
	types *event.Registry
	mig   *event.Migrator
}

// NewLoader constructs a migrating history loader.
func NewLoader(st store.EventStore, types *event.Registry, mig *event.Migrator) *Loader {
	return &Loader{st: st, types: types, mig: mig}
}

// LoadHistory reads a stream and walks each known event's payload up to its
// latest schema version. Unknown event types pass through untouched; the
// aggregate's apply ignores them.
func (l *Loader) LoadHistory(ctx context.Context, aggregateUUID, aggregateType string) ([]event.Event, error) {
	history, err := LoadHistory(ctx, l.st, aggregateUUID, aggregateType)
	if err != nil {
		return nil, err
	}
	for i, e := range history {
		entry, known := l.types.Resolve(e.Type)
		if !known {
			continue
		}
		migrated, err := l.mig.Migrate(e.Type, e.SchemaVersion(), entry.LatestVersion, e.Payload)
		if err != nil {
			return nil, err
		}
		history[i].Payload = migrated
	}
	return history, nil
}
