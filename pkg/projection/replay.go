package projection

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/apothek/sagacore/pkg/errmodel"
	"github.com/apothek/sagacore/pkg/event"
	"github.com/apothek/sagacore/pkg/store"
)

// DefaultBatchSize bounds one log read during replay.
const DefaultBatchSize = 100

// Options selects what a replay run covers.
type Options struct {
	// Projection restricts the run to one named projection. Empty means all.
	Projection string
	// AggregateType filters the log to one stream kind.
	AggregateType string
	// FromID/ToID bound the insert-id range, inclusive. Zero is unbounded.
	FromID int64
	ToID   int64
	// DryRun counts matching events without dispatching anything.
	DryRun    bool
	BatchSize int
}

// Report carries the per-run counters surfaced to operators.
type Report struct {
	Batches          int
	EventsProcessed  int
	EventsDispatched int
}

// Replayer re-drives historical events through registered projectors. It is
// read-only with respect to the log and safe to run concurrently with live
// writers: it reads a fixed historical range and writes only to read models.
type Replayer struct {
	st    store.EventStore
	reg   *Registry
	types *event.Registry
	mig   *event.Migrator
}

// NewReplayer constructs a replayer. The type registry and migrator are the
// same injected values the rehydration path uses.
func NewReplayer(st store.EventStore, reg *Registry, types *event.Registry, mig *event.Migrator) *Replayer {
	return &Replayer{st: st, reg: reg, types: types, mig: mig}
}

// Replay fetches matching events in insert-id order in batches and dispatches
// them. Unknown event types are skipped (forward compatibility); a migration
// gap for a known type aborts the run and returns the counts achieved so far,
// so operators can resume from the id boundary instead of rerunning.
func (r *Replayer) Replay(ctx context.Context, opts Options) (Report, error) {
	tr := otel.Tracer("projection/replayer")
	ctx, span := tr.Start(ctx, "Replayer.Replay", trace.WithAttributes(
		attribute.String("replay.projection", opts.Projection),
		attribute.String("replay.aggregate_type", opts.AggregateType),
		attribute.Bool("replay.dry_run", opts.DryRun),
	))
	defer span.End()

	var only Projector
	if opts.Projection != "" {
		p, ok := r.reg.Get(opts.Projection)
		if !ok {
			return Report{}, errmodel.Validation("unknown_projection", "projection is not registered",
				map[string]any{"projection": opts.Projection, "known": r.reg.Names()})
		}
		only = p
	}

	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	cursor := opts.FromID - 1
	if cursor < 0 {
		cursor = 0
	}

	var report Report
	for {
		batch, err := r.st.ListRange(ctx, store.RangeFilter{
			AfterID:       cursor,
			ToID:          opts.ToID,
			AggregateType: opts.AggregateType,
			Limit:         batchSize,
		})
		if err != nil {
			span.RecordError(err)
			return report, err
		}
		if len(batch) == 0 {
			break
		}
		report.Batches++
		for _, rec := range batch {
			cursor = rec.ID
			report.EventsProcessed++
			if opts.DryRun {
				continue
			}
			dispatched, err := r.dispatch(ctx, rec, only)
			if err != nil {
				span.RecordError(err)
				recordCounts(span, report)
				return report, err
			}
			report.EventsDispatched += dispatched
		}
		if len(batch) < batchSize {
			break
		}
	}
	recordCounts(span, report)
	return report, nil
}

// dispatch resolves one record through the type registry and migrator, then
// applies it to the selected projectors.
func (r *Replayer) dispatch(ctx context.Context, rec store.EventRecord, only Projector) (int, error) {
	e, err := event.FromRecord(rec)
	if err != nil {
		return 0, err
	}
	entry, known := r.types.Resolve(e.Type)
	if !known {
		// forward compatibility: skip tags this build does not know
		return 0, nil
	}
	migrated, err := r.mig.Migrate(e.Type, e.SchemaVersion(), entry.LatestVersion, e.Payload)
	if err != nil {
		return 0, err
	}
	e.Payload = migrated

	var model any
	if entry.Decode != nil {
		model, err = entry.Decode(migrated)
		if err != nil {
			return 0, errmodel.System("decode_failed", "event decoder failed",
				map[string]any{"event_type": e.Type, "id": rec.ID}, err)
		}
	}

	targets := r.targets(e.Type, only)
	for _, p := range targets {
		if err := p.Project(ctx, e, model, rec.ID); err != nil {
			return 0, err
		}
	}
	return len(targets), nil
}

func (r *Replayer) targets(eventType string, only Projector) []Projector {
	if only != nil {
		if subscribes(only, eventType) {
			return []Projector{only}
		}
		return nil
	}
	var out []Projector
	for _, name := range r.reg.Names() {
		p, _ := r.reg.Get(name)
		if subscribes(p, eventType) {
			out = append(out, p)
		}
	}
	return out
}

func subscribes(p Projector, eventType string) bool {
	types := p.EventTypes()
	if len(types) == 0 {
		return true
	}
	for _, t := range types {
		if t == eventType {
			return true
		}
	}
	return false
}

func recordCounts(span trace.Span, rep Report) {
	span.SetAttributes(
		attribute.Int("replay.batches", rep.Batches),
		attribute.Int("replay.events_processed", rep.EventsProcessed),
		attribute.Int("replay.events_dispatched", rep.EventsDispatched),
	)
}
