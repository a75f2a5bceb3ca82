package projection

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/apothek/sagacore/pkg/event"
	"github.com/apothek/sagacore/pkg/store"
	"github.com/apothek/sagacore/pkg/store/memstore"
)

func seedStore(t *testing.T, n int) *memstore.Store {
	t.Helper()
	ctx := context.Background()
	st := memstore.New()
	for i := 0; i < n; i++ {
		payload, _ := json.Marshal(map[string]any{"to_state": "pending_retry", "n": i})
		_, err := st.Append(ctx, store.EventRecord{
			AggregateUUID: fmt.Sprintf("u-%d", i%5),
			AggregateType: "dunning_saga",
			EventType:     "dunning.retry_pending",
			Payload:       payload,
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	return st
}

func statusSetup(t *testing.T, st store.EventStore) (*Replayer, *MemoryReadModel) {
	t.Helper()
	rm := NewMemoryReadModel()
	reg := NewRegistry()
	if err := reg.Register(NewStatusProjector("saga_status", rm, nil)); err != nil {
		t.Fatal(err)
	}
	types := event.NewRegistry()
	if err := types.Register("dunning.retry_pending", 1, nil); err != nil {
		t.Fatal(err)
	}
	return NewReplayer(st, reg, types, event.NewMigrator()), rm
}

// Dry run over ids 10..20 of 50: eleven events counted, nothing dispatched,
// zero read-model writes.
func TestReplay_DryRunCountsOnly(t *testing.T) {
	st := seedStore(t, 50)
	r, rm := statusSetup(t, st)

	rep, err := r.Replay(context.Background(), Options{FromID: 10, ToID: 20, DryRun: true})
	if err != nil {
		t.Fatal(err)
	}
	if rep.EventsProcessed != 11 {
		t.Fatalf("processed=%d want 11", rep.EventsProcessed)
	}
	if rep.EventsDispatched != 0 {
		t.Fatalf("dispatched=%d want 0", rep.EventsDispatched)
	}
	if rm.Upserts() != 0 {
		t.Fatalf("upserts=%d want 0", rm.Upserts())
	}
}

func TestReplay_DispatchesToReadModel(t *testing.T) {
	st := seedStore(t, 10)
	r, rm := statusSetup(t, st)

	rep, err := r.Replay(context.Background(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if rep.EventsProcessed != 10 || rep.EventsDispatched != 10 {
		t.Fatalf("report=%+v", rep)
	}
	row, ok := rm.Get("u-0")
	if !ok {
		t.Fatal("row missing")
	}
	if row["state"] != "pending_retry" || row["aggregate_type"] != "dunning_saga" {
		t.Fatalf("row=%#v", row)
	}
}

func TestReplay_BatchesByCursor(t *testing.T) {
	st := seedStore(t, 25)
	r, _ := statusSetup(t, st)

	rep, err := r.Replay(context.Background(), Options{BatchSize: 10})
	if err != nil {
		t.Fatal(err)
	}
	if rep.Batches != 3 || rep.EventsProcessed != 25 {
		t.Fatalf("report=%+v", rep)
	}
}

func TestReplay_UnknownProjectionRejectedUpfront(t *testing.T) {
	st := seedStore(t, 5)
	r, rm := statusSetup(t, st)

	_, err := r.Replay(context.Background(), Options{Projection: "no_such_projection"})
	if err == nil {
		t.Fatal("unknown projection accepted")
	}
	if rm.Upserts() != 0 {
		t.Fatal("work started despite invalid projection")
	}
}

func TestReplay_SkipsUnknownEventTypes(t *testing.T) {
	ctx := context.Background()
	st := seedStore(t, 5)
	if _, err := st.Append(ctx, store.EventRecord{
		AggregateUUID: "u-x",
		AggregateType: "dunning_saga",
		EventType:     "mystery.event",
	}); err != nil {
		t.Fatal(err)
	}
	r, _ := statusSetup(t, st)

	rep, err := r.Replay(ctx, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if rep.EventsProcessed != 6 || rep.EventsDispatched != 5 {
		t.Fatalf("report=%+v", rep)
	}
}

func TestReplay_MigrationGapAbortsWithProgress(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	for i := 0; i < 3; i++ {
		meta, _ := json.Marshal(map[string]any{event.MetaSchemaVersion: 1})
		if _, err := st.Append(ctx, store.EventRecord{
			AggregateUUID: "u-1",
			AggregateType: "dunning_saga",
			EventType:     "dunning.payment_failed",
			Metadata:      meta,
		}); err != nil {
			t.Fatal(err)
		}
	}

	rm := NewMemoryReadModel()
	reg := NewRegistry()
	_ = reg.Register(NewStatusProjector("saga_status", rm, nil))
	types := event.NewRegistry()
	// latest version 3 with no registered steps: every event hits the gap
	_ = types.Register("dunning.payment_failed", 3, nil)

	r := NewReplayer(st, reg, types, event.NewMigrator())
	rep, err := r.Replay(ctx, Options{})
	if !event.IsMigrationGap(err) {
		t.Fatalf("want migration gap, got %v", err)
	}
	if rep.EventsProcessed != 1 {
		t.Fatalf("processed=%d want 1", rep.EventsProcessed)
	}
}

func TestReplay_NamedProjectionRestrictsEventTypes(t *testing.T) {
	ctx := context.Background()
	st := seedStore(t, 4)

	rm := NewMemoryReadModel()
	reg := NewRegistry()
	_ = reg.Register(NewStatusProjector("saga_status", rm, []string{"dunning.completed"}))
	types := event.NewRegistry()
	_ = types.Register("dunning.retry_pending", 1, nil)

	r := NewReplayer(st, reg, types, event.NewMigrator())
	rep, err := r.Replay(ctx, Options{Projection: "saga_status"})
	if err != nil {
		t.Fatal(err)
	}
	// all events resolve but none match the projection's subscriptions
	if rep.EventsProcessed != 4 || rep.EventsDispatched != 0 {
		t.Fatalf("report=%+v", rep)
	}
}

func TestReplay_AppliesMigratorBeforeDispatch(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	payload, _ := json.Marshal(map[string]any{"to_state": "escalated"})
	if _, err := st.Append(ctx, store.EventRecord{
		AggregateUUID: "u-1",
		AggregateType: "dunning_saga",
		EventType:     "dunning.escalated",
		Payload:       payload,
	}); err != nil {
		t.Fatal(err)
	}

	rm := NewMemoryReadModel()
	reg := NewRegistry()
	_ = reg.Register(NewStatusProjector("saga_status", rm, nil))
	types := event.NewRegistry()
	_ = types.Register("dunning.escalated", 2, nil)
	mig := event.NewMigrator()
	_ = mig.Register("dunning.escalated", 1, func(p map[string]any) (map[string]any, error) {
		p["level"] = 1.0
		return p, nil
	})

	r := NewReplayer(st, reg, types, mig)
	rep, err := r.Replay(ctx, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if rep.EventsDispatched != 1 {
		t.Fatalf("report=%+v", rep)
	}
	row, _ := rm.Get("u-1")
	if row["state"] != "escalated" {
		t.Fatalf("row=%#v", row)
	}
}
