package entstore

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/apothek/sagacore/pkg/store"
)

func record(uuid, kind, typ string, payload json.RawMessage) store.EventRecord {
	return store.EventRecord{
		AggregateUUID: uuid,
		AggregateType: kind,
		EventType:     typ,
		Payload:       payload,
	}
}

func TestSQLiteAppendAndReadStream(t *testing.T) {
	ctx := context.Background()
	st, err := Open(ctx, "sqlite:file:ent?mode=memory&cache=shared&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_fk=1")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = st.Close() })
	if err := st.Migrate(ctx); err != nil {
		t.Fatal(err)
	}

	payload, _ := json.Marshal(map[string]any{"subscription_id": 42})

	e1, err := st.Append(ctx, record("u1", "subscription_renewal_saga", "subscription_renewal.started", payload))
	if err != nil {
		t.Fatal(err)
	}
	if e1.ID == 0 {
		t.Fatal("id not assigned")
	}

	e2, err := st.Append(ctx, record("u1", "subscription_renewal_saga", "subscription_renewal.payment_failed", nil))
	if err != nil {
		t.Fatal(err)
	}
	if e2.ID <= e1.ID {
		t.Fatalf("ids not monotonic: %d then %d", e1.ID, e2.ID)
	}

	// Other stream must not bleed into the read.
	if _, err := st.Append(ctx, record("u2", "dunning_saga", "dunning.started", nil)); err != nil {
		t.Fatal(err)
	}

	events, err := st.ReadStream(ctx, "u1", "subscription_renewal_saga")
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 2 {
		t.Fatalf("len=%d want 2", len(events))
	}
	if events[0].EventType != "subscription_renewal.started" {
		t.Fatalf("order wrong: %s", events[0].EventType)
	}
}

func TestSQLiteListRange(t *testing.T) {
	ctx := context.Background()
	st, err := Open(ctx, "sqlite:file:entrange?mode=memory&cache=shared&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_fk=1")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = st.Close() })
	if err := st.Migrate(ctx); err != nil {
		t.Fatal(err)
	}

	var ids []int64
	for i := 0; i < 5; i++ {
		kind := "subscription_renewal_saga"
		if i%2 == 1 {
			kind = "dunning_saga"
		}
		rec, err := st.Append(ctx, record("u1", kind, "t", nil))
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, rec.ID)
	}

	got, err := st.ListRange(ctx, store.RangeFilter{AfterID: ids[0], ToID: ids[3]})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("len=%d want 3", len(got))
	}

	got, err = st.ListRange(ctx, store.RangeFilter{AggregateType: "dunning_saga"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("len=%d want 2", len(got))
	}

	got, err = st.ListRange(ctx, store.RangeFilter{Limit: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ID != ids[0] {
		t.Fatalf("limit/order wrong: %#v", got)
	}
}
