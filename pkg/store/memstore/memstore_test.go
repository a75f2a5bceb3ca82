package memstore

import (
	"context"
	"testing"

	"github.com/apothek/sagacore/pkg/store"
)

func TestAppendAssignsMonotonicIDs(t *testing.T) {
	ctx := context.Background()
	st := New()
	for i := 0; i < 3; i++ {
		rec, err := st.Append(ctx, store.EventRecord{AggregateUUID: "u", AggregateType: "s", EventType: "t"})
		if err != nil {
			t.Fatal(err)
		}
		if rec.ID != int64(i+1) {
			t.Fatalf("id=%d want %d", rec.ID, i+1)
		}
	}
}

func TestReadStreamAndRange(t *testing.T) {
	ctx := context.Background()
	st := New()
	_, _ = st.Append(ctx, store.EventRecord{AggregateUUID: "a", AggregateType: "s1", EventType: "t"})
	_, _ = st.Append(ctx, store.EventRecord{AggregateUUID: "b", AggregateType: "s2", EventType: "t"})
	_, _ = st.Append(ctx, store.EventRecord{AggregateUUID: "a", AggregateType: "s1", EventType: "t2"})

	stream, err := st.ReadStream(ctx, "a", "s1")
	if err != nil {
		t.Fatal(err)
	}
	if len(stream) != 2 || stream[1].EventType != "t2" {
		t.Fatalf("stream=%#v", stream)
	}

	ranged, err := st.ListRange(ctx, store.RangeFilter{AfterID: 1, ToID: 3, AggregateType: "s1"})
	if err != nil {
		t.Fatal(err)
	}
	if len(ranged) != 1 || ranged[0].ID != 3 {
		t.Fatalf("ranged=%#v", ranged)
	}
}
