package event

import (
	"testing"
	"time"

	"github.com/apothek/sagacore/pkg/errmodel"
)

const testUUID = "3f2a8c1e-5b7d-4e9a-8c3b-1d2e4f5a6b7c"

func TestNew_ValidEvent(t *testing.T) {
	e, err := New(testUUID, "subscription_renewal_saga", "subscription_renewal.started",
		map[string]any{"subscription_id": 42},
		[]Rule{Required("subscription_id"), Type("subscription_id", KindInteger)},
		WithMetadata(map[string]any{"trace_id": "abc"}),
	)
	if err != nil {
		t.Fatal(err)
	}
	if e.AggregateUUID != testUUID || e.Type != "subscription_renewal.started" {
		t.Fatalf("unexpected event: %#v", e)
	}
	if e.OccurredAt.IsZero() {
		t.Fatal("occurred_at not set")
	}
}

func TestNew_RejectsBadIdentifier(t *testing.T) {
	_, err := New("not-a-uuid", "subscription_renewal_saga", "subscription_renewal.started", nil, nil)
	if !errmodel.IsCategory(err, errmodel.CategoryValidation) {
		t.Fatalf("want validation error, got %v", err)
	}
}

func TestNew_RejectsEmptyNames(t *testing.T) {
	if _, err := New(testUUID, "", "x.y", nil, nil); err == nil {
		t.Fatal("empty aggregate type accepted")
	}
	if _, err := New(testUUID, "stream", "", nil, nil); err == nil {
		t.Fatal("empty event type accepted")
	}
}

func TestRecordRoundTrip(t *testing.T) {
	occurred := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	e, err := New(testUUID, "dunning_saga", "dunning.payment_failed",
		map[string]any{"attempt_number": 2, "reason": "card_declined"}, nil,
		WithMetadata(map[string]any{MetaSchemaVersion: 3}),
		WithOccurredAt(occurred),
	)
	if err != nil {
		t.Fatal(err)
	}
	rec := ToRecord(e)
	if rec.EventType != "dunning.payment_failed" || !rec.OccurredAt.Equal(occurred) {
		t.Fatalf("unexpected record: %#v", rec)
	}
	back, err := FromRecord(rec)
	if err != nil {
		t.Fatal(err)
	}
	if back.Payload["reason"] != "card_declined" {
		t.Fatalf("payload lost: %#v", back.Payload)
	}
	if back.SchemaVersion() != 3 {
		t.Fatalf("schema version=%d want 3", back.SchemaVersion())
	}
}

func TestSchemaVersion_DefaultsToOne(t *testing.T) {
	e := Event{Type: "x.y"}
	if e.SchemaVersion() != 1 {
		t.Fatalf("version=%d want 1", e.SchemaVersion())
	}
}

func TestRegistry_ResolveUnknownIsSkip(t *testing.T) {
	r := NewRegistry()
	if err := r.Register("order_fulfillment.started", 1, func(p map[string]any) (any, error) { return p, nil }); err != nil {
		t.Fatal(err)
	}
	if err := r.Register("order_fulfillment.started", 1, nil); err == nil {
		t.Fatal("duplicate registration accepted")
	}
	if _, ok := r.Resolve("order_fulfillment.started"); !ok {
		t.Fatal("known tag not resolved")
	}
	if _, ok := r.Resolve("mystery.event"); ok {
		t.Fatal("unknown tag resolved")
	}
	types := r.Types()
	if len(types) != 1 || types[0] != "order_fulfillment.started" {
		t.Fatalf("types=%v", types)
	}
}
