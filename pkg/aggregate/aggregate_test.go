package aggregate

import (
	"testing"

	"github.com/apothek/sagacore/pkg/event"
)

// counter is a minimal aggregate used to exercise the fold contract.
type counter struct {
	Root
	Total int
}

func newCounter(uuid string) *counter {
	c := &counter{}
	c.Root = NewRoot(uuid, "counter", c.applyEvent)
	return c
}

func (c *counter) applyEvent(e event.Event) {
	switch e.Type {
	case "counter.incremented":
		n, _ := e.Payload["n"].(int)
		c.Total += n
	default:
		// unknown event types are ignored
	}
}

func inc(n int) event.Event {
	return event.Event{Type: "counter.incremented", Payload: map[string]any{"n": n}}
}

func TestRecordThatAppliesImmediately(t *testing.T) {
	c := newCounter("u1")
	c.RecordThat(inc(2))
	c.RecordThat(inc(3))
	if c.Total != 5 {
		t.Fatalf("total=%d want 5", c.Total)
	}
	if !c.HasPendingEvents() {
		t.Fatal("expected pending events")
	}
}

func TestReleaseEventsClearsBuffer(t *testing.T) {
	c := newCounter("u1")
	c.RecordThat(inc(1))
	out := c.ReleaseEvents()
	if len(out) != 1 {
		t.Fatalf("len=%d want 1", len(out))
	}
	if c.HasPendingEvents() {
		t.Fatal("buffer not cleared")
	}
	if len(c.ReleaseEvents()) != 0 {
		t.Fatal("second release must be empty")
	}
}

func TestReconstituteMatchesFold(t *testing.T) {
	history := []event.Event{inc(1), inc(2), inc(3), {Type: "mystery.event"}}

	live := newCounter("u1")
	for _, e := range history {
		live.RecordThat(e)
	}

	replayed := newCounter("u1")
	replayed.Reconstitute(history)

	if replayed.Total != live.Total {
		t.Fatalf("replayed=%d live=%d", replayed.Total, live.Total)
	}
	if replayed.HasPendingEvents() {
		t.Fatal("reconstitute must not buffer historical events")
	}
}

func TestUnknownEventIsNoOp(t *testing.T) {
	c := newCounter("u1")
	c.RecordThat(event.Event{Type: "mystery.event"})
	if c.Total != 0 {
		t.Fatalf("total=%d want 0", c.Total)
	}
}
