package saga

import (
	"context"
	"testing"
	"time"

	"github.com/apothek/sagacore/pkg/errmodel"
	"github.com/apothek/sagacore/pkg/event"
	"github.com/apothek/sagacore/pkg/store/memstore"
)

const testUUID = "3f2a8c1e-5b7d-4e9a-8c3b-1d2e4f5a6b7c"

// shipSaga is a minimal concrete saga used to exercise the base contract.
type shipSaga struct {
	Saga
}

var shipMachine = NewMachine(map[string][]string{
	"created": {"packed", "failed"},
	"packed":  {"shipped", "failed"},
	"shipped": {},
})

func startShipSaga(t *testing.T) *shipSaga {
	t.Helper()
	s := &shipSaga{}
	s.Init(testUUID, "ship_saga", shipMachine, Config{
		MaxAttempts:   3,
		RetrySchedule: ScheduleDays(1, 3),
	}, s.applyEvent)
	if err := s.Record("ship.created", map[string]any{"initial": true}, nil); err != nil {
		t.Fatal(err)
	}
	return s
}

func (s *shipSaga) applyEvent(e event.Event) {
	switch e.Type {
	case "ship.created":
		s.ApplyState("created")
	case "ship.packed", "ship.shipped", "ship.failed":
		s.ApplyStateChange(e)
	case "ship.attempt_failed":
		if n, ok := event.Int(e.Payload, "attempt_number"); ok {
			s.ApplyAttempt(n)
		}
	case "ship.space_reserved":
		s.ApplyCompensation(Compensation{Action: "release_space", Resource: "warehouse"})
	}
}

func TestTransitionTo_RecordsFromAndTo(t *testing.T) {
	s := startShipSaga(t)
	if err := s.TransitionTo("packed", "ship.packed", map[string]any{"box": "A"}, nil); err != nil {
		t.Fatal(err)
	}
	if s.State() != "packed" {
		t.Fatalf("state=%q want packed", s.State())
	}
	events := s.ReleaseEvents()
	last := events[len(events)-1]
	if last.Payload["from_state"] != "created" || last.Payload["to_state"] != "packed" {
		t.Fatalf("payload=%#v", last.Payload)
	}
	if last.Payload["box"] != "A" {
		t.Fatalf("extra payload lost: %#v", last.Payload)
	}
}

func TestTransitionTo_IllegalAbortsBeforeRecording(t *testing.T) {
	s := startShipSaga(t)
	s.ReleaseEvents()
	err := s.TransitionTo("shipped", "ship.shipped", nil, nil)
	if !errmodel.IsCategory(err, errmodel.CategoryTransition) {
		t.Fatalf("want transition error, got %v", err)
	}
	if s.HasPendingEvents() {
		t.Fatal("illegal transition must not record an event")
	}
	if s.State() != "created" {
		t.Fatalf("state=%q want created", s.State())
	}
}

func TestNextRetryDelay_ScheduleAndClamp(t *testing.T) {
	s := startShipSaga(t)

	if _, ok := s.NextRetryDelay(); ok {
		t.Fatal("no failure yet, no retry")
	}

	_ = s.Record("ship.attempt_failed", map[string]any{"attempt_number": 1}, nil)
	d, ok := s.NextRetryDelay()
	if !ok || d != Days(1) {
		t.Fatalf("delay=%v ok=%v want 1 day", d, ok)
	}

	_ = s.Record("ship.attempt_failed", map[string]any{"attempt_number": 2}, nil)
	d, ok = s.NextRetryDelay()
	if !ok || d != Days(3) {
		t.Fatalf("delay=%v ok=%v want 3 days", d, ok)
	}

	// at maxAttempts no retry is scheduled
	_ = s.Record("ship.attempt_failed", map[string]any{"attempt_number": 3}, nil)
	if _, ok := s.NextRetryDelay(); ok {
		t.Fatal("retry scheduled at max attempts")
	}
}

func TestNextRetryDelay_ClampsToLastEntry(t *testing.T) {
	s := &shipSaga{}
	s.Init(testUUID, "ship_saga", shipMachine, Config{
		MaxAttempts:   5,
		RetrySchedule: ScheduleDays(1, 3),
	}, s.applyEvent)
	_ = s.Record("ship.attempt_failed", map[string]any{"attempt_number": 4}, nil)
	d, ok := s.NextRetryDelay()
	if !ok || d != Days(3) {
		t.Fatalf("delay=%v ok=%v want clamp to 3 days", d, ok)
	}
}

func TestAttemptMonotonicUnderReplay(t *testing.T) {
	s := startShipSaga(t)
	_ = s.Record("ship.attempt_failed", map[string]any{"attempt_number": 2}, nil)
	_ = s.Record("ship.attempt_failed", map[string]any{"attempt_number": 1}, nil)
	if s.Attempt() != 2 {
		t.Fatalf("attempt=%d want 2", s.Attempt())
	}
}

func TestCoordinator_PersistAppendsInOrder(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	c := NewCoordinator(st, NewMemoryScheduler(), NewMemoryCache(), Days(30))

	s := startShipSaga(t)
	if err := s.TransitionTo("packed", "ship.packed", nil, nil); err != nil {
		t.Fatal(err)
	}
	recs, err := c.Persist(ctx, s)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("len=%d want 2", len(recs))
	}
	if recs[0].EventType != "ship.created" || recs[1].EventType != "ship.packed" {
		t.Fatalf("order wrong: %s, %s", recs[0].EventType, recs[1].EventType)
	}
	if s.HasPendingEvents() {
		t.Fatal("persist must drain the buffer")
	}
}

func TestCoordinator_GuardAndMarkDone(t *testing.T) {
	ctx := context.Background()
	c := NewCoordinator(memstore.New(), NewMemoryScheduler(), NewMemoryCache(), Days(30))
	s := startShipSaga(t)

	proceed, err := c.Guard(ctx, s)
	if err != nil || !proceed {
		t.Fatalf("proceed=%v err=%v", proceed, err)
	}
	if err := c.MarkDone(ctx, s); err != nil {
		t.Fatal(err)
	}
	proceed, err = c.Guard(ctx, s)
	if err != nil {
		t.Fatal(err)
	}
	if proceed {
		t.Fatal("marked saga must short-circuit")
	}
}

func TestCoordinator_ScheduleRetry(t *testing.T) {
	ctx := context.Background()
	sched := NewMemoryScheduler()
	c := NewCoordinator(memstore.New(), sched, NewMemoryCache(), Days(30))

	s := startShipSaga(t)
	_ = s.Record("ship.attempt_failed", map[string]any{"attempt_number": 1}, nil)

	delay, scheduled, err := c.ScheduleRetry(ctx, s, Job{Name: "ship.retry"})
	if err != nil || !scheduled {
		t.Fatalf("scheduled=%v err=%v", scheduled, err)
	}
	if delay != Days(1) {
		t.Fatalf("delay=%v want 1 day", delay)
	}
	jobs := sched.Jobs()
	if len(jobs) != 1 || jobs[0].Job.SagaUUID != testUUID || jobs[0].Job.SagaKind != "ship_saga" {
		t.Fatalf("jobs=%#v", jobs)
	}

	// exhaust attempts: nothing more is scheduled
	_ = s.Record("ship.attempt_failed", map[string]any{"attempt_number": 3}, nil)
	_, scheduled, err = c.ScheduleRetry(ctx, s, Job{Name: "ship.retry"})
	if err != nil {
		t.Fatal(err)
	}
	if scheduled {
		t.Fatal("retry scheduled past max attempts")
	}
}

func TestMemoryCacheTTL(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()
	now := time.Now()
	cache.now = func() time.Time { return now }

	if err := cache.Mark(ctx, "k", time.Hour); err != nil {
		t.Fatal(err)
	}
	seen, _ := cache.Seen(ctx, "k")
	if !seen {
		t.Fatal("expected seen")
	}
	now = now.Add(2 * time.Hour)
	seen, _ = cache.Seen(ctx, "k")
	if seen {
		t.Fatal("expired key still seen")
	}
}
