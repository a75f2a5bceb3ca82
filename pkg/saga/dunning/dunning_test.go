package dunning

import (
	"context"
	"testing"

	"github.com/apothek/sagacore/pkg/event"
	"github.com/apothek/sagacore/pkg/saga"
	"github.com/apothek/sagacore/pkg/store/memstore"
)

const testUUID = "f47ac10b-58cc-4372-a567-0e02b2c3d479"

func start(t *testing.T) *Saga {
	t.Helper()
	s, err := Start(testUUID, 42, 7, 100.0, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	return s
}

// drive feeds one failed attempt, moving through the charging phase when the
// saga is still un-escalated.
func drive(t *testing.T, s *Saga, reason string) {
	t.Helper()
	if s.State() == StatePendingRetry {
		if err := s.BeginPaymentAttempt(); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.OnPaymentFailed(reason); err != nil {
		t.Fatal(err)
	}
}

func TestStart(t *testing.T) {
	s := start(t)
	if s.State() != StatePendingRetry || s.SubscriptionID != 42 || s.UserID != 7 {
		t.Fatalf("unexpected: %#v", s)
	}
}

func TestRecovery(t *testing.T) {
	s := start(t)
	if err := s.BeginPaymentAttempt(); err != nil {
		t.Fatal(err)
	}
	if err := s.OnPaymentRecovered("tx-9"); err != nil {
		t.Fatal(err)
	}
	if s.State() != StateCompleted {
		t.Fatalf("state=%q", s.State())
	}
}

// Five consecutive failures: the saga escalates through all four levels and
// ends failed.
func TestFiveFailuresEscalateThenFail(t *testing.T) {
	s := start(t)

	for i := 0; i < 5; i++ {
		drive(t, s, "card_declined")
	}

	if s.State() != StateFailed {
		t.Fatalf("state=%q want failed", s.State())
	}
	if s.Attempt() != 5 {
		t.Fatalf("attempt=%d want 5", s.Attempt())
	}
	if s.EscalationLevel != MaxEscalationLevel {
		t.Fatalf("level=%d want %d", s.EscalationLevel, MaxEscalationLevel)
	}

	var escalations []event.Event
	for _, e := range s.ReleaseEvents() {
		if e.Type == EventEscalated {
			escalations = append(escalations, e)
		}
	}
	if len(escalations) != 4 {
		t.Fatalf("escalations=%d want 4", len(escalations))
	}
	for i, e := range escalations {
		lvl, _ := event.Int(e.Payload, "level")
		if lvl != i+1 {
			t.Fatalf("escalation %d has level %d", i, lvl)
		}
	}
}

func TestEscalationChannelsGrow(t *testing.T) {
	want := [][]string{
		{"email"},
		{"email", "sms"},
		{"email", "sms", "phone"},
		{"email", "sms", "phone", "pause_or_cancel"},
	}
	for level := 1; level <= 4; level++ {
		got := ChannelsForLevel(level)
		if len(got) != len(want[level-1]) {
			t.Fatalf("level %d: %v", level, got)
		}
		for i := range got {
			if got[i] != want[level-1][i] {
				t.Fatalf("level %d: %v", level, got)
			}
		}
	}
	if ChannelsForLevel(0) != nil {
		t.Fatal("level 0 must have no channels")
	}
}

func TestEscalatedStateAllowsCompletion(t *testing.T) {
	s := start(t)
	drive(t, s, "card_declined")
	drive(t, s, "card_declined") // crosses threshold 2 -> escalated
	if s.State() != StateEscalated {
		t.Fatalf("state=%q want escalated", s.State())
	}
	if err := s.OnPaymentRecovered("tx-late"); err != nil {
		t.Fatal(err)
	}
	if s.State() != StateCompleted {
		t.Fatalf("state=%q", s.State())
	}
}

func TestReconstituteDeterminism(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	c := saga.NewCoordinator(st, saga.NewMemoryScheduler(), saga.NewMemoryCache(), saga.Days(30))

	s := start(t)
	for i := 0; i < 3; i++ {
		drive(t, s, "card_declined")
	}
	if _, err := c.Persist(ctx, s); err != nil {
		t.Fatal(err)
	}

	history, err := saga.LoadHistory(ctx, st, testUUID, AggregateType)
	if err != nil {
		t.Fatal(err)
	}
	replayed := Reconstitute(testUUID, history, DefaultConfig())
	if replayed.State() != s.State() || replayed.Attempt() != s.Attempt() || replayed.EscalationLevel != s.EscalationLevel {
		t.Fatalf("replayed (%q,%d,%d) live (%q,%d,%d)",
			replayed.State(), replayed.Attempt(), replayed.EscalationLevel,
			s.State(), s.Attempt(), s.EscalationLevel)
	}
}
