package renewal

import (
	"context"
	"testing"

	"github.com/apothek/sagacore/pkg/saga"
	"github.com/apothek/sagacore/pkg/store/memstore"
)

const testUUID = "8a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d"

func start(t *testing.T) *Saga {
	t.Helper()
	s, err := Start(testUUID, 42, 7, 100.0, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestStart(t *testing.T) {
	s := start(t)
	if s.State() != StatePendingPaymentMethodCheck {
		t.Fatalf("state=%q", s.State())
	}
	if s.SubscriptionID != 42 || s.UserID != 7 || s.Amount != 100.0 {
		t.Fatalf("fields lost: %#v", s)
	}
}

func TestStart_RejectsBadPayload(t *testing.T) {
	if _, err := Start(testUUID, 42, 7, -5.0, DefaultConfig()); err == nil {
		t.Fatal("negative amount accepted")
	}
	if _, err := Start("nope", 42, 7, 100.0, DefaultConfig()); err == nil {
		t.Fatal("bad uuid accepted")
	}
}

func TestHappyPath(t *testing.T) {
	s := start(t)
	if err := s.VerifyPaymentMethod(); err != nil {
		t.Fatal(err)
	}
	if err := s.RecordOutcome(saga.PaymentResult{Success: true, TransactionID: "tx-1"}); err != nil {
		t.Fatal(err)
	}
	if s.State() != StateCompleted || s.TransactionID != "tx-1" {
		t.Fatalf("state=%q tx=%q", s.State(), s.TransactionID)
	}
}

// Five attempts with schedule [1,3,7,14,30]: the first four failures keep the
// saga retry-eligible with the scheduled delay, the fifth is terminal.
func TestRetryScheduleExhaustion(t *testing.T) {
	s := start(t)
	if err := s.VerifyPaymentMethod(); err != nil {
		t.Fatal(err)
	}

	wantDays := []int{1, 3, 7, 14}
	for i := 0; i < 4; i++ {
		if err := s.OnPaymentFailed("card_declined"); err != nil {
			t.Fatal(err)
		}
		if s.State() != StatePendingPaymentAttempt {
			t.Fatalf("attempt %d: state=%q", i+1, s.State())
		}
		delay, ok := s.NextRetryDelay()
		if !ok {
			t.Fatalf("attempt %d: no retry", i+1)
		}
		if delay != saga.Days(wantDays[i]) {
			t.Fatalf("attempt %d: delay=%v want %d days", i+1, delay, wantDays[i])
		}
	}

	if err := s.OnPaymentFailed("card_declined"); err != nil {
		t.Fatal(err)
	}
	if s.State() != StateFailed {
		t.Fatalf("state=%q want failed", s.State())
	}
	if _, ok := s.NextRetryDelay(); ok {
		t.Fatal("retry scheduled after terminal failure")
	}
}

func TestNoRetryScheduledAtLimit(t *testing.T) {
	ctx := context.Background()
	sched := saga.NewMemoryScheduler()
	c := saga.NewCoordinator(memstore.New(), sched, saga.NewMemoryCache(), saga.Days(30))

	s := start(t)
	if err := s.VerifyPaymentMethod(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		if err := s.OnPaymentFailed("card_declined"); err != nil {
			t.Fatal(err)
		}
		if _, err := c.Persist(ctx, s); err != nil {
			t.Fatal(err)
		}
		if _, _, err := c.ScheduleRetry(ctx, s, saga.Job{Name: "renewal.retry_payment"}); err != nil {
			t.Fatal(err)
		}
	}
	if got := len(sched.Jobs()); got != 4 {
		t.Fatalf("scheduled=%d want 4", got)
	}
}

func TestReconstituteDeterminism(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	c := saga.NewCoordinator(st, saga.NewMemoryScheduler(), saga.NewMemoryCache(), saga.Days(30))

	s := start(t)
	_ = s.VerifyPaymentMethod()
	_ = s.OnPaymentFailed("card_declined")
	_ = s.OnPaymentFailed("card_declined")
	if _, err := c.Persist(ctx, s); err != nil {
		t.Fatal(err)
	}

	history, err := saga.LoadHistory(ctx, st, testUUID, AggregateType)
	if err != nil {
		t.Fatal(err)
	}
	replayed := Reconstitute(testUUID, history, DefaultConfig())
	if replayed.State() != s.State() || replayed.Attempt() != s.Attempt() {
		t.Fatalf("replayed (%q,%d) live (%q,%d)", replayed.State(), replayed.Attempt(), s.State(), s.Attempt())
	}
	if replayed.SubscriptionID != 42 || replayed.LastFailure != "card_declined" {
		t.Fatalf("fields lost: %#v", replayed)
	}
}
