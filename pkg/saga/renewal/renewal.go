// Package renewal implements the subscription renewal saga: verify the
// payment method, attempt the charge, and retry failed charges on a fixed
// day schedule until the attempt limit is reached.
package renewal

import (
	"github.com/apothek/sagacore/pkg/event"
	"github.com/apothek/sagacore/pkg/saga"
)

// AggregateType is the logical stream name for renewal sagas.
const AggregateType = "subscription_renewal_saga"

// States of the renewal transition graph.
const (
	StatePendingPaymentMethodCheck = "pending_payment_method_check"
	StatePendingPaymentAttempt     = "pending_payment_attempt"
	StateCompleted                 = "completed"
	StateFailed                    = "failed"
)

// Event types recorded by the saga.
const (
	EventStarted               = "subscription_renewal.started"
	EventPaymentMethodVerified = "subscription_renewal.payment_method_verified"
	EventPaymentAttempted      = "subscription_renewal.payment_attempted"
	EventPaymentFailed         = "subscription_renewal.payment_failed"
	EventCompleted             = "subscription_renewal.completed"
	EventFailed                = "subscription_renewal.failed"
)

var machine = saga.NewMachine(map[string][]string{
	StatePendingPaymentMethodCheck: {StatePendingPaymentAttempt, StateFailed},
	StatePendingPaymentAttempt:     {StateCompleted, StateFailed},
})

// DefaultConfig is the renewal retry tuning: five attempts backed off over
// 1, 3, 7, 14 and 30 days.
func DefaultConfig() saga.Config {
	return saga.Config{
		MaxAttempts:   5,
		RetrySchedule: saga.ScheduleDays(1, 3, 7, 14, 30),
	}
}

// Saga is the renewal process state, derived entirely from its events.
type Saga struct {
	saga.Saga

	SubscriptionID int
	UserID         int
	Amount         float64
	TransactionID  string
	LastFailure    string
}

// New returns an empty, unstarted saga bound to the stream identity.
func New(uuid string, cfg saga.Config) *Saga {
	s := &Saga{}
	s.Init(uuid, AggregateType, machine, cfg, s.applyEvent)
	return s
}

// Start constructs the saga and records the genesis event.
func Start(uuid string, subscriptionID, userID int, amount float64, cfg saga.Config) (*Saga, error) {
	s := New(uuid, cfg)
	err := s.Record(EventStarted, map[string]any{
		"subscription_id": subscriptionID,
		"user_id":         userID,
		"amount":          amount,
	}, []event.Rule{
		event.Required("subscription_id", "user_id", "amount"),
		event.Type("subscription_id", event.KindInteger),
		event.Type("user_id", event.KindInteger),
		event.Type("amount", event.KindNumber),
		event.Range("amount", 0, 1_000_000),
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Reconstitute rebuilds a saga by folding its stored history.
func Reconstitute(uuid string, history []event.Event, cfg saga.Config) *Saga {
	s := New(uuid, cfg)
	s.Root.Reconstitute(history)
	return s
}

// VerifyPaymentMethod moves the saga into the charging phase.
func (s *Saga) VerifyPaymentMethod() error {
	return s.TransitionTo(StatePendingPaymentAttempt, EventPaymentMethodVerified, nil, nil)
}

// RecordOutcome folds a gateway result into the saga: success completes it,
// failure is business data driving the retry machine.
func (s *Saga) RecordOutcome(res saga.PaymentResult) error {
	if err := s.Record(EventPaymentAttempted, map[string]any{
		"success": res.Success,
		"message": res.Message,
	}, nil); err != nil {
		return err
	}
	if res.Success {
		return s.complete(res.TransactionID)
	}
	return s.OnPaymentFailed(res.Message)
}

// OnPaymentFailed records one failure signal. The attempt counter increments;
// at the limit the saga transitions to failed and no retry is scheduled.
func (s *Saga) OnPaymentFailed(reason string) error {
	attempt := s.Attempt() + 1
	err := s.Record(EventPaymentFailed, map[string]any{
		"attempt_number": attempt,
		"reason":         reason,
	}, []event.Rule{
		event.Required("attempt_number"),
		event.Type("attempt_number", event.KindInteger),
	})
	if err != nil {
		return err
	}
	if attempt >= s.MaxAttempts() {
		return s.fail(reason)
	}
	return nil
}

func (s *Saga) complete(transactionID string) error {
	return s.TransitionTo(StateCompleted, EventCompleted, map[string]any{
		"transaction_id": transactionID,
	}, nil)
}

func (s *Saga) fail(reason string) error {
	return s.TransitionTo(StateFailed, EventFailed, map[string]any{
		"reason":         reason,
		"final_attempts": s.Attempt(),
	}, nil)
}

func (s *Saga) applyEvent(e event.Event) {
	switch e.Type {
	case EventStarted:
		s.SubscriptionID, _ = event.Int(e.Payload, "subscription_id")
		s.UserID, _ = event.Int(e.Payload, "user_id")
		s.Amount, _ = event.Float(e.Payload, "amount")
		s.ApplyState(StatePendingPaymentMethodCheck)
	case EventPaymentMethodVerified:
		s.ApplyStateChange(e)
	case EventPaymentFailed:
		if n, ok := event.Int(e.Payload, "attempt_number"); ok {
			s.ApplyAttempt(n)
		}
		s.LastFailure, _ = event.String(e.Payload, "reason")
	case EventCompleted:
		s.TransactionID, _ = event.String(e.Payload, "transaction_id")
		s.ApplyStateChange(e)
	case EventFailed:
		s.ApplyStateChange(e)
	default:
		// EventPaymentAttempted and unknown types carry no state.
	}
}
