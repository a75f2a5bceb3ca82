// Package dunning implements the failed-payment recovery saga. Repeated
// charge failures escalate through increasingly severe contact tiers before
// the subscription is finally marked failed.
package dunning

import (
	"github.com/apothek/sagacore/pkg/event"
	"github.com/apothek/sagacore/pkg/saga"
)

// AggregateType is the logical stream name for dunning sagas.
const AggregateType = "dunning_saga"

// States of the dunning transition graph.
const (
	StatePendingRetry          = "pending_retry"
	StatePendingPaymentAttempt = "pending_payment_attempt"
	StateEscalated             = "escalated"
	StateCompleted             = "completed"
	StateFailed                = "failed"
)

// Event types recorded by the saga.
const (
	EventStarted          = "dunning.started"
	EventAttemptStarted   = "dunning.payment_attempt_started"
	EventPaymentFailed    = "dunning.payment_failed"
	EventPaymentRecovered = "dunning.payment_recovered"
	EventEscalated        = "dunning.escalated"
	EventRetryPending     = "dunning.retry_pending"
	EventCompleted        = "dunning.completed"
	EventFailed           = "dunning.failed"
)

// MaxEscalationLevel is the most severe dunning tier.
const MaxEscalationLevel = 4

var machine = saga.NewMachine(map[string][]string{
	StatePendingRetry:          {StatePendingPaymentAttempt, StateFailed},
	StatePendingPaymentAttempt: {StatePendingRetry, StateCompleted, StateEscalated, StateFailed},
	StateEscalated:             {StateCompleted, StateFailed},
})

// Config extends the shared retry tuning with the escalation thresholds:
// Thresholds[i] is the attempt number at which level i+1 is reached.
type Config struct {
	saga.Config
	Thresholds []int
}

// DefaultConfig mirrors the renewal retry tuning and escalates on attempts
// 2 through 5.
func DefaultConfig() Config {
	return Config{
		Config: saga.Config{
			MaxAttempts:   5,
			RetrySchedule: saga.ScheduleDays(1, 3, 7, 14, 30),
		},
		Thresholds: []int{2, 3, 4, 5},
	}
}

// ChannelsForLevel returns the cumulative notification channel set for an
// escalation tier: email, then sms, then phone, then pause/cancel actions.
func ChannelsForLevel(level int) []string {
	all := []string{"email", "sms", "phone", "pause_or_cancel"}
	if level < 1 {
		return nil
	}
	if level > len(all) {
		level = len(all)
	}
	out := make([]string, level)
	copy(out, all[:level])
	return out
}

// Saga is the dunning process state, derived entirely from its events.
type Saga struct {
	saga.Saga

	SubscriptionID  int
	UserID          int
	Amount          float64
	EscalationLevel int
	LastFailure     string

	thresholds []int
}

// New returns an empty, unstarted saga bound to the stream identity.
func New(uuid string, cfg Config) *Saga {
	s := &Saga{thresholds: cfg.Thresholds}
	s.Init(uuid, AggregateType, machine, cfg.Config, s.applyEvent)
	return s
}

// Start constructs the saga and records the genesis event.
func Start(uuid string, subscriptionID, userID int, amount float64, cfg Config) (*Saga, error) {
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
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Reconstitute rebuilds a saga by folding its stored history.
func Reconstitute(uuid string, history []event.Event, cfg Config) *Saga {
	s := New(uuid, cfg)
	s.Root.Reconstitute(history)
	return s
}

// BeginPaymentAttempt moves a pending retry into the charging phase.
func (s *Saga) BeginPaymentAttempt() error {
	return s.TransitionTo(StatePendingPaymentAttempt, EventAttemptStarted, nil, nil)
}

// OnPaymentRecovered completes the saga after a successful charge.
func (s *Saga) OnPaymentRecovered(transactionID string) error {
	if err := s.Record(EventPaymentRecovered, map[string]any{
		"transaction_id": transactionID,
	}, nil); err != nil {
		return err
	}
	return s.TransitionTo(StateCompleted, EventCompleted, map[string]any{
		"transaction_id": transactionID,
	}, nil)
}

// OnPaymentFailed records one failure signal, raising the escalation tier as
// thresholds are crossed. At the attempt limit the saga becomes failed;
// otherwise an un-escalated saga returns to pending_retry for the next
// scheduled attempt.
func (s *Saga) OnPaymentFailed(reason string) error {
	attempt := s.Attempt() + 1
	err := s.Record(EventPaymentFailed, map[string]any{
		"attempt_number": attempt,
		"reason":         reason,
	}, []event.Rule{
		event.Required("attempt_number"),
		event.Type("attempt_number", event.KindInteger),
		event.Range("attempt_number", 1, 100),
	})
	if err != nil {
		return err
	}

	for level := s.EscalationLevel + 1; level <= s.levelFor(attempt); level++ {
		if err := s.escalate(level); err != nil {
			return err
		}
	}

	if attempt >= s.MaxAttempts() {
		return s.fail(reason)
	}
	if s.State() == StatePendingPaymentAttempt {
		return s.TransitionTo(StatePendingRetry, EventRetryPending, map[string]any{
			"attempt_number": attempt,
		}, nil)
	}
	return nil
}

func (s *Saga) escalate(level int) error {
	channels := make([]any, 0, level)
	for _, ch := range ChannelsForLevel(level) {
		channels = append(channels, ch)
	}
	payload := map[string]any{
		"level":    level,
		"channels": channels,
	}
	rules := []event.Rule{
		event.Required("level", "channels"),
		event.Type("level", event.KindInteger),
		event.Range("level", 1, MaxEscalationLevel),
		event.Type("channels", event.KindArray),
	}
	if s.State() == StateEscalated {
		return s.Record(EventEscalated, payload, rules)
	}
	return s.TransitionTo(StateEscalated, EventEscalated, payload, rules)
}

func (s *Saga) fail(reason string) error {
	return s.TransitionTo(StateFailed, EventFailed, map[string]any{
		"reason":           reason,
		"final_attempts":   s.Attempt(),
		"escalation_level": s.EscalationLevel,
	}, nil)
}

// levelFor returns the escalation tier reached at a given attempt number.
func (s *Saga) levelFor(attempt int) int {
	level := 0
	for i, threshold := range s.thresholds {
		if attempt >= threshold && i+1 <= MaxEscalationLevel {
			level = i + 1
		}
	}
	return level
}

func (s *Saga) applyEvent(e event.Event) {
	switch e.Type {
	case EventStarted:
		s.SubscriptionID, _ = event.Int(e.Payload, "subscription_id")
		s.UserID, _ = event.Int(e.Payload, "user_id")
		s.Amount, _ = event.Float(e.Payload, "amount")
		s.ApplyState(StatePendingRetry)
	case EventAttemptStarted, EventRetryPending, EventCompleted, EventFailed:
		s.ApplyStateChange(e)
	case EventPaymentFailed:
		if n, ok := event.Int(e.Payload, "attempt_number"); ok {
			s.ApplyAttempt(n)
		}
		s.LastFailure, _ = event.String(e.Payload, "reason")
	case EventEscalated:
		if lvl, ok := event.Int(e.Payload, "level"); ok && lvl > s.EscalationLevel {
			s.EscalationLevel = lvl
		}
		s.ApplyStateChange(e)
	default:
		// EventPaymentRecovered and unknown types carry no state.
	}
}
