package saga

import (
	"time"

	"github.com/apothek/sagacore/pkg/aggregate"
	"github.com/apothek/sagacore/pkg/event"
)

// Compensation is a recorded rollback descriptor for a previously completed
// forward step. The core only records compensations; executing them is the
// job of an external Compensator consuming the stack from the failure event.
type Compensation struct {
	Action   string         `json:"action"`
	Resource string         `json:"resource"`
	Args     map[string]any `json:"args,omitempty"`
}

// Config carries the externally-owned retry tuning for a saga type.
type Config struct {
	MaxAttempts   int
	RetrySchedule []time.Duration
}

// Days converts a day count to the duration used by retry schedules.
func Days(n int) time.Duration { return time.Duration(n) * 24 * time.Hour }

// ScheduleDays builds a retry schedule from day counts.
func ScheduleDays(days ...int) []time.Duration {
	out := make([]time.Duration, 0, len(days))
	for _, d := range days {
		out = append(out, Days(d))
	}
	return out
}

// Saga is the base for long-running processes. It extends the aggregate root
// with a finite state machine, a bounded attempt counter, a retry schedule
// and the compensation stack. All of its fields change only through apply.
type Saga struct {
	aggregate.Root

	machine       *Machine
	state         string
	attempt       int
	maxAttempts   int
	schedule      []time.Duration
	compensations []Compensation
}

// Init binds the saga base to its stream identity, machine, config and the
// concrete apply function. Concrete sagas call this from their constructors.
func (s *Saga) Init(uuid, kind string, machine *Machine, cfg Config, apply aggregate.ApplyFunc) {
	s.Root = aggregate.NewRoot(uuid, kind, apply)
	s.machine = machine
	s.maxAttempts = cfg.MaxAttempts
	s.schedule = cfg.RetrySchedule
}

// State returns the current node in the transition graph.
func (s *Saga) State() string { return s.state }

// Attempt returns the number of failure signals seen so far. It is
// monotonically non-decreasing within one saga instance.
func (s *Saga) Attempt() int { return s.attempt }

// MaxAttempts returns the bounded retry limit.
func (s *Saga) MaxAttempts() int { return s.maxAttempts }

// Compensations returns a copy of the recorded compensation stack.
func (s *Saga) Compensations() []Compensation {
	out := make([]Compensation, len(s.compensations))
	copy(out, s.compensations)
	return out
}

// CompensationPayloads renders the stack for embedding in an event payload.
func (s *Saga) CompensationPayloads() []any {
	out := make([]any, 0, len(s.compensations))
	for _, c := range s.compensations {
		m := map[string]any{"action": c.Action, "resource": c.Resource}
		if len(c.Args) > 0 {
			m["args"] = c.Args
		}
		out = append(out, m)
	}
	return out
}

// TransitionTo validates the state change against the machine, then records
// an event of the given type whose payload carries from_state/to_state.
// Structural errors abort before anything is recorded.
func (s *Saga) TransitionTo(to, eventType string, payload map[string]any, rules []event.Rule, opts ...event.Option) error {
	if err := s.machine.Validate(s.state, to); err != nil {
		return err
	}
	merged := map[string]any{"from_state": s.state, "to_state": to}
	for k, v := range payload {
		merged[k] = v
	}
	e, err := event.New(s.UUID(), s.Kind(), eventType, merged, rules, opts...)
	if err != nil {
		return err
	}
	s.RecordThat(e)
	return nil
}

// Record validates and records a domain event that does not move the state.
func (s *Saga) Record(eventType string, payload map[string]any, rules []event.Rule, opts ...event.Option) error {
	e, err := event.New(s.UUID(), s.Kind(), eventType, payload, rules, opts...)
	if err != nil {
		return err
	}
	s.RecordThat(e)
	return nil
}

// NextRetryDelay implements the shared backoff algorithm: while the attempt
// count is below the limit, the delay is retrySchedule[attempt-1], clamped to
// the schedule's last entry; at or past the limit no retry is scheduled.
func (s *Saga) NextRetryDelay() (time.Duration, bool) {
	if s.attempt < 1 || s.attempt >= s.maxAttempts || len(s.schedule) == 0 {
		return 0, false
	}
	idx := s.attempt - 1
	if idx >= len(s.schedule) {
		idx = len(s.schedule) - 1
	}
	return s.schedule[idx], true
}

// The helpers below are the only mutation paths and exist for concrete apply
// functions; commands never call them directly.

// ApplyState sets the current state while folding an event.
func (s *Saga) ApplyState(state string) { s.state = state }

// ApplyStateChange reads to_state from a state-change event payload.
func (s *Saga) ApplyStateChange(e event.Event) {
	if to, ok := e.Payload["to_state"].(string); ok {
		s.state = to
	}
}

// ApplyAttempt records a failure signal's attempt number, keeping the counter
// monotonic under replay.
func (s *Saga) ApplyAttempt(n int) {
	if n > s.attempt {
		s.attempt = n
	}
}

// ApplyCompensation pushes one rollback descriptor onto the stack.
func (s *Saga) ApplyCompensation(c Compensation) {
	s.compensations = append(s.compensations, c)
}
