package saga

import (
	"context"
	"time"
)

// Job describes delayed work handed to the external queue. The saga does not
// block waiting for it; it resumes when the scheduled job re-enters a handler.
type Job struct {
	Name     string         `json:"name"`
	SagaUUID string         `json:"saga_uuid"`
	SagaKind string         `json:"saga_kind"`
	Args     map[string]any `json:"args,omitempty"`
}

// Scheduler is the external job queue contract.
type Scheduler interface {
	ScheduleAfter(ctx context.Context, delay time.Duration, job Job) error
}

// IdempotencyCache prevents duplicate externally-visible effects from
// at-least-once job redelivery. Keys are derived from the saga identity.
type IdempotencyCache interface {
	// Seen reports whether the key was already marked processed.
	Seen(ctx context.Context, key string) (bool, error)
	// Mark records the key with a retention TTL.
	Mark(ctx context.Context, key string, ttl time.Duration) error
}

// PaymentResult is the gateway's answer to a charge attempt. A failed charge
// is business data, not an error: it becomes a *Failed domain event.
type PaymentResult struct {
	Success       bool
	TransactionID string
	Message       string
}

// PaymentGateway is the external payment processor contract.
type PaymentGateway interface {
	ProcessTransaction(ctx context.Context, amount float64, token string, meta map[string]any) (PaymentResult, error)
}

// Compensator consumes the recorded compensation stack when a saga fails.
// The core records compensations; this collaborator executes them.
type Compensator interface {
	Compensate(ctx context.Context, sagaUUID string, stack []Compensation) error
}
