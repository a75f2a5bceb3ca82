package saga

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/apothek/sagacore/pkg/event"
	"github.com/apothek/sagacore/pkg/store"
)

// Instance is the slice of a saga the coordinator needs: stream identity,
// current state and the uncommitted event buffer.
type Instance interface {
	UUID() string
	Kind() string
	State() string
	ReleaseEvents() []event.Event
}

// RetryInstance additionally exposes the retry decision.
type RetryInstance interface {
	Instance
	NextRetryDelay() (time.Duration, bool)
}

// Coordinator wires a saga to its collaborators: it appends released events
// to the durable log, guards attempts behind the idempotency cache, and
// schedules delayed retry jobs. It holds no per-saga state of its own.
type Coordinator struct {
	st    store.EventStore
	sched Scheduler
	cache IdempotencyCache
	ttl   time.Duration
}

// NewCoordinator constructs a coordinator. ttl is the idempotency retention
// window applied by MarkDone.
func NewCoordinator(st store.EventStore, sched Scheduler, cache IdempotencyCache, ttl time.Duration) *Coordinator {
	return &Coordinator{st: st, sched: sched, cache: cache, ttl: ttl}
}

// Persist appends the instance's released events in order and returns the
// stored records. Recording happened before this call, so in-memory state
// already reflects the facts being written.
func (c *Coordinator) Persist(ctx context.Context, inst Instance) ([]store.EventRecord, error) {
	tr := otel.Tracer("saga/coordinator")
	ctx, span := tr.Start(ctx, "Coordinator.Persist", trace.WithAttributes(
		attribute.String("saga.uuid", inst.UUID()),
		attribute.String("saga.kind", inst.Kind()),
		attribute.String("saga.state", inst.State()),
	))
	defer span.End()

	events := inst.ReleaseEvents()
	out := make([]store.EventRecord, 0, len(events))
	for _, e := range events {
		rec, err := c.st.Append(ctx, event.ToRecord(e))
		if err != nil {
			span.RecordError(err)
			return out, err
		}
		out = append(out, rec)
	}
	span.SetAttributes(attribute.Int("events.appended", len(out)))
	return out, nil
}

// Guard checks the idempotency key before externally-visible work. A false
// result means the attempt was already processed and must be a silent no-op.
func (c *Coordinator) Guard(ctx context.Context, inst Instance) (bool, error) {
	seen, err := c.cache.Seen(ctx, idempotencyKey(inst))
	if err != nil {
		return false, err
	}
	return !seen, nil
}

// MarkDone marks the instance processed after a terminal event, with the
// configured retention TTL.
func (c *Coordinator) MarkDone(ctx context.Context, inst Instance) error {
	return c.cache.Mark(ctx, idempotencyKey(inst), c.ttl)
}

// ScheduleRetry schedules exactly one delayed job when the instance is still
// retry-eligible. It reports the chosen delay and whether anything was
// scheduled; past the attempt limit nothing is.
func (c *Coordinator) ScheduleRetry(ctx context.Context, inst RetryInstance, job Job) (time.Duration, bool, error) {
	delay, ok := inst.NextRetryDelay()
	if !ok {
		return 0, false, nil
	}
	job.SagaUUID = inst.UUID()
	job.SagaKind = inst.Kind()
	if err := c.sched.ScheduleAfter(ctx, delay, job); err != nil {
		return 0, false, err
	}
	return delay, true, nil
}

func idempotencyKey(inst Instance) string {
	return fmt.Sprintf("saga:%s:%s:processed", inst.Kind(), inst.UUID())
}
