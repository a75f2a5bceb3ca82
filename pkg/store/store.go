// Package store defines persistence interfaces for the append-only event log.
// Implementations must provide identical semantics across backends to support
// deterministic replay and portability.
package store

import (
	"context"
	"encoding/json"
	"time"
)

// EventRecord is the persisted representation of an event.
// Payload and Metadata hold the event data as JSON.
type EventRecord struct {
	// ID is the store-assigned insert id. It increases monotonically per
	// physical insert and establishes the stable global replay order.
	ID            int64
	AggregateUUID string
	AggregateType string
	EventType     string
	Payload       json.RawMessage
	Metadata      json.RawMessage
	OccurredAt    time.Time
}

// RangeFilter selects a slice of the log for batched replay reads.
// Zero values leave the corresponding dimension unbounded.
type RangeFilter struct {
	// AfterID is an exclusive lower bound on the insert id (cursor).
	AfterID int64
	// ToID is an inclusive upper bound on the insert id.
	ToID          int64
	AggregateType string
	Limit         int
}

// EventStore defines operations on the append-only event log.
//
// Append performs no optimistic-concurrency check: there is no expected-version
// compare on the stream, so two concurrent writers to the same aggregate can
// interleave. Saga handling assumes a single logical writer per stream and
// relies on idempotency, not mutual exclusion, for duplicate delivery.
type EventStore interface {
	// Append durably persists the event and returns it with the assigned id.
	// Prior rows are never mutated or removed.
	Append(ctx context.Context, e EventRecord) (EventRecord, error)
	// ReadStream returns all events for (aggregateUUID, aggregateType) in
	// append order. Used for rehydration.
	ReadStream(ctx context.Context, aggregateUUID, aggregateType string) ([]EventRecord, error)
	// ListRange returns events matching the filter ordered by insert id.
	ListRange(ctx context.Context, f RangeFilter) ([]EventRecord, error)
}
