// Package memstore provides an in-memory event store used by unit tests and
// dry runs. Semantics mirror the ent-backed store: append-only, ids assigned
// in insert order.
package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/apothek/sagacore/pkg/store"
)

// Store is a mutex-guarded in-memory store.EventStore.
type Store struct {
	mu     sync.RWMutex
	events []store.EventRecord
	nextID int64
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{nextID: 1}
}

// Append assigns the next id and retains the record. Rows are never mutated.
func (s *Store) Append(ctx context.Context, e store.EventRecord) (store.EventRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = s.nextID
	s.nextID++
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	}
	s.events = append(s.events, e)
	return e, nil
}

// ReadStream lists events for one aggregate stream in append order.
func (s *Store) ReadStream(ctx context.Context, aggregateUUID, aggregateType string) ([]store.EventRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []store.EventRecord
	for _, e := range s.events {
		if e.AggregateUUID == aggregateUUID && e.AggregateType == aggregateType {
			out = append(out, e)
		}
	}
	return out, nil
}

// ListRange lists events matching the filter ordered by id.
func (s *Store) ListRange(ctx context.Context, f store.RangeFilter) ([]store.EventRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []store.EventRecord
	for _, e := range s.events {
		if f.AfterID > 0 && e.ID <= f.AfterID {
			continue
		}
		if f.ToID > 0 && e.ID > f.ToID {
			continue
		}
		if f.AggregateType != "" && e.AggregateType != f.AggregateType {
			continue
		}
		out = append(out, e)
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	return out, nil
}

// Len reports the number of stored events.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}
