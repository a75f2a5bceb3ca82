package saga

import (
	"context"
	"sync"
	"time"
)

// ScheduledJob is one delayed job captured by the memory scheduler.
type ScheduledJob struct {
	Delay time.Duration
	Job   Job
}

// MemoryScheduler records scheduled jobs instead of enqueueing them. It backs
// unit tests and local runs without a queue.
type MemoryScheduler struct {
	mu   sync.Mutex
	jobs []ScheduledJob
}

// NewMemoryScheduler returns an empty memory scheduler.
func NewMemoryScheduler() *MemoryScheduler { return &MemoryScheduler{} }

func (s *MemoryScheduler) ScheduleAfter(ctx context.Context, delay time.Duration, job Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append(s.jobs, ScheduledJob{Delay: delay, Job: job})
	return nil
}

// Jobs returns a copy of everything scheduled so far.
func (s *MemoryScheduler) Jobs() []ScheduledJob {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ScheduledJob, len(s.jobs))
	copy(out, s.jobs)
	return out
}

// MemoryCache is an in-memory IdempotencyCache with TTL expiry.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

// NewMemoryCache returns an empty memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: map[string]time.Time{}, now: time.Now}
}

func (c *MemoryCache) Seen(ctx context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	expiry, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	if c.now().After(expiry) {
		delete(c.entries, key)
		return false, nil
	}
	return true, nil
}

func (c *MemoryCache) Mark(ctx context.Context, key string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = c.now().Add(ttl)
	return nil
}
