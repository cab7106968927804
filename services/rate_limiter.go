package services

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// authorStore is the subset of the ristretto cache the limiter relies on.
type authorStore interface {
	Get(key string) (time.Time, bool)
	SetWithTTL(key string, value time.Time, cost int64, ttl time.Duration) bool
	Wait()
	Close()
}

// RateLimiter lets one message per author through every window.
// Entries expire with the window so idle authors do not pile up.
// At most capacity authors are tracked at once; once full, the cache admission
// policy may refuse a newcomer, who is then let through untracked and counted in Dropped.
type RateLimiter struct {
	log     *slog.Logger
	mu      sync.Mutex
	cache   authorStore
	window  time.Duration
	now     func() time.Time
	dropped atomic.Int64
}

func NewRateLimiter(log *slog.Logger, window time.Duration, capacity int64) (*RateLimiter, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("rate limiter capacity must be positive, got %d", capacity)
	}
	cache, err := ristretto.NewCache(&ristretto.Config[string, time.Time]{
		NumCounters:        capacity * 10,
		MaxCost:            capacity,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}
	return &RateLimiter{log: log, cache: cache, window: window, now: time.Now}, nil
}

// Allow reports whether the author may be scored now.
// The first message of a window wins, the following ones are dropped until it elapses.
func (r *RateLimiter) Allow(author string) bool {
	if r.window <= 0 {
		return true
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if last, ok := r.cache.Get(author); ok && now.Sub(last) < r.window {
		return false
	}
	if !r.cache.SetWithTTL(author, now, 1, r.window) {
		r.dropped.Add(1)
		r.log.Warn("Rate limiter is full, author not tracked", "author", author)
		return true
	}
	r.cache.Wait()
	return true
}

// Dropped counts the authors the cache refused to track.
func (r *RateLimiter) Dropped() int64 {
	return r.dropped.Load()
}

func (r *RateLimiter) Close() {
	r.cache.Close()
}
