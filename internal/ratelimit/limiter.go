// Package ratelimit implements a per-key sliding-window request limiter.
//
// Each key (usually a client address) keeps the timestamps of its admitted
// requests. A request is admitted when fewer than Limit timestamps fall
// inside the trailing Window. Keys that stay idle for a full window expire
// from the store.
package ratelimit

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// Defaults applied when Config fields are unset.
const (
	DefaultLimit  = 30
	DefaultWindow = time.Minute
)

// Config configures a Limiter.
type Config struct {
	Limit  int
	Window time.Duration
	// Now overrides the clock; tests use it to move time forward.
	Now func() time.Time
}

// Limiter is safe for concurrent use.
type Limiter struct {
	mu     sync.Mutex
	store  *cache.Cache
	limit  int
	window time.Duration
	now    func() time.Time
}

// New constructs a Limiter from cfg.
func New(cfg Config) *Limiter {
	l := &Limiter{limit: cfg.Limit, window: cfg.Window, now: cfg.Now}
	if l.limit <= 0 {
		l.limit = DefaultLimit
	}
	if l.window <= 0 {
		l.window = DefaultWindow
	}
	if l.now == nil {
		l.now = time.Now
	}
	l.store = cache.New(l.window, 2*l.window)
	return l
}

// Limit returns the number of requests admitted per window.
func (l *Limiter) Limit() int { return l.limit }

// Window returns the rolling window length.
func (l *Limiter) Window() time.Duration { return l.window }

// Allow records a request for key and reports whether it is admitted,
// along with the budget left after this request. Rejected requests are not
// recorded.
func (l *Limiter) Allow(key string) (bool, int) {
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()

	hits := l.recent(key, now)
	if len(hits) >= l.limit {
		l.store.Set(key, hits, l.window)
		return false, 0
	}
	hits = append(hits, now)
	l.store.Set(key, hits, l.window)
	return true, l.limit - len(hits)
}

// Remaining reports how many more requests key may make right now.
func (l *Limiter) Remaining(key string) int {
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()
	n := l.limit - len(l.recent(key, now))
	if n < 0 {
		return 0
	}
	return n
}

// Keys returns the number of tracked keys, including ones not yet swept.
func (l *Limiter) Keys() int { return l.store.ItemCount() }

// recent returns the timestamps of key still inside the window ending at
// now as a new slice; the stored slice is never modified. Callers hold l.mu.
func (l *Limiter) recent(key string, now time.Time) []time.Time {
	v, ok := l.store.Get(key)
	if !ok {
		return nil
	}
	hits := v.([]time.Time)
	kept := make([]time.Time, 0, len(hits))
	for _, t := range hits {
		if now.Sub(t) < l.window {
			kept = append(kept, t)
		}
	}
	return kept
}
