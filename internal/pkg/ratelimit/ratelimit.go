// Package ratelimit provides a per-key token bucket limiter used to keep
// outbound sends under the provider's tolerance.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// PerKey tracks one token bucket per key (recipient).
type PerKey struct {
	mu      sync.Mutex
	entries map[string]*entry
	limit   rate.Limit
	burst   int
	maxIdle time.Duration
}

func NewPerKey(limit rate.Limit, burst int) *PerKey {
	return &PerKey{
		entries: make(map[string]*entry),
		limit:   limit,
		burst:   burst,
		maxIdle: 10 * time.Minute,
	}
}

// Allow reports whether the key may proceed now.
func (l *PerKey) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.entries[key] = e
	}
	e.lastSeen = time.Now()

	return e.limiter.Allow()
}

// StartCleanup evicts idle entries until stop is closed.
func (l *PerKey) StartCleanup(stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				l.evictStale()
			}
		}
	}()
}

func (l *PerKey) evictStale() {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := time.Now().Add(-l.maxIdle)
	for key, e := range l.entries {
		if e.lastSeen.Before(cutoff) {
			delete(l.entries, key)
		}
	}
}
