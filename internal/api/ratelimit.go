package api

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Limiter is a sliding-window request limiter keyed by API key: at most max
// requests within any window. Idle keys expire from the underlying cache, so
// memory stays bounded no matter how many keys come and go.
type Limiter struct {
	mu      sync.Mutex
	entries *gocache.Cache
	max     int
	window  time.Duration
}

// NewLimiter creates a limiter allowing max requests per window per key.
func NewLimiter(max int, window time.Duration) *Limiter {
	return &Limiter{
		entries: gocache.New(window, 2*window),
		max:     max,
		window:  window,
	}
}

// Allow records a request for the key at the given time and reports whether
// it is within the limit. Callers should return 429 on false.
func (l *Limiter) Allow(key string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	var times []time.Time
	if v, ok := l.entries.Get(key); ok {
		times = v.([]time.Time)
	}

	cutoff := now.Add(-l.window)
	kept := times[:0]
	for _, t := range times {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}

	if len(kept) >= l.max {
		l.entries.Set(key, kept, l.window)
		return false
	}

	kept = append(kept, now)
	l.entries.Set(key, kept, l.window)
	return true
}
