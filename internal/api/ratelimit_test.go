package api

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiter_AllowsUpToMax(t *testing.T) {
	limiter := NewLimiter(3, time.Second)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for i := 1; i <= 3; i++ {
		assert.True(t, limiter.Allow("key-a", now), "request %d should be allowed", i)
	}
	assert.False(t, limiter.Allow("key-a", now), "request over the limit should be denied")
}

func TestLimiter_WindowSlides(t *testing.T) {
	limiter := NewLimiter(2, time.Second)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	require.True(t, limiter.Allow("key", base))
	require.True(t, limiter.Allow("key", base.Add(400*time.Millisecond)))
	require.False(t, limiter.Allow("key", base.Add(800*time.Millisecond)))

	// The first request has aged out of the window by now.
	assert.True(t, limiter.Allow("key", base.Add(1100*time.Millisecond)))
	assert.False(t, limiter.Allow("key", base.Add(1200*time.Millisecond)))
	assert.True(t, limiter.Allow("key", base.Add(1500*time.Millisecond)))
}

func TestLimiter_DeniedRequestsDoNotCount(t *testing.T) {
	limiter := NewLimiter(1, time.Second)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	require.True(t, limiter.Allow("key", base))

	// A burst of denied requests must not extend the block past the
	// original request's window.
	for i := 1; i <= 5; i++ {
		assert.False(t, limiter.Allow("key", base.Add(time.Duration(i)*100*time.Millisecond)))
	}
	assert.True(t, limiter.Allow("key", base.Add(1050*time.Millisecond)))
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	limiter := NewLimiter(1, time.Second)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	require.True(t, limiter.Allow("key-a", now))
	require.False(t, limiter.Allow("key-a", now))

	assert.True(t, limiter.Allow("key-b", now), "a saturated key must not affect others")
}

func TestLimiter_ConcurrentCallers(t *testing.T) {
	limiter := NewLimiter(1000, time.Minute)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	done := make(chan bool)
	for g := 0; g < 8; g++ {
		go func(g int) {
			ok := true
			for i := 0; i < 100; i++ {
				key := fmt.Sprintf("key-%d", g%2)
				if !limiter.Allow(key, now.Add(time.Duration(i)*time.Millisecond)) {
					ok = false
				}
			}
			done <- ok
		}(g)
	}

	for g := 0; g < 8; g++ {
		assert.True(t, <-done, "all requests stay under the limit")
	}
}
