package ratelimit

import (
	"sync"
	"time"
)

// Limiter defines the interface for rate limiting
type Limiter interface {
	// Allow checks if a request is allowed under the current rate limit
	Allow() bool
	// Wait blocks until the rate limit allows another request
	Wait()
	// Reset resets the rate limiter state
	Reset()
}

// Interval enforces a minimum delay between consecutive requests. The delay
// applies regardless of response latency: Wait measures from the start of the
// previous request, not from its completion.
type Interval struct {
	delay time.Duration
	last  time.Time
	mu    sync.Mutex

	// sleep is swappable for tests
	sleep func(time.Duration)
}

// NewInterval creates a limiter with a fixed minimum inter-request delay
func NewInterval(delay time.Duration) *Interval {
	return &Interval{
		delay: delay,
		sleep: time.Sleep,
	}
}

// Allow reports whether a request may proceed without waiting, and marks the
// request as started if so
func (i *Interval) Allow() bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	now := time.Now()
	if i.last.IsZero() || now.Sub(i.last) >= i.delay {
		i.last = now
		return true
	}
	return false
}

// Wait blocks until the minimum delay since the previous request has elapsed,
// then marks the request as started
func (i *Interval) Wait() {
	i.mu.Lock()
	remaining := i.delay - time.Since(i.last)
	if i.last.IsZero() {
		remaining = 0
	}
	i.mu.Unlock()

	if remaining > 0 {
		i.sleep(remaining)
	}

	i.mu.Lock()
	i.last = time.Now()
	i.mu.Unlock()
}

// Reset clears the limiter so the next request proceeds immediately
func (i *Interval) Reset() {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.last = time.Time{}
}
