package service

import (
	"sync"
	"time"
)

const staleBucketAge = 10 * time.Minute

// TokenBucket is an in-memory per-key rate limiter used to throttle
// login attempts by client address. It is safe for concurrent use.
type TokenBucket struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	rate      float64 // tokens added per second
	capacity  float64 // maximum tokens
	lastSweep time.Time
}

type bucket struct {
	tokens float64
	last   time.Time
}

// NewTokenBucket creates a rate limiter that allows up to capacity calls
// per key in a burst, refilling at rate tokens per second.
func NewTokenBucket(rate, capacity float64) *TokenBucket {
	return &TokenBucket{
		buckets:   make(map[string]*bucket),
		rate:      rate,
		capacity:  capacity,
		lastSweep: time.Now(),
	}
}

// Allow reports whether the given key may proceed, consuming one token.
func (tb *TokenBucket) Allow(key string) bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	tb.sweepLocked(now)

	b, ok := tb.buckets[key]
	if !ok {
		b = &bucket{tokens: tb.capacity, last: now}
		tb.buckets[key] = b
	}

	elapsed := now.Sub(b.last).Seconds()
	b.tokens = min(b.tokens+elapsed*tb.rate, tb.capacity)
	b.last = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// sweepLocked drops buckets that have been idle long enough to be full
// again. Runs at most once per stale age; caller must hold the lock.
func (tb *TokenBucket) sweepLocked(now time.Time) {
	if now.Sub(tb.lastSweep) < staleBucketAge {
		return
	}
	cutoff := now.Add(-staleBucketAge)
	for key, b := range tb.buckets {
		if b.last.Before(cutoff) {
			delete(tb.buckets, key)
		}
	}
	tb.lastSweep = now
}
