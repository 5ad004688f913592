// Package ratelimit provides a token-bucket limiter keyed by client, used to
// shield the catalog and role endpoints from request floods.
package ratelimit

import (
	"sync"
	"time"
)

// tokenBucket refills continuously at refillRate tokens per second up to
// capacity
type tokenBucket struct {
	mu         sync.Mutex
	capacity   float64
	tokens     float64
	refillRate float64
	lastRefill time.Time
}

func newTokenBucket(capacity int, refillRate float64) *tokenBucket {
	return &tokenBucket{
		capacity:   float64(capacity),
		tokens:     float64(capacity),
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

func (b *tokenBucket) allow(now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	elapsed := now.Sub(b.lastRefill).Seconds()
	b.tokens = min(b.capacity, b.tokens+elapsed*b.refillRate)
	b.lastRefill = now

	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		return true
	}
	return false
}

// Limiter manages one token bucket per key. Buckets idle longer than the TTL
// are swept to bound memory.
type Limiter struct {
	mu         sync.Mutex
	buckets    map[string]*tokenBucket
	capacity   int
	refillRate float64
	ttl        time.Duration
}

// NewLimiter creates a keyed limiter allowing a burst of capacity requests and
// a sustained refillRate requests per second per key. A zero ttl keeps buckets
// forever.
func NewLimiter(capacity int, refillRate float64, ttl time.Duration) *Limiter {
	l := &Limiter{
		buckets:    make(map[string]*tokenBucket),
		capacity:   capacity,
		refillRate: refillRate,
		ttl:        ttl,
	}
	if ttl > 0 {
		go l.sweep()
	}
	return l
}

// Allow reports whether a request for the key fits within its budget
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	bucket, ok := l.buckets[key]
	if !ok {
		bucket = newTokenBucket(l.capacity, l.refillRate)
		l.buckets[key] = bucket
	}
	l.mu.Unlock()

	return bucket.allow(time.Now())
}

func (l *Limiter) sweep() {
	ticker := time.NewTicker(l.ttl)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		l.mu.Lock()
		for key, bucket := range l.buckets {
			bucket.mu.Lock()
			idle := now.Sub(bucket.lastRefill) > l.ttl
			bucket.mu.Unlock()
			if idle {
				delete(l.buckets, key)
			}
		}
		l.mu.Unlock()
	}
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
