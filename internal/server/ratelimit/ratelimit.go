// Package ratelimit provides per-client rate limiting using the token
// bucket algorithm.
package ratelimit

import (
	"sync"
	"time"
)

// bucket tracks the tokens available to one client. Tokens refill at a
// steady rate up to the burst capacity.
type bucket struct {
	tokens     float64
	lastRefill time.Time
}

// Info describes the limiter decision for response headers.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// Limiter manages token buckets for all clients of the recommend endpoints.
type Limiter struct {
	mu         sync.Mutex
	buckets    map[string]*bucket
	capacity   int
	refillRate float64 // tokens per second

	cleanupStop   chan struct{}
	cleanupTicker *time.Ticker
}

// NewLimiter allows capacity requests per window per client, with bursts up
// to capacity.
func NewLimiter(capacity int, window time.Duration) *Limiter {
	l := &Limiter{
		buckets:     make(map[string]*bucket),
		capacity:    capacity,
		refillRate:  float64(capacity) / window.Seconds(),
		cleanupStop: make(chan struct{}),
	}

	// Drop buckets idle long enough to be full again.
	l.cleanupTicker = time.NewTicker(5 * time.Minute)
	go l.cleanupLoop()

	return l
}

// Allow consumes a token for the client if one is available.
func (l *Limiter) Allow(clientID string) Info {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	b, ok := l.buckets[clientID]
	if !ok {
		b = &bucket{tokens: float64(l.capacity), lastRefill: now}
		l.buckets[clientID] = b
	} else {
		elapsed := now.Sub(b.lastRefill).Seconds()
		b.tokens = min(float64(l.capacity), b.tokens+elapsed*l.refillRate)
		b.lastRefill = now
	}

	info := Info{Limit: l.capacity}
	if b.tokens >= 1.0 {
		b.tokens--
		info.Allowed = true
		info.Remaining = int(b.tokens)
		return info
	}

	needed := 1.0 - b.tokens
	info.RetryAfter = time.Duration(needed / l.refillRate * float64(time.Second))
	return info
}

// Stop terminates the cleanup goroutine.
func (l *Limiter) Stop() {
	close(l.cleanupStop)
	l.cleanupTicker.Stop()
}

func (l *Limiter) cleanupLoop() {
	idle := time.Duration(float64(l.capacity)/l.refillRate*float64(time.Second)) + time.Minute
	for {
		select {
		case <-l.cleanupStop:
			return
		case now := <-l.cleanupTicker.C:
			l.mu.Lock()
			for id, b := range l.buckets {
				if now.Sub(b.lastRefill) > idle {
					delete(l.buckets, id)
				}
			}
			l.mu.Unlock()
		}
	}
}
