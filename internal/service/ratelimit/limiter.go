package ratelimit

import (
    "sync"
    "time"
)

type bucket struct {
    tokens float64
    last   time.Time
}

// Limiter is a keyed token bucket: every key starts full at capacity and
// refills at refillPerSec tokens per second.
type Limiter struct {
    mu           sync.Mutex
    m            map[string]*bucket
    capacity     float64
    refillPerSec float64
    now          func() time.Time
}

func New(capacity, refillPerSec float64) *Limiter {
    return &Limiter{
        m:            make(map[string]*bucket),
        capacity:     capacity,
        refillPerSec: refillPerSec,
        now:          time.Now,
    }
}

// WithClock replaces time.Now; used by tests.
func (l *Limiter) WithClock(now func() time.Time) *Limiter {
    l.now = now
    return l
}

// Allow returns true if one token can be consumed for key.
func (l *Limiter) Allow(key string) bool {
    now := l.now()
    l.mu.Lock()
    defer l.mu.Unlock()

    b, ok := l.m[key]
    if !ok {
        b = &bucket{tokens: l.capacity, last: now}
        l.m[key] = b
    }
    if elapsed := now.Sub(b.last).Seconds(); elapsed > 0 {
        b.tokens += elapsed * l.refillPerSec
        if b.tokens > l.capacity {
            b.tokens = l.capacity
        }
        b.last = now
    }
    if b.tokens >= 1 {
        b.tokens--
        return true
    }
    return false
}
