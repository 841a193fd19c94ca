package cache

import (
	"context"
	"errors"
	"time"
)

// LayeredCache implements a two-level cache: a fast local L1 in front of a
// shared L2 (Redis in production).
type LayeredCache struct {
	l1    Service
	l2    Service
	l1TTL time.Duration
}

// LayeredOption configures Layered cache.
type LayeredOption func(*LayeredCache)

// WithL1TTL bounds how long a value promoted from L2 lives in L1.
func WithL1TTL(ttl time.Duration) LayeredOption {
	return func(lc *LayeredCache) {
		lc.l1TTL = ttl
	}
}

// NewLayeredCache stacks l1 in front of l2.
func NewLayeredCache(l1, l2 Service, opts ...LayeredOption) *LayeredCache {
	lc := &LayeredCache{l1: l1, l2: l2, l1TTL: time.Minute}
	for _, opt := range opts {
		opt(lc)
	}
	return lc
}

func (lc *LayeredCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	// Write-through: L2 first, then L1
	if err := lc.l2.Set(ctx, key, value, expiration); err != nil {
		return err
	}
	return lc.l1.Set(ctx, key, value, lc.localTTL(expiration))
}

func (lc *LayeredCache) Get(ctx context.Context, key string, dest interface{}) error {
	if err := lc.l1.Get(ctx, key, dest); err == nil {
		return nil
	}

	var raw []byte
	if err := lc.l2.Get(ctx, key, &raw); err != nil {
		return err
	}
	_ = lc.l1.Set(ctx, key, raw, lc.l1TTL)
	return decode(raw, dest)
}

func (lc *LayeredCache) Delete(ctx context.Context, keys ...string) error {
	_ = lc.l1.Delete(ctx, keys...)
	return lc.l2.Delete(ctx, keys...)
}

func (lc *LayeredCache) Exists(ctx context.Context, keys ...string) (bool, error) {
	if ok, err := lc.l1.Exists(ctx, keys...); err == nil && ok {
		return true, nil
	}
	return lc.l2.Exists(ctx, keys...)
}

// Close closes both cache layers.
func (lc *LayeredCache) Close() error {
	return errors.Join(lc.l1.Close(), lc.l2.Close())
}

func (lc *LayeredCache) localTTL(expiration time.Duration) time.Duration {
	if expiration > 0 && expiration < lc.l1TTL {
		return expiration
	}
	return lc.l1TTL
}
