package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

type payload struct {
	Title string  `json:"title"`
	Score float64 `json:"score"`
}

func newTestMemory(t *testing.T, clock *fakeClock, opts ...MemoryOption) *MemoryCache {
	t.Helper()
	opts = append(opts, WithMemoryClock(clock.Now))
	mc := NewMemoryCache(opts...)
	t.Cleanup(func() { _ = mc.Close() })
	return mc
}

func TestMemoryCacheRoundTripsStructs(t *testing.T) {
	ctx := context.Background()
	mc := newTestMemory(t, &fakeClock{t: time.Now()})

	require.NoError(t, mc.Set(ctx, "k", []payload{{"a", 0.5}}, time.Hour))

	var got []payload
	require.NoError(t, mc.Get(ctx, "k", &got))
	assert.Equal(t, []payload{{"a", 0.5}}, got)

	// mutating the copy must not leak into the cache
	got[0].Title = "changed"
	var again []payload
	require.NoError(t, mc.Get(ctx, "k", &again))
	assert.Equal(t, "a", again[0].Title)
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{t: time.Date(2025, 7, 17, 9, 0, 0, 0, time.UTC)}
	mc := newTestMemory(t, clock)

	require.NoError(t, mc.Set(ctx, "news:2025-07-17", "x", time.Hour))
	ok, err := mc.Exists(ctx, "news:2025-07-17")
	require.NoError(t, err)
	assert.True(t, ok)

	clock.Advance(time.Hour + time.Second)

	var s string
	assert.ErrorIs(t, mc.Get(ctx, "news:2025-07-17", &s), ErrCacheMiss)
	ok, err = mc.Exists(ctx, "news:2025-07-17")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCacheEvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{t: time.Now()}
	mc := newTestMemory(t, clock, WithMemoryMaxSize(2))

	require.NoError(t, mc.Set(ctx, "a", "1", time.Hour))
	clock.Advance(time.Second)
	require.NoError(t, mc.Set(ctx, "b", "2", time.Hour))
	clock.Advance(time.Second)

	var s string
	require.NoError(t, mc.Get(ctx, "a", &s)) // a is now fresher than b
	clock.Advance(time.Second)
	require.NoError(t, mc.Set(ctx, "c", "3", time.Hour))

	assert.Equal(t, 2, mc.Len())
	assert.ErrorIs(t, mc.Get(ctx, "b", &s), ErrCacheMiss)
	require.NoError(t, mc.Get(ctx, "a", &s))
	assert.Equal(t, "1", s)
}

func TestMemoryCacheDelete(t *testing.T) {
	ctx := context.Background()
	mc := newTestMemory(t, &fakeClock{t: time.Now()})

	require.NoError(t, mc.Set(ctx, "a", "1", 0))
	require.NoError(t, mc.Delete(ctx, "a"))

	var s string
	assert.ErrorIs(t, mc.Get(ctx, "a", &s), ErrCacheMiss)
}

func TestLayeredCachePromotesFromL2(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{t: time.Now()}
	l1 := newTestMemory(t, clock)
	l2 := newTestMemory(t, clock)
	lc := NewLayeredCache(l1, l2, WithL1TTL(time.Minute))

	require.NoError(t, l2.Set(ctx, "k", payload{"b", -0.2}, time.Hour))

	var got payload
	require.NoError(t, lc.Get(ctx, "k", &got))
	assert.Equal(t, payload{"b", -0.2}, got)

	ok, err := l1.Exists(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok, "value should be promoted to L1")

	clock.Advance(2 * time.Minute)
	ok, err = l1.Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok, "L1 copy should honour the L1 ttl")
}

func TestLayeredCacheWritesThrough(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{t: time.Now()}
	l1 := newTestMemory(t, clock)
	l2 := newTestMemory(t, clock)
	lc := NewLayeredCache(l1, l2)

	require.NoError(t, lc.Set(ctx, "k", "v", time.Hour))
	for _, layer := range []*MemoryCache{l1, l2} {
		var s string
		require.NoError(t, layer.Get(ctx, "k", &s))
		assert.Equal(t, "v", s)
	}

	require.NoError(t, lc.Delete(ctx, "k"))
	ok, err := lc.Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGenerateKey(t *testing.T) {
	assert.Equal(t, "news:2025-07-17", GenerateKey("news", "2025-07-17"))
	assert.Equal(t, "news", GenerateKey("news"))
}
