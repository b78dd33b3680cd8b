package cache_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/arshowroom/pkg/cache"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newClock() *clock {
	return &clock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func TestLRUCache_Basic(t *testing.T) {
	t.Parallel()

	c := cache.NewLRUCache[string, int](3)
	c.Put("qr:256", 1)
	c.Put("qr:512", 2)

	val, ok := c.Get("qr:256")
	assert.True(t, ok)
	assert.Equal(t, 1, val)

	_, ok = c.Get("missing")
	assert.False(t, ok)

	old, existed := c.Put("qr:256", 10)
	assert.True(t, existed)
	assert.Equal(t, 1, old)
	assert.Equal(t, 2, c.Len())
}

func TestLRUCache_Eviction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		touch   func(c *cache.LRUCache[string, int])
		evicted string
		kept    string
	}{
		{"oldest goes first", func(*cache.LRUCache[string, int]) {}, "a", "b"},
		{"get refreshes recency", func(c *cache.LRUCache[string, int]) { c.Get("a") }, "b", "a"},
		{"put refreshes recency", func(c *cache.LRUCache[string, int]) { c.Put("a", 10) }, "b", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := cache.NewLRUCache[string, int](3)
			c.Put("a", 1)
			c.Put("b", 2)
			c.Put("c", 3)
			tt.touch(c)
			c.Put("d", 4)

			_, ok := c.Get(tt.evicted)
			assert.False(t, ok)
			_, ok = c.Get(tt.kept)
			assert.True(t, ok)
			assert.Equal(t, 3, c.Len())
		})
	}
}

func TestLRUCache_EvictionCallback(t *testing.T) {
	t.Parallel()

	c := cache.NewLRUCache[string, int](2)
	evicted := make(map[string]int)
	c.SetEvictCallback(func(key string, value int) {
		evicted[key] = value
	})

	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3)
	assert.Equal(t, map[string]int{"a": 1}, evicted)

	c.Clear()
	assert.Equal(t, map[string]int{"a": 1, "b": 2, "c": 3}, evicted)
	assert.Equal(t, 0, c.Len())
}

func TestLRUCache_Remove(t *testing.T) {
	t.Parallel()

	c := cache.NewLRUCache[string, int](3)
	c.Put("a", 1)

	val, ok := c.Remove("a")
	assert.True(t, ok)
	assert.Equal(t, 1, val)

	_, ok = c.Remove("a")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestLRUCache_TTL(t *testing.T) {
	t.Parallel()

	clk := newClock()
	c := cache.NewLRUCache[string, int](2, cache.WithTTL(time.Minute), cache.WithClock(clk.Now))

	c.Put("a", 1)
	clk.Advance(59 * time.Second)
	_, ok := c.Get("a")
	assert.True(t, ok)

	clk.Advance(time.Second)
	_, ok = c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())

	t.Run("put over expired entry reports no previous value", func(t *testing.T) {
		clk := newClock()
		c := cache.NewLRUCache[string, int](2, cache.WithTTL(time.Minute), cache.WithClock(clk.Now))
		c.Put("a", 1)
		clk.Advance(2 * time.Minute)
		_, existed := c.Put("a", 2)
		assert.False(t, existed)
		val, ok := c.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 2, val)
	})

	t.Run("expired entries are purged before live ones", func(t *testing.T) {
		clk := newClock()
		c := cache.NewLRUCache[string, int](2, cache.WithTTL(time.Minute), cache.WithClock(clk.Now))
		c.Put("old", 1)
		clk.Advance(30 * time.Second)
		c.Put("live", 2)
		c.Get("old")
		clk.Advance(45 * time.Second)
		c.Put("new", 3)

		_, ok := c.Get("live")
		assert.True(t, ok)
		_, ok = c.Get("new")
		assert.True(t, ok)
		_, ok = c.Get("old")
		assert.False(t, ok)
	})
}

func TestLRUCache_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { cache.NewLRUCache[string, int](0) })
	assert.Panics(t, func() { cache.NewLRUCache[string, int](-1) })
	assert.Panics(t, func() { cache.WithTTL(-time.Second) })
	assert.Panics(t, func() { cache.WithClock(nil) })
}

func TestLRUCache_Concurrent(t *testing.T) {
	t.Parallel()

	c := cache.NewLRUCache[int, int](50, cache.WithTTL(time.Hour))
	var wg sync.WaitGroup
	for i := range 100 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			c.Put(n, n*2)
			c.Get(n)
			if n%2 == 0 {
				c.Remove(n)
			}
		}(i)
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Len(), 50)
}

func BenchmarkLRUCache_Mixed(b *testing.B) {
	c := cache.NewLRUCache[int, int](1000)

	b.ResetTimer()
	for i := range b.N {
		if i%2 == 0 {
			c.Put(i%2000, i)
		} else {
			c.Get(i % 2000)
		}
	}
}
