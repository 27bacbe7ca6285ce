package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLRUCache(t *testing.T) {
	t.Run("stores and returns values", func(t *testing.T) {
		c := NewLRUCache[int](2, 0)
		c.Set("a", 1)

		v, ok := c.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 1, v)

		_, ok = c.Get("b")
		assert.False(t, ok)
	})

	t.Run("evicts least recently used", func(t *testing.T) {
		c := NewLRUCache[int](2, 0)
		c.Set("a", 1)
		c.Set("b", 2)
		c.Get("a")
		c.Set("c", 3)

		_, ok := c.Get("b")
		assert.False(t, ok)
		assert.Equal(t, 2, c.Size())
	})

	t.Run("overwrites existing keys", func(t *testing.T) {
		c := NewLRUCache[string](1, 0)
		c.Set("a", "old")
		c.Set("a", "new")

		v, _ := c.Get("a")
		assert.Equal(t, "new", v)
		assert.Equal(t, 1, c.Size())
	})

	t.Run("expires entries after ttl", func(t *testing.T) {
		now := time.Date(2025, 10, 31, 18, 46, 40, 0, time.UTC)
		c := NewLRUCache[int](4, time.Minute)
		c.now = func() time.Time { return now }

		c.Set("a", 1)
		c.Set("b", 2)
		now = now.Add(2 * time.Minute)

		assert.Equal(t, 2, c.CleanExpired())
		assert.Equal(t, 0, c.Size())
	})

	t.Run("zero ttl never expires", func(t *testing.T) {
		c := NewLRUCache[int](4, 0)
		c.Set("a", 1)
		assert.Equal(t, 0, c.CleanExpired())
		assert.Equal(t, 1, c.Size())
	})

	t.Run("delete removes entries", func(t *testing.T) {
		c := NewLRUCache[int](4, 0)
		c.Set("a", 1)
		c.Delete("a")
		c.Delete("missing")
		assert.Equal(t, 0, c.Size())
	})

	t.Run("is safe for concurrent use", func(t *testing.T) {
		c := NewLRUCache[int](8, 0)
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				c.Set("k", i)
				c.Get("k")
			}(i)
		}
		wg.Wait()
		assert.Equal(t, 1, c.Size())
	})
}
