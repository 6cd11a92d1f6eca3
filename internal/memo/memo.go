// Package memo provides a small bounded memoization cache that is safe for
// concurrent use.
package memo

import "sync"

// Cache memoizes computed values by key. When the cache grows past its
// bound an arbitrary entry is evicted.
type Cache[K comparable, V any] struct {
	limit   int
	mu      sync.RWMutex
	entries map[K]V
}

// New returns a Cache holding at most limit entries; limit <= 0 means
// unbounded.
func New[K comparable, V any](limit int) *Cache[K, V] {
	return &Cache[K, V]{
		limit:   limit,
		entries: make(map[K]V),
	}
}

// Get returns the cached value for key, calling fill to compute it on a
// miss. Concurrent callers may race to fill the same key; the first value
// stored wins and later fills for that key are discarded.
func (c *Cache[K, V]) Get(key K, fill func(K) V) V {
	c.mu.RLock()
	v, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return v
	}

	v = fill(key)

	c.mu.Lock()
	defer c.mu.Unlock()
	if have, ok := c.entries[key]; ok {
		return have
	}
	if c.limit > 0 && len(c.entries) >= c.limit {
		for k := range c.entries {
			delete(c.entries, k)
			break
		}
	}
	c.entries[key] = v
	return v
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Flush empties the cache.
func (c *Cache[K, V]) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}
