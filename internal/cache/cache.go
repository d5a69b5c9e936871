package cache

import (
	"sort"
	"sync"
)

// Cache is a generic thread-safe memo with a soft limit. When the cache
// grows past the limit, the least recently used quarter is evicted.
type Cache[K comparable, V any] struct {
	mu        sync.Mutex
	entries   map[K]*entry[V]
	softLimit int
	tick      int64 // monotonic access counter
	hits      uint64
	misses    uint64
}

type entry[V any] struct {
	value V
	atime int64
}

// New creates a cache. A softLimit of 0 means unlimited.
func New[K comparable, V any](softLimit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries:   make(map[K]*entry[V]),
		softLimit: softLimit,
	}
}

// Get returns the value stored for key.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.tick++
	e.atime = c.tick
	return e.value, true
}

// Set stores value for key.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store(key, value)
}

// GetOrCreate returns the cached value for key, calling create on a miss.
// create runs under the lock, so concurrent callers never build the same
// value twice. Failed creations are not cached.
func (c *Cache[K, V]) GetOrCreate(key K, create func() (V, error)) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		c.hits++
		c.tick++
		e.atime = c.tick
		return e.value, nil
	}
	c.misses++

	value, err := create()
	if err != nil {
		var zero V
		return zero, err
	}
	c.store(key, value)
	return value, nil
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{Len: len(c.entries), Capacity: c.softLimit, Hits: c.hits, Misses: c.misses}
}

// store inserts a value. Caller must hold c.mu.
func (c *Cache[K, V]) store(key K, value V) {
	c.tick++
	c.entries[key] = &entry[V]{value: value, atime: c.tick}
	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
}

// evictOldest shrinks the cache to three quarters of its soft limit.
// Caller must hold c.mu.
func (c *Cache[K, V]) evictOldest() {
	target := max(c.softLimit*3/4, 1)
	n := len(c.entries) - target
	if n <= 0 {
		return
	}

	type aged struct {
		key   K
		atime int64
	}
	all := make([]aged, 0, len(c.entries))
	for k, e := range c.entries {
		all = append(all, aged{k, e.atime})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].atime < all[j].atime })
	for _, a := range all[:n] {
		delete(c.entries, a.key)
	}
}

// Stats contains cache statistics.
type Stats struct {
	Len      int
	Capacity int // soft limit, 0 when unlimited
	Hits     uint64
	Misses   uint64
}
