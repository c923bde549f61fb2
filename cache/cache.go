// Package cache provides the generic LRU caches behind the path sampler.
//
// Two implementations share the [Store] interface:
//
// # LRU[K, V]
//
// A mutex-guarded LRU owned by a single sampler. This is the default: each
// sampler gets its own, so tests and independent generator calls never
// observe each other's entries.
//
//	c := cache.NewLRU[string, int](512)
//	c.Set("M0,0 L1,1", 42)
//	v, ok := c.Get("M0,0 L1,1")
//
// # Sharded[K, V]
//
// A cache split over 16 independently locked shards, for a sampler shared
// by many goroutines (for example every job of a batch run).
//
//	c := cache.NewSharded[string, int](256, cache.StringHasher)
//
// Both caches store values as-is. Callers that hand out cached slices must
// copy them.
package cache

import "sync"

// DefaultCapacity is the capacity used when a non-positive one is given.
const DefaultCapacity = 512

// Store is the minimal cache contract used by consumers of this package.
type Store[K comparable, V any] interface {
	Get(key K) (V, bool)
	Set(key K, value V)
	GetOrCreate(key K, create func() V) V
}

// Stats reports cache effectiveness.
type Stats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// HitRate returns Hits / (Hits + Misses), or 0 before any lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// LRU is a thread-safe least-recently-used cache with a fixed capacity.
//
// LRU must not be copied after creation (it holds a mutex).
type LRU[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]*lruEntry[K, V]
	order    lruList[K]
	capacity int
	stats    Stats
}

type lruEntry[K comparable, V any] struct {
	value V
	node  *lruNode[K]
}

var _ Store[string, int] = (*LRU[string, int])(nil)

// NewLRU creates a cache holding at most capacity entries.
// If capacity <= 0, DefaultCapacity is used.
func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &LRU[K, V]{
		entries:  make(map[K]*lruEntry[K, V]),
		capacity: capacity,
	}
}

// Get retrieves a value and marks it as most recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.getLocked(key)
}

func (c *LRU[K, V]) getLocked(key K) (V, bool) {
	entry, ok := c.entries[key]
	if !ok {
		c.stats.Misses++
		var zero V
		return zero, false
	}
	c.order.moveToFront(entry.node)
	c.stats.Hits++
	return entry.value, true
}

// Set stores a value, evicting the least recently used entry when full.
func (c *LRU[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setLocked(key, value)
}

func (c *LRU[K, V]) setLocked(key K, value V) {
	if existing, ok := c.entries[key]; ok {
		existing.value = value
		c.order.moveToFront(existing.node)
		return
	}
	for c.order.len >= c.capacity {
		oldest, ok := c.order.removeOldest()
		if !ok {
			break
		}
		delete(c.entries, oldest)
		c.stats.Evictions++
	}
	c.entries[key] = &lruEntry[K, V]{value: value, node: c.order.pushFront(key)}
}

// GetOrCreate returns the cached value for key, calling create under the
// lock on a miss so concurrent callers never compute the same entry twice.
func (c *LRU[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.getLocked(key); ok {
		return v
	}
	v := create()
	c.setLocked(key, v)
	return v
}

// Len returns the number of cached entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear removes all entries. Statistics are kept.
func (c *LRU[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[K]*lruEntry[K, V])
	c.order = lruList[K]{}
}

// Stats returns a snapshot of the cache statistics.
func (c *LRU[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.stats
	s.Len = len(c.entries)
	s.Capacity = c.capacity
	return s
}
