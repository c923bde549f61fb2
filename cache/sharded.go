package cache

import "hash/fnv"

// shardCount must be a power of 2 for fast modulo via bitwise AND.
const (
	shardCount = 16
	shardMask  = shardCount - 1
)

// Hasher computes the hash used for shard selection.
type Hasher[K any] func(K) uint64

// StringHasher computes the FNV-1a hash of a string key.
func StringHasher(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s)) // fnv.Write never returns an error
	return h.Sum64()
}

// Sharded spreads entries over 16 LRU shards to reduce lock contention.
// Total capacity is approximately capacity * 16.
type Sharded[K comparable, V any] struct {
	shards [shardCount]*LRU[K, V]
	hasher Hasher[K]
}

var _ Store[string, int] = (*Sharded[string, int])(nil)

// NewSharded creates a sharded cache with the given per-shard capacity.
// If capacity <= 0, DefaultCapacity is used.
func NewSharded[K comparable, V any](capacity int, hasher Hasher[K]) *Sharded[K, V] {
	c := &Sharded[K, V]{hasher: hasher}
	for i := range c.shards {
		c.shards[i] = NewLRU[K, V](capacity)
	}
	return c
}

func (c *Sharded[K, V]) shard(key K) *LRU[K, V] {
	return c.shards[c.hasher(key)&shardMask]
}

// Get retrieves a value from the shard owning key.
func (c *Sharded[K, V]) Get(key K) (V, bool) {
	return c.shard(key).Get(key)
}

// Set stores a value in the shard owning key.
func (c *Sharded[K, V]) Set(key K, value V) {
	c.shard(key).Set(key, value)
}

// GetOrCreate returns the cached value or creates it under the shard lock.
func (c *Sharded[K, V]) GetOrCreate(key K, create func() V) V {
	return c.shard(key).GetOrCreate(key, create)
}

// Len returns the total number of entries across all shards.
func (c *Sharded[K, V]) Len() int {
	n := 0
	for _, s := range c.shards {
		n += s.Len()
	}
	return n
}

// Stats aggregates statistics over all shards. Capacity is the total.
func (c *Sharded[K, V]) Stats() Stats {
	var total Stats
	for _, s := range c.shards {
		st := s.Stats()
		total.Len += st.Len
		total.Capacity += st.Capacity
		total.Hits += st.Hits
		total.Misses += st.Misses
		total.Evictions += st.Evictions
	}
	return total
}
