package substrate

import "sync"

// ShardedCache is a best-effort, cross-goroutine cache: mutex-per-shard,
// hard per-shard capacity, and a pressure check ahead of every write. It
// never errors; a write under memory pressure or at shard capacity is
// simply dropped, and the caller re-derives the value. Grounded on
// ShardedSharedCache in runtime_component.hpp, generalized from
// std::unordered_map + std::pmr to a generic Go map.
type ShardedCache[K comparable, V any] struct {
	shards       []*cacheShard[K, V]
	shardMask    uint64
	perShardCap  int
	governor     *MemoryGovernor
	disabledOOM  bool
	disabledOOMM sync.Mutex
	hashFn       func(K) uint64
}

type cacheShard[K comparable, V any] struct {
	mu sync.Mutex
	m  map[K]V
}

// NewShardedCache builds a cache with shardCount (rounded up to a power of
// two) shards, each capped at ceil(totalEntries/shardCount). governor may
// be nil, in which case the cache never refuses writes for pressure.
func NewShardedCache[K comparable, V any](totalEntries, shardCount int, hashFn func(K) uint64, governor *MemoryGovernor) *ShardedCache[K, V] {
	if totalEntries <= 0 || shardCount <= 0 {
		return &ShardedCache[K, V]{hashFn: hashFn, governor: governor}
	}
	sc := roundUpPowerOfTwo(shardCount)
	perCap := (totalEntries + sc - 1) / sc
	shards := make([]*cacheShard[K, V], sc)
	for i := range shards {
		shards[i] = &cacheShard[K, V]{m: make(map[K]V, min(perCap, 16384))}
	}
	return &ShardedCache[K, V]{
		shards:      shards,
		shardMask:   uint64(sc - 1),
		perShardCap: perCap,
		hashFn:      hashFn,
		governor:    governor,
	}
}

func roundUpPowerOfTwo(v int) int {
	if v <= 1 {
		return 1
	}
	p := 1
	for p < v {
		p <<= 1
	}
	return p
}

func (c *ShardedCache[K, V]) Enabled() bool {
	if len(c.shards) == 0 || c.perShardCap == 0 {
		return false
	}
	c.disabledOOMM.Lock()
	defer c.disabledOOMM.Unlock()
	return !c.disabledOOM
}

func (c *ShardedCache[K, V]) shardFor(key K) *cacheShard[K, V] {
	idx := c.hashFn(key) & c.shardMask
	return c.shards[idx]
}

func (c *ShardedCache[K, V]) Get(key K) (V, bool) {
	var zero V
	if !c.Enabled() {
		return zero, false
	}
	shard := c.shardFor(key)
	shard.mu.Lock()
	defer shard.mu.Unlock()
	v, ok := shard.m[key]
	return v, ok
}

// Put inserts key/value if the cache is enabled, the shard has spare
// capacity, and the governor (if any) is not reporting memory pressure.
// Dropped writes are silent, matching the original's "best effort" cache.
func (c *ShardedCache[K, V]) Put(key K, value V) {
	if !c.Enabled() {
		return
	}
	if c.governor != nil && c.governor.InPressure() {
		return
	}
	shard := c.shardFor(key)
	shard.mu.Lock()
	defer shard.mu.Unlock()
	if len(shard.m) >= c.perShardCap {
		return
	}
	shard.m[key] = value
}

// DisableDueToOOM permanently disables the cache for the remainder of its
// lifetime; callers invoke this after a recovered allocation failure
// (Go cannot catch bad_alloc the way C++ does, but a caller that observes
// runtime.ReadMemStats pressure or a panic/recover around a large map
// growth can call this instead).
func (c *ShardedCache[K, V]) DisableDueToOOM() {
	c.disabledOOMM.Lock()
	defer c.disabledOOMM.Unlock()
	c.disabledOOM = true
}
