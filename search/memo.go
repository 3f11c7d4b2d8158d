package search

import "github.com/arxlab/neoalz/substrate"

// memoTable is a best-effort per-depth cache from boundary pair to the
// best accumulated weight seen so far at that depth. A state re-entered
// at the same depth with accumulated weight >= the stored value is
// pruned: any completion reachable from it was already explored, or
// will be, from the cheaper visit.
//
// Each depth is backed by a substrate.ShardedCache rather than a bare
// map, so the run's memory governor (the one the auto/batch drivers
// thread into every search.Run) also gates this one: a write under memory
// pressure is silently dropped by the cache itself, and ShouldPrune
// additionally refuses to even look up an entry while under pressure,
// per spec.md's "skip memoization entirely" rule — not just "stop
// growing it".
//
// "Best-effort" per spec: Disable() flips a flag that makes ShouldPrune
// always report "no entry" so a caller that hits an allocation failure
// can neutralize memoization mid-run without aborting the search. Go has
// no catchable bad_alloc, so put() treats a panic out of the underlying
// map growth as that failure signal and self-disables once, matching the
// documented deviation substrate.MemoryBallast takes for the same reason.
type memoTable struct {
	byDepth  []*substrate.ShardedCache[uint64, int]
	governor *substrate.MemoryGovernor
	disabled bool
}

const (
	memoEntriesPerDepth = 1 << 16
	memoShardCount      = 16
)

func newMemoTable(depths int, governor *substrate.MemoryGovernor) *memoTable {
	m := &memoTable{
		byDepth:  make([]*substrate.ShardedCache[uint64, int], depths),
		governor: governor,
	}
	for i := range m.byDepth {
		m.byDepth[i] = substrate.NewShardedCache[uint64, int](memoEntriesPerDepth, memoShardCount, mixBoundaryKey, governor)
	}
	return m
}

func boundaryKey(maskA, maskB uint32) uint64 {
	return uint64(maskA)<<32 | uint64(maskB)
}

// mixBoundaryKey is the cache's shard hash, a SplitMix64-style avalanche
// so adjacent boundary pairs don't collide onto the same shard.
func mixBoundaryKey(k uint64) uint64 {
	k ^= k >> 33
	k *= 0xff51afd7ed558ccd
	k ^= k >> 33
	k *= 0xc4ceb9fe1a85ec53
	k ^= k >> 33
	return k
}

// Disable neutralizes the table for the remainder of the run.
func (m *memoTable) Disable() { m.disabled = true }

// ShouldPrune reports whether depth/boundary has already been visited
// with an accumulated weight <= the current one, and if not, records
// the current (now-minimal) weight for future lookups.
func (m *memoTable) ShouldPrune(depth int, maskA, maskB uint32, accumulated int) bool {
	if m.disabled || depth >= len(m.byDepth) {
		return false
	}
	if m.governor != nil && m.governor.InPressure() {
		return false // under pressure: skip memoization entirely, not just growth
	}

	cache := m.byDepth[depth]
	key := boundaryKey(maskA, maskB)
	if prior, ok := cache.Get(key); ok && prior <= accumulated {
		return true
	}
	m.put(cache, key, accumulated)
	return false
}

func (m *memoTable) put(cache *substrate.ShardedCache[uint64, int], key uint64, value int) {
	defer func() {
		if recover() != nil {
			m.Disable()
		}
	}()
	cache.Put(key, value)
}
