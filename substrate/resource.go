package substrate

import "sync/atomic"

// BoundedResource is an atomic byte-budget counter, the Go analogue of
// runtime_component.hpp's BoundedMemoryResource: it does not allocate
// memory itself, but lets callers that DO allocate (the sharded cache,
// memoization tables) reserve and release against a shared cap so they
// can refuse further growth instead of letting the Go runtime OOM-kill
// the process. A zero limit means unlimited.
type BoundedResource struct {
	limitBytes     atomic.Uint64
	allocatedBytes atomic.Uint64
}

// NewBoundedResource returns a resource with the given byte cap (0 = unlimited).
func NewBoundedResource(limitBytes uint64) *BoundedResource {
	r := &BoundedResource{}
	r.limitBytes.Store(limitBytes)
	return r
}

// SetLimitBytes updates the cap. Safe to call concurrently with TryReserve/Release.
func (r *BoundedResource) SetLimitBytes(limitBytes uint64) {
	r.limitBytes.Store(limitBytes)
}

func (r *BoundedResource) LimitBytes() uint64 {
	return r.limitBytes.Load()
}

func (r *BoundedResource) AllocatedBytes() uint64 {
	return r.allocatedBytes.Load()
}

// RemainingBytes returns the unreserved budget, or math.MaxUint64 if unlimited.
func (r *BoundedResource) RemainingBytes() uint64 {
	limit := r.limitBytes.Load()
	if limit == 0 {
		return ^uint64(0)
	}
	allocated := r.allocatedBytes.Load()
	if allocated >= limit {
		return 0
	}
	return limit - allocated
}

// TryReserve attempts to charge n bytes against the budget, returning false
// (and changing nothing) if doing so would exceed the cap. Unlimited
// resources (limit == 0) always succeed.
func (r *BoundedResource) TryReserve(n uint64) bool {
	for {
		limit := r.limitBytes.Load()
		current := r.allocatedBytes.Load()
		if limit != 0 && current+n > limit {
			return false
		}
		if r.allocatedBytes.CompareAndSwap(current, current+n) {
			return true
		}
	}
}

// Release gives back n bytes previously reserved with TryReserve.
func (r *BoundedResource) Release(n uint64) {
	for {
		current := r.allocatedBytes.Load()
		next := current - n
		if n > current {
			next = 0
		}
		if r.allocatedBytes.CompareAndSwap(current, next) {
			return
		}
	}
}
