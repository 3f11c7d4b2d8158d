package substrate

import (
	"github.com/KimMachineGun/automemlimit/memlimit"
)

// ConfigureForRun is the Go analogue of pmr_configure_for_run: it samples
// host memory, derives a headroom, arms governor, and applies a
// cgroup-aware GOMEMLIMIT best-effort via automemlimit — mirroring the
// original's pmr_suggest_limit_bytes/pmr_configure_for_run pairing, with
// automemlimit standing in for the PMR bounded-resource cap the original
// computed by hand (runtime_component.hpp has no cgroup concept at all;
// automemlimit is the idiomatic Go equivalent).
//
// Returns the BoundedResource sized from the host sample (for the sharded
// cache and memoization tables to reserve against) and the governor armed
// with the same headroom. Both degrade gracefully: a failed GOMEMLIMIT
// application is ignored (the process simply runs without a soft memory
// limit), and a zero memory sample yields an unlimited BoundedResource.
func ConfigureForRun(overrideHeadroomMiB uint64, overrideProvided bool) (*BoundedResource, *MemoryGovernor) {
	sample := QuerySystemMemory()
	headroom := ComputeMemoryHeadroomBytes(sample.AvailablePhysicalBytes, overrideHeadroomMiB, overrideProvided)

	_, _ = memlimit.SetGoMemLimitWithOpts(
		memlimit.WithRatio(0.9),
		memlimit.WithProvider(memlimit.FromCgroup),
	)

	var limitBytes uint64
	if sample.TotalPhysicalBytes > headroom {
		limitBytes = sample.TotalPhysicalBytes - headroom
	}

	resource := NewBoundedResource(limitBytes)
	governor := NewMemoryGovernor()
	if headroom > 0 {
		governor.Enable(headroom)
	}
	return resource, governor
}
