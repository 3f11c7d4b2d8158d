package candidates

import (
	"sort"

	"github.com/arxlab/neoalz/injection"
)

// InjectionMasks enumerates up to maxElements distinct correlated input
// masks from an injection.Transition's affine subspace, sorted ascending
// for deterministic downstream iteration. maxElements <= 0 enumerates the
// full 2^rank subspace.
func InjectionMasks(tr injection.Transition, maxElements int) []uint32 {
	if tr.Subspace.Rank == 0 {
		return []uint32{tr.Subspace.Offset}
	}
	out := make([]uint32, 0, 1<<uint(tr.Subspace.Rank))
	tr.Subspace.Walk(maxElements, func(mask uint32) bool {
		out = append(out, mask)
		return true
	})
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
