package candidates

import (
	"sort"

	"github.com/arxlab/neoalz/weight"
)

// SubConstCandidates generates a small heuristic pool of input masks for
// a modular add/sub-by-constant gate with fixed output mask beta and
// constant k, filtered by the exact weight operator against weightCap.
// This is a deliberate, documented approximation (SPEC_FULL.md / DESIGN.md
// Open Question 1): the pool is {beta, 0, 0xFFFFFFFF, beta ^ (1<<i) for
// i < 12}, not a complete enumerator, and may miss the true best mask.
func SubConstCandidates(beta, k uint32, weightCap, maxCandidates int, isSub bool) []SubConstCandidate {
	pool := make([]uint32, 0, 15)
	pool = append(pool, beta, 0, 0xFFFFFFFF)
	for i := 0; i < 12; i++ {
		pool = append(pool, beta^(1<<uint(i)))
	}

	seen := map[uint32]bool{}
	var out []SubConstCandidate
	for _, alpha := range pool {
		if seen[alpha] {
			continue
		}
		seen[alpha] = true
		var w int
		var ok bool
		if isSub {
			w, ok = weight.SubConstWeight(alpha, beta, k)
		} else {
			w, ok = weight.AddConstWeight(alpha, beta, k)
		}
		if ok && w <= weightCap {
			out = append(out, SubConstCandidate{InputMask: alpha, Weight: w})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Weight != out[j].Weight {
			return out[i].Weight < out[j].Weight
		}
		return out[i].InputMask < out[j].InputMask
	})
	if maxCandidates > 0 && len(out) > maxCandidates {
		out = out[:maxCandidates]
	}
	return out
}
