package search

import "github.com/arxlab/neoalz/cipher"

// AutoGenerateRemainingRoundLB bootstraps a remaining-round lower-bound
// table by running the same engine, from the same start masks, for
// 1, 2, ..., roundCount rounds, with base reused for every sub-run
// except RoundCount/RemainingRoundLB/CheckpointWriter (which this
// function controls). The returned table has length roundCount+1;
// table[k] is the best weight found for a k-round run, i.e. a lower
// bound on any k-round tail of a longer search from the same start.
//
// wasBudgeted reports whether base carried a node or time budget, in
// which case the sub-runs were not truly exhaustive and the resulting
// table is only suggestive, not a strict lower bound (see
// Configuration.StrictLowerBound).
func AutoGenerateRemainingRoundLB(desc cipher.Description, startA, startB uint32, roundCount int, base Configuration) (table []int, wasBudgeted bool) {
	wasBudgeted = base.MaxNodes > 0 || base.MaxSeconds > 0
	table = make([]int, roundCount+1)
	for k := 1; k <= roundCount; k++ {
		sub := base
		sub.RoundCount = k
		sub.RemainingRoundLB = nil
		sub.CheckpointWriter = nil
		res, err := Run(sub, desc, startA, startB)
		if err != nil || !res.Found {
			continue // leave table[k] at its zero default: safe, just weak
		}
		table[k] = res.BestWeight
	}
	return table, wasBudgeted
}

// ResolveRemainingRoundLB applies the StrictLowerBound policy: if cfg
// demands a strict bound but the candidate table was generated under a
// budget, it is discarded in favor of an all-zero table (safe but
// weaker), per spec.md's "log, then proceed with all-zero LB" note —
// logging is the caller's responsibility (see SPEC_FULL.md's ambient
// logging section); this function only decides which table to use.
func ResolveRemainingRoundLB(cfg Configuration, candidate []int, wasBudgeted bool) []int {
	if cfg.StrictLowerBound && wasBudgeted {
		return make([]int, len(candidate))
	}
	return candidate
}
