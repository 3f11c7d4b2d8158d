package auto

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/arxlab/neoalz/cipher"
	"github.com/arxlab/neoalz/search"
	"github.com/arxlab/neoalz/substrate"
)

// memoBudgetBytes is a rough per-job memoization-table footprint charged
// against the run's shared substrate.BoundedResource; a job that cannot
// reserve it runs with memoization disabled rather than blocking or
// erroring, consistent with the rest of this package's "best effort"
// degradation under pressure.
const memoBudgetBytes uint64 = 8 * 1024 * 1024

// resolveThreadCount mirrors spec.md §5's worker-count rule:
// min(max(1, requested), hardware_concurrency); requested == 0 means auto.
func resolveThreadCount(requested int) int {
	hw := runtime.NumCPU()
	if requested <= 0 {
		return hw
	}
	if requested > hw {
		return hw
	}
	return requested
}

// RunBreadth runs the reduced-budget engine over every candidate in
// parallel, each worker pulling the next unclaimed candidate index from
// an atomic counter (spec.md §4.6 step 2), and returns every candidate's
// result (not just the survivors — callers insert into a topKList
// themselves, e.g. via topKList.Insert, to keep this function a pure scan).
func RunBreadth(desc cipher.Description, candidates []JobResult, cfg Configuration, governor *substrate.MemoryGovernor, resource *substrate.BoundedResource) []JobResult {
	results := make([]JobResult, len(candidates))
	var nextIndex atomic.Int64

	workers := resolveThreadCount(cfg.ThreadCount)
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(workers)

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for {
				i := int(nextIndex.Add(1)) - 1
				if i >= len(candidates) {
					return nil
				}
				cand := candidates[i]
				scfg := search.DefaultConfiguration(cfg.RoundCount)
				scfg.MaxNodes = cfg.BreadthMaxNodes
				scfg.MaxRoundPredecessors = cfg.BreadthMaxRoundPredecessors
				scfg.MaxAddCandidates = cfg.BreadthMaxAddCandidates
				scfg.MaxSubCandidates = cfg.BreadthMaxSubCandidates
				if cfg.TargetWeight >= 0 {
					scfg.TargetWeight = cfg.TargetWeight
				}
				scfg.Governor = governor
				reserved := resource != nil && resource.TryReserve(memoBudgetBytes)
				if resource != nil && !reserved {
					scfg.MemoizationEnabled = false
				}

				res, err := search.Run(scfg, desc, cand.MaskA, cand.MaskB)
				if reserved {
					resource.Release(memoBudgetBytes)
				}
				if err != nil {
					// A (0,0) candidate is rejected by search.Run (the
					// neighborhood generator produces one, e.g. by flipping
					// the only set bit of a single-bit start): such an
					// infeasible job contributes nothing.
					results[i] = JobResult{JobIndex: i, MaskA: cand.MaskA, MaskB: cand.MaskB}
					continue
				}
				results[i] = JobResult{JobIndex: i, MaskA: cand.MaskA, MaskB: cand.MaskB, Result: res}
			}
		})
	}
	_ = g.Wait() // worker bodies never return a non-nil error

	return results
}
