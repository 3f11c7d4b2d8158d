package auto

import (
	"github.com/arxlab/neoalz/cipher"
	"github.com/arxlab/neoalz/substrate"
)

// Run drives the full auto pipeline: build the neighborhood, scan it in
// parallel (breadth), select the top-K by the spec's lex order, then
// deepen the #1 candidate, per spec.md §4.6.
//
// The run's memory substrate (spec.md §9's "Model as a single
// RuntimeContext owned by the driver and threaded through the engine")
// is armed once here via substrate.ConfigureForRun and threaded into
// every search.Run call (breadth and deep alike) as a single shared
// *substrate.MemoryGovernor, so a pressure event observed by one worker
// is visible to every other worker and to the memoization layer in the
// same run.
func Run(desc cipher.Description, startA, startB uint32, cfg Configuration) (Result, error) {
	resource, governor := substrate.ConfigureForRun(cfg.MemoryHeadroomOverrideMiB, cfg.MemoryHeadroomOverrideMiB > 0)

	ballast := substrate.NewMemoryBallast(governor.HeadroomBytes())
	ballast.Start()
	defer ballast.Stop()

	candidates := BuildCandidateSet(startA, startB, cfg.BreadthCandidateCount, cfg.MaxBitFlips, cfg.Seed)
	if len(candidates) == 0 {
		return Result{}, ErrNoCandidates
	}

	breadthResults := RunBreadth(desc, candidates, cfg, governor, resource)
	cfg.Logger.Progress("[Auto][Breadth] ", "breadth scan complete", map[string]any{
		"candidates": len(candidates),
	})

	list := newTopKList(cfg.TopK)
	for _, r := range breadthResults {
		list.Insert(r)
	}
	top := list.Snapshot()
	if len(top) == 0 {
		return Result{}, ErrNoFeasibleCandidate
	}

	best := top[0]
	deepRes, err := RunDeep(desc, best, cfg, best.JobIndex, governor, resource)
	if err != nil {
		return Result{}, err
	}
	if deepRes.Found {
		cfg.Logger.Improvement("[Auto][Deep] ", deepRes.BestWeight, deepRes.NodesVisited, 0)
	}

	return Result{
		BreadthTopK: top,
		Deep:        deepRes,
		DeepSeedJob: best,
	}, nil
}
