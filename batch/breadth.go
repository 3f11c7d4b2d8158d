package batch

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
// erroring.
const memoBudgetBytes uint64 = 8 * 1024 * 1024

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

// RunBreadth scans every job in parallel with a capped engine, workers
// pulling the next unclaimed job index from an atomic counter, per
// spec.md §4.7 step 2's worker-monitor layout (the monitor itself is an
// external-collaborator progress-printing concern per spec.md §1; this
// function is the worker side only).
func RunBreadth(desc cipher.Description, jobs []Job, cfg Configuration, governor *substrate.MemoryGovernor, resource *substrate.BoundedResource) []JobOutcome {
	outcomes := make([]JobOutcome, len(jobs))
	var nextIndex atomic.Int64

	workers := resolveThreadCount(cfg.ThreadCount)
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(workers)

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for {
				i := int(nextIndex.Add(1)) - 1
				if i >= len(jobs) {
					return nil
				}
				job := jobs[i]
				scfg := search.DefaultConfiguration(job.RoundCount)
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

				res, err := search.Run(scfg, desc, job.MaskA, job.MaskB)
				if reserved {
					resource.Release(memoBudgetBytes)
				}
				if err != nil {
					outcomes[i] = JobOutcome{JobIndex: i, Job: job}
					continue
				}
				outcomes[i] = JobOutcome{JobIndex: i, Job: job, Breadth: res}
			}
		})
	}
	_ = g.Wait()

	return outcomes
}
