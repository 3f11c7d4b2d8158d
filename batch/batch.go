package batch

import (
	"sort"

	"github.com/arxlab/neoalz/cipher"
	"github.com/arxlab/neoalz/substrate"
)

// Run drives the full batch pipeline, per spec.md §4.7: parallel breadth
// over every job, a global top-K of size min(len(jobs), workerCount),
// parallel deep on the K survivors, and aggregation by the smallest deep
// weight (ties broken by job index).
//
// As in package auto, the run's memory substrate is armed once via
// substrate.ConfigureForRun and threaded as a single shared
// *substrate.MemoryGovernor/*substrate.BoundedResource pair into every
// search.Run call across both stages (spec.md §9's single RuntimeContext
// owned by the driver).
func Run(desc cipher.Description, jobs []Job, cfg Configuration) (Result, error) {
	if len(jobs) == 0 {
		return Result{}, ErrNoJobs
	}

	resource, governor := substrate.ConfigureForRun(cfg.MemoryHeadroomOverrideMiB, cfg.MemoryHeadroomOverrideMiB > 0)
	ballast := substrate.NewMemoryBallast(governor.HeadroomBytes())
	ballast.Start()
	defer ballast.Stop()

	breadthOutcomes := RunBreadth(desc, jobs, cfg, governor, resource)
	cfg.Logger.Progress("[Batch][Breadth] ", "breadth scan complete", map[string]any{
		"jobs": len(jobs),
	})

	k := resolveThreadCount(cfg.ThreadCount)
	if k > len(jobs) {
		k = len(jobs)
	}
	list := newTopKList(k)
	for _, o := range breadthOutcomes {
		list.Insert(o)
	}
	survivors := list.Snapshot()
	if len(survivors) == 0 {
		return Result{}, ErrNoJobs
	}

	deepened := RunDeep(desc, survivors, cfg, governor, resource)
	sort.SliceStable(deepened, func(i, j int) bool {
		a, b := deepened[i], deepened[j]
		if a.Deep.Found != b.Deep.Found {
			return a.Deep.Found // feasible results sort before infeasible ones
		}
		if a.Deep.BestWeight != b.Deep.BestWeight {
			return a.Deep.BestWeight < b.Deep.BestWeight
		}
		return a.JobIndex < b.JobIndex
	})

	if deepened[0].Deep.Found {
		cfg.Logger.Improvement("[Batch][Deep] ", deepened[0].Deep.BestWeight, deepened[0].Deep.NodesVisited, 0)
	}

	return Result{Winner: deepened[0], All: deepened}, nil
}
