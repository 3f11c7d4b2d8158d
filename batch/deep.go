package batch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/arxlab/neoalz/cipher"
	"github.com/arxlab/neoalz/search"
	"github.com/arxlab/neoalz/substrate"
)

// RunDeep deepens each of the given top-K survivors one job per worker
// (spec.md §4.7 step 3: "parallel deep one-job-per-worker"), seeding each
// engine's upper bound from that job's own breadth result and writing to
// a per-job checkpoint file when cfg.CheckpointWriterFor is set.
func RunDeep(desc cipher.Description, survivors []JobOutcome, cfg Configuration, governor *substrate.MemoryGovernor, resource *substrate.BoundedResource) []JobOutcome {
	out := make([]JobOutcome, len(survivors))
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(resolveThreadCount(len(survivors)))

	for i, survivor := range survivors {
		i, survivor := i, survivor
		g.Go(func() error {
			scfg := search.DefaultConfiguration(survivor.Job.RoundCount)
			scfg.MaxNodes = cfg.DeepMaxNodes
			scfg.MaxSeconds = cfg.DeepMaxSeconds
			scfg.MaxRoundPredecessors = 0
			scfg.MaxAddCandidates = cfg.DeepMaxAddCandidates
			scfg.MaxSubCandidates = cfg.DeepMaxSubCandidates
			if cfg.TargetWeight >= 0 {
				scfg.TargetWeight = cfg.TargetWeight
			}
			if cfg.CheckpointWriterFor != nil {
				scfg.CheckpointWriter = cfg.CheckpointWriterFor(i, survivor.Job)
			}
			if survivor.Breadth.Found {
				scfg.SeedBestWeight = survivor.Breadth.BestWeight
				scfg.SeedBestInputMaskA = survivor.Breadth.BestInputMaskA
				scfg.SeedBestInputMaskB = survivor.Breadth.BestInputMaskB
				scfg.SeedTrail = survivor.Breadth.Trail
			}
			scfg.Governor = governor
			reserved := resource != nil && resource.TryReserve(memoBudgetBytes)
			if resource != nil && !reserved {
				scfg.MemoizationEnabled = false
			}

			res, err := search.Run(scfg, desc, survivor.Job.MaskA, survivor.Job.MaskB)
			if reserved {
				resource.Release(memoBudgetBytes)
			}
			if err != nil {
				out[i] = survivor
				return nil
			}
			out[i] = JobOutcome{JobIndex: survivor.JobIndex, Job: survivor.Job, Breadth: survivor.Breadth, Deep: res, Deepened: true}
			return nil
		})
	}
	_ = g.Wait()
	return out
}
