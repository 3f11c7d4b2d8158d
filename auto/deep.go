package auto

import (
	"github.com/arxlab/neoalz/cipher"
	"github.com/arxlab/neoalz/search"
	"github.com/arxlab/neoalz/substrate"
)

// RunDeep reconfigures the engine without the breadth-only caps
// (MaxRoundPredecessors = 0, i.e. unlimited) and seeds its upper bound
// from seed's breadth weight, per spec.md §4.6 step 4: deep search never
// reports a weight worse than the seed, since its initial bestWeight
// ceiling starts at the seed's weight rather than +infinity.
func RunDeep(desc cipher.Description, seed JobResult, cfg Configuration, jobID int, governor *substrate.MemoryGovernor, resource *substrate.BoundedResource) (search.Result, error) {
	scfg := search.DefaultConfiguration(cfg.RoundCount)
	scfg.MaxNodes = cfg.DeepMaxNodes
	scfg.MaxSeconds = cfg.DeepMaxSeconds
	scfg.MaxRoundPredecessors = 0
	scfg.MaxAddCandidates = cfg.DeepMaxAddCandidates
	scfg.MaxSubCandidates = cfg.DeepMaxSubCandidates
	if cfg.TargetWeight >= 0 {
		scfg.TargetWeight = cfg.TargetWeight
	}
	if cfg.CheckpointWriterFor != nil {
		scfg.CheckpointWriter = cfg.CheckpointWriterFor(jobID, seed.MaskA, seed.MaskB)
	}
	if seed.Result.Found {
		// Seed the DFS's own ceiling so it prunes against the breadth
		// result from node zero; Run only ever improves on this or
		// returns it unchanged, so deep never regresses past breadth.
		scfg.SeedBestWeight = seed.Result.BestWeight
		scfg.SeedBestInputMaskA = seed.Result.BestInputMaskA
		scfg.SeedBestInputMaskB = seed.Result.BestInputMaskB
		scfg.SeedTrail = seed.Result.Trail
	}
	scfg.Governor = governor

	reserved := resource != nil && resource.TryReserve(memoBudgetBytes)
	if resource != nil && !reserved {
		scfg.MemoizationEnabled = false
	}
	res, err := search.Run(scfg, desc, seed.MaskA, seed.MaskB)
	if reserved {
		resource.Release(memoBudgetBytes)
	}
	return res, err
}
