package auto

import (
	"github.com/arxlab/neoalz/search"
	"github.com/arxlab/neoalz/substrate"
)

// Configuration controls both stages of the auto driver. Fields are used
// as given; a zero value does not fall back to DefaultConfiguration's
// choice (start from DefaultConfiguration and override fields instead).
type Configuration struct {
	RoundCount int

	// Breadth-stage neighborhood and budget.
	BreadthCandidateCount      int
	MaxBitFlips                int
	Seed                       uint64 // 0 = derive deterministically from start masks
	ThreadCount                int    // 0 = hardware concurrency
	BreadthMaxNodes            uint64
	BreadthMaxRoundPredecessors int
	BreadthMaxAddCandidates    int
	BreadthMaxSubCandidates    int
	TopK                       int

	// Deep-stage budget; deep always runs with MaxRoundPredecessors
	// unlimited (0) regardless of the breadth-stage cap.
	DeepMaxNodes       uint64
	DeepMaxSeconds     float64
	DeepMaxAddCandidates int
	DeepMaxSubCandidates int
	TargetWeight       int

	// CheckpointWriterFor, if set, is called once per deep-search job to
	// build a checkpoint writer at a path deterministic in
	// (RoundCount, startA, startB, jobID) — callers typically close over
	// a directory and format a filename from the arguments.
	CheckpointWriterFor func(jobID int, startA, startB uint32) *search.CheckpointWriter

	// Logger receives breadth-complete and deep-improvement progress
	// lines; the zero value is a no-op logger (see substrate.Logger).
	Logger substrate.Logger

	// MemoryHeadroomOverrideMiB, if non-zero, overrides the headroom
	// substrate.ConfigureForRun derives from the host's own memory sample
	// (see substrate.ComputeMemoryHeadroomBytes). Zero means auto-derive.
	MemoryHeadroomOverrideMiB uint64
}

// DefaultConfiguration returns sane defaults for an exploratory auto run:
// a breadth pool of 64 candidates, up to 6 bit flips in the random-fill
// phase, hardware-concurrency worker count, a breadth node cap tight
// enough to scan quickly, and a deep stage with no node or time budget
// (its add/sub candidate caps stay at 8 per gate).
func DefaultConfiguration(roundCount int) Configuration {
	return Configuration{
		RoundCount:                  roundCount,
		BreadthCandidateCount:       64,
		MaxBitFlips:                 6,
		BreadthMaxNodes:             20_000,
		BreadthMaxRoundPredecessors: 8,
		BreadthMaxAddCandidates:     4,
		BreadthMaxSubCandidates:     4,
		TopK:                        8,
		DeepMaxNodes:                0,
		DeepMaxAddCandidates:        8,
		DeepMaxSubCandidates:        8,
		TargetWeight:                -1,
	}
}

// JobResult is one breadth candidate's outcome, keyed by JobIndex for the
// top-K lex ordering spec.md §4.6 specifies:
// (best_weight, job_index, mask_a, mask_b, nodes).
type JobResult struct {
	JobIndex int
	MaskA    uint32
	MaskB    uint32
	Result   search.Result
}

// Result is the auto driver's final output: the breadth top-K list and
// the deep search run on its winner.
type Result struct {
	BreadthTopK []JobResult
	Deep        search.Result
	DeepSeedJob JobResult
}
