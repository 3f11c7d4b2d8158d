package batch

import (
	"github.com/arxlab/neoalz/search"
	"github.com/arxlab/neoalz/substrate"
)

// Configuration controls both the breadth and deep stages of a batch run.
type Configuration struct {
	ThreadCount int // 0 = hardware concurrency

	BreadthMaxNodes            uint64
	BreadthMaxRoundPredecessors int
	BreadthMaxAddCandidates    int
	BreadthMaxSubCandidates    int

	DeepMaxNodes         uint64
	DeepMaxSeconds       float64
	DeepMaxAddCandidates int
	DeepMaxSubCandidates int
	TargetWeight         int

	// CheckpointWriterFor, if set, builds one checkpoint writer per deep
	// job, keyed by its index in the (already top-K-filtered) job slice.
	CheckpointWriterFor func(jobIndex int, job Job) *search.CheckpointWriter

	// Logger receives breadth-complete and winner-improvement progress
	// lines; the zero value is a no-op logger (see substrate.Logger).
	Logger substrate.Logger

	// MemoryHeadroomOverrideMiB, if non-zero, overrides the headroom
	// substrate.ConfigureForRun derives from the host's own memory sample
	// (see substrate.ComputeMemoryHeadroomBytes). Zero means auto-derive.
	MemoryHeadroomOverrideMiB uint64
}

// DefaultConfiguration mirrors auto.DefaultConfiguration's breadth/deep
// split: a tight breadth cap for a quick multi-job scan, and a deep stage
// with no node or time budget for the survivors (its add/sub candidate
// caps stay at 8 per gate).
func DefaultConfiguration() Configuration {
	return Configuration{
		BreadthMaxNodes:             20_000,
		BreadthMaxRoundPredecessors: 8,
		BreadthMaxAddCandidates:     4,
		BreadthMaxSubCandidates:     4,
		DeepMaxAddCandidates:        8,
		DeepMaxSubCandidates:        8,
		TargetWeight:                -1,
	}
}

// JobOutcome pairs a Job with its breadth result (always populated once
// RunBreadth has run) and, for top-K survivors, its deep result.
type JobOutcome struct {
	JobIndex int
	Job      Job
	Breadth  search.Result
	Deep     search.Result
	Deepened bool
}

// Result is a batch run's final aggregate.
type Result struct {
	Winner JobOutcome
	All    []JobOutcome // every deepened job, in deep-weight order
}
