package search

import (
	"errors"

	"github.com/arxlab/neoalz/substrate"
)

// ErrZeroStartMask is returned when both start masks are zero: the
// trivial all-zero correlation is never a meaningful search start.
var ErrZeroStartMask = errors.New("search: start mask pair (0, 0) is not a valid search start")

// ErrInvalidRoundCount is returned for a non-positive round count.
var ErrInvalidRoundCount = errors.New("search: round count must be >= 1")

// Configuration is the immutable per-run bag of options consumed by Run.
type Configuration struct {
	RoundCount int

	// Per-gate caps, threaded into kernel.Caps at every round.
	MaxAddCandidates      int
	MaxSubCandidates      int
	MaxInjectionMasks     int
	MaxRoundPredecessors  int
	UseHighway            bool

	// MaxNodes bounds the number of DFS invocations; 0 means unlimited.
	MaxNodes uint64
	// MaxSeconds bounds wall-clock time; <= 0 means unlimited.
	MaxSeconds float64

	// TargetWeight, if >= 0, raises the target-hit stop flag as soon as
	// a trail with best_weight <= TargetWeight is found.
	TargetWeight int

	MemoizationEnabled bool

	// RemainingRoundLB[k] is a lower bound on the weight any k-round
	// tail of the search must charge; len must be RoundCount+1 with
	// RemainingRoundLB[0] == 0, or nil for an all-zero table.
	RemainingRoundLB []int
	// StrictLowerBound refuses a RemainingRoundLB that was itself
	// generated under a budget (see AutoGenerateRemainingRoundLB),
	// falling back to an all-zero table instead of risking an
	// optimistic (unsound) prune.
	StrictLowerBound bool

	// CheckpointWriter, if non-nil, is notified of every best-weight
	// improvement.
	CheckpointWriter *CheckpointWriter

	// SeedBestWeight, if >= 0, initializes the DFS's best-weight ceiling
	// instead of +infinity — used by package auto's deep stage to start
	// from a breadth-scan result's weight, so the search prunes against
	// it from node zero instead of merely comparing after the fact.
	// SeedTrail (optional, same length semantics as Result.Trail) is
	// reported back as Result.Trail if the DFS itself never improves on
	// the seed, so a seeded run's Result always reflects its best known
	// trail, not just what the DFS actually walked into.
	SeedBestWeight                         int
	SeedBestInputMaskA, SeedBestInputMaskB uint32
	SeedTrail                              []RoundTrailEntry

	// Governor, if non-nil, is polled on the same cadence as the deadline
	// check (every ~2^18 nodes, see cadenceMask) and consulted by the
	// memoization table to skip memoization entirely while under memory
	// pressure, per spec.md's runtime-substrate degradation rules. A nil
	// Governor disables both behaviors, matching the previous no-op default.
	Governor *substrate.MemoryGovernor
}

// DefaultConfiguration returns a Configuration with generous (largely
// unbounded) caps and no budgets, suitable for exhaustive single-start
// searches and for AutoGenerateRemainingRoundLB bootstrapping.
func DefaultConfiguration(roundCount int) Configuration {
	return Configuration{
		RoundCount:            roundCount,
		MaxAddCandidates:      0,
		MaxSubCandidates:      0,
		MaxInjectionMasks:     0,
		MaxRoundPredecessors:  0,
		UseHighway:            true,
		MaxNodes:              0,
		MaxSeconds:            0,
		TargetWeight:          -1,
		MemoizationEnabled:    true,
		SeedBestWeight:        -1,
	}
}

// StopReason names a condition that ended a run before the DFS
// exhausted its search space.
type StopReason string

const (
	StopMaxNodes    StopReason = "HIT max_nodes"
	StopMaxSeconds  StopReason = "HIT max_seconds"
	StopTargetHit   StopReason = "HIT target"
)

// Result is the outcome of one Run.
type Result struct {
	Found               bool
	BestWeight          int
	BestInputMaskA      uint32
	BestInputMaskB      uint32
	// Trail is in reverse order: last round first, matching the
	// direction the DFS walks in.
	Trail        []RoundTrailEntry
	NodesVisited uint64
	StopReasons  []StopReason
}

// RoundTrailEntry pairs a kernel.RoundTrailStep with the round index it
// was charged at (0-based, counting from the first round of the
// cipher, i.e. round_count-1-depth at the point the DFS recorded it).
type RoundTrailEntry struct {
	RoundIndex int
	OutMaskA, OutMaskB uint32
	InMaskA, InMaskB   uint32
	RoundWeight        int
}
