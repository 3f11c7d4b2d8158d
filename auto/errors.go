package auto

import "errors"

var (
	// ErrNoCandidates is returned when BreadthCandidateCount resolves to
	// zero neighborhood pairs (impossible in practice since the start
	// pair itself always seeds the set, but guarded for a zero-value
	// Configuration passed by mistake).
	ErrNoCandidates = errors.New("auto: candidate set is empty")

	// ErrNoFeasibleCandidate is returned when breadth found no feasible
	// trail for any candidate, so there is nothing to deepen.
	ErrNoFeasibleCandidate = errors.New("auto: breadth scan found no feasible candidate")
)
