package kernel

// RoundTrailStep is one predecessor of a round boundary: the input masks
// that correlate, through the full six-gate round function, with the
// given output masks, together with the weight charged at each gate.
// Weight is the sum of the six sub-weights and is always <= the cap the
// caller passed to RoundPredecessors.
type RoundTrailStep struct {
	OutMaskA, OutMaskB uint32
	InMaskA, InMaskB   uint32

	// Subround 2 runs first in the reverse walk (it is last in the
	// forward round): injection A->B, then SUB2 (B -= const), then
	// ADD2 (A += term(B)).
	Subround2InjectionWeight int
	Subround2SubWeight       int
	Subround2AddWeight       int

	// Subround 1 runs second in the reverse walk: injection B->A, then
	// SUB1 (A -= const), then ADD1 (B += term(A)).
	Subround1InjectionWeight int
	Subround1SubWeight       int
	Subround1AddWeight       int

	Weight int
}

// Caps bounds the enumeration at every level of RoundPredecessors. All
// weight caps are Matsui-style slack: a gate is skipped outright once its
// own weight already exceeds the budget remaining after the gates walked
// so far.
type Caps struct {
	WeightCap         int
	MaxAddCandidates  int
	MaxSubCandidates  int
	MaxInjectionMasks int
	MaxPredecessors   int
	UseHighway        bool
}

// DefaultCaps returns a Caps suitable for interactive single-round
// exploration: generous per-gate candidate limits, no predecessor cap,
// highway-accelerated ADD enumeration.
func DefaultCaps(weightCap int) Caps {
	return Caps{
		WeightCap:         weightCap,
		MaxAddCandidates:  0,
		MaxSubCandidates:  0,
		MaxInjectionMasks: 0,
		MaxPredecessors:   0,
		UseHighway:        true,
	}
}
