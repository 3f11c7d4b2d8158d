package candidates

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/arxlab/neoalz/weight"
)

func TestAddVarVarCandidatesAreFeasibleAndSorted(t *testing.T) {
	// The cheapest approximation of u=0x12345678 costs weight 9, so the cap
	// must be at least that for every u below to have a candidate.
	for _, u := range []uint32{0, 1, 0x80000000, 0x12345678} {
		cands := AddVarVarCandidates(u, 9, 0)
		require.NotEmpty(t, cands)
		for i, c := range cands {
			w, ok := weight.SchulteGeersWeight(u, c.InputMaskX, c.InputMaskY)
			require.True(t, ok)
			require.Equal(t, c.Weight, w)
			require.LessOrEqual(t, c.Weight, 9)
			if i > 0 {
				require.LessOrEqual(t, cands[i-1].Weight, c.Weight)
			}
		}
	}
}

func TestAddVarVarCandidatesCap(t *testing.T) {
	cands := AddVarVarCandidates(0x12345678, 8, 5)
	require.LessOrEqual(t, len(cands), 5)
}

func TestHighwayMatchesReference(t *testing.T) {
	for _, u := range []uint32{0, 1, 0x80000000, 0x12345678, 0xAAAAAAAA} {
		ref := AddVarVarCandidates(u, 6, 0)
		hw := AddVarVarCandidatesHighway(u, 6, 0)
		require.Equal(t, len(ref), len(hw), "mismatch for u=%#x", u)
		refSet := map[[2]uint32]int{}
		for _, c := range ref {
			refSet[[2]uint32{c.InputMaskX, c.InputMaskY}] = c.Weight
		}
		for _, c := range hw {
			w, ok := refSet[[2]uint32{c.InputMaskX, c.InputMaskY}]
			require.True(t, ok, "highway produced candidate missing from reference: %+v", c)
			require.Equal(t, w, c.Weight)
		}
	}
}
