package injection

import "github.com/arxlab/neoalz/bitops"

// Transition is the per-output-mask result: the affine subspace of
// correlated input masks and its weight (ceil(rank/2)).
type Transition struct {
	Subspace bitops.AffineSubspace
	Weight   int
}

// Transition computes, for a fixed injection output mask u, the affine
// subspace of input masks correlated with u and its weight. u == 0 is the
// trivial transition (empty basis, offset 0, weight 0).
func (c Compiled) Transition(u uint32) Transition {
	if u == 0 {
		return Transition{}
	}

	g0 := bitops.Parity32(u & c.zero)
	var offset uint32
	for i := 0; i < 32; i++ {
		gi := bitops.Parity32(u & c.basis[i])
		if gi^g0 != 0 {
			offset |= 1 << uint(i)
		}
	}

	var rows [32]uint32
	for k := 0; k < 32; k++ {
		if (u>>uint(k))&1 == 0 {
			continue
		}
		for i := 0; i < 32; i++ {
			rows[i] ^= c.rowsByOutBit[k][i]
		}
	}

	var basis bitops.Basis
	for i := 0; i < 32; i++ {
		if rows[i] != 0 {
			basis.Insert(rows[i])
		}
	}

	rank := basis.Rank()
	return Transition{
		Subspace: bitops.AffineSubspace{
			Offset: offset,
			Basis:  basis.Vectors(),
			Rank:   rank,
		},
		Weight: (rank + 1) / 2,
	}
}
