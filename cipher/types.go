package cipher

import (
	"github.com/arxlab/neoalz/bitops"
	"github.com/arxlab/neoalz/injection"
)

// Description is the cipher-specific configuration consumed by the round
// kernel: everything the search engine needs to know about the concrete
// ARX construction, and nothing about search policy.
type Description struct {
	// RoundConstants holds the 16 round-constant words used by the
	// reference round function (indices match neoalzette.hpp's R[0..15]).
	RoundConstants [16]uint32

	// L1Forward[i] / L2Forward[i] is L1(e_i) / L2(e_i): the forward basis
	// image of the i-th standard basis vector under each diffusion map.
	L1Forward [32]uint32
	L2Forward [32]uint32

	// L1Inverse / L2Inverse are derived once (see DeriveInverse) by GF(2)
	// Gauss-Jordan elimination on the forward basis images.
	L1Inverse [32]uint32
	L2Inverse [32]uint32

	// InjectionA is the compiled table for the A -> B injection (the
	// function applied to A and folded into B, keyed as in cd_from_A).
	// InjectionB is the compiled table for the B -> A injection.
	InjectionA injection.Compiled
	InjectionB injection.Compiled

	// TermRotate holds the two rotation amounts used to build the additive
	// term folded into the other branch before each modular operation:
	// term(X) = rotl(X, TermRotate[0]) ^ rotl(X, TermRotate[1]).
	TermRotate [2]int

	// MixRotate holds the two rotation amounts used both by the
	// XOR-rotate mixing step after each modular operation and by the
	// injection output before it is folded into the other branch:
	// mix step:       x ^= rotl(y, MixRotate[0]); y ^= rotl(x, MixRotate[1])
	// injection fold: other ^= rotl(C, MixRotate[0]) ^ rotl(D, MixRotate[1])
	MixRotate [2]int
}

// ApplyL1Forward / ApplyL2Forward evaluate the linear map from its basis
// images: L(x) = XOR over set bits i of x of images[i].
func applyLinear(images [32]uint32, x uint32) uint32 {
	var out uint32
	for i := 0; i < 32; i++ {
		if (x>>uint(i))&1 != 0 {
			out ^= images[i]
		}
	}
	return out
}

func (d Description) ApplyL1Forward(x uint32) uint32 { return applyLinear(d.L1Forward, x) }
func (d Description) ApplyL2Forward(x uint32) uint32 { return applyLinear(d.L2Forward, x) }
func (d Description) ApplyL1Inverse(x uint32) uint32 { return applyLinear(d.L1Inverse, x) }
func (d Description) ApplyL2Inverse(x uint32) uint32 { return applyLinear(d.L2Inverse, x) }

// transposeLinear pulls a mask back through a linear map given by its
// forward basis images: <mask, L(x)> = <transposeLinear(images,mask), x>
// for every x, with bit i of the result equal to parity(mask & images[i]).
// This is the transpose of the map, not its inverse; the two coincide
// only when the map is orthogonal, which L1/L2 are not in general.
func transposeLinear(images [32]uint32, mask uint32) uint32 {
	var out uint32
	for i := 0; i < 32; i++ {
		if bitops.Parity32(mask&images[i]) != 0 {
			out |= 1 << uint(i)
		}
	}
	return out
}

// ApplyL1Transpose / ApplyL2Transpose pull a correlation mask on L1(x) /
// L2(x) back onto x, for use by the reverse round kernel when it walks
// mask propagation backward through the forward diffusion maps.
func (d Description) ApplyL1Transpose(mask uint32) uint32 { return transposeLinear(d.L1Forward, mask) }
func (d Description) ApplyL2Transpose(mask uint32) uint32 { return transposeLinear(d.L2Forward, mask) }

// TermTranspose pulls a mask back through the additive term folded into
// the other branch before each modular operation: term(x) =
// rotl(x,TermRotate[0]) ^ rotl(x,TermRotate[1]), so the pullback is the
// XOR of the mask rotated right by each of the same two amounts.
func (d Description) TermTranspose(mask uint32) uint32 {
	return bitops.Rotr32(mask, d.TermRotate[0]) ^ bitops.Rotr32(mask, d.TermRotate[1])
}
