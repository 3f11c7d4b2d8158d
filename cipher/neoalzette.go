package cipher

import (
	"github.com/arxlab/neoalz/bitops"
	"github.com/arxlab/neoalz/injection"
)

// neoAlzetteRoundConstants is the reference round-constant table (index
// matches R[0..15] in the original round function).
var neoAlzetteRoundConstants = [16]uint32{
	0x16B2C40B, 0xC117176A, 0x0F9A2598, 0xA1563ACA,
	0x243F6A88, 0x85A308D3, 0x13198102, 0xE0370734,
	0x9E3779B9, 0x7F4A7C15, 0xF39CC060, 0x5CEDC834,
	0xB7E15162, 0x8AED2A6A, 0xBF715880, 0x9CF4F3C7,
}

func l1Forward(x uint32) uint32 {
	return x ^ bitops.Rotl32(x, 2) ^ bitops.Rotl32(x, 10) ^ bitops.Rotl32(x, 18) ^ bitops.Rotl32(x, 24)
}

func l2Forward(x uint32) uint32 {
	return x ^ bitops.Rotl32(x, 8) ^ bitops.Rotl32(x, 14) ^ bitops.Rotl32(x, 22) ^ bitops.Rotl32(x, 30)
}

// cdFromB computes the (C, D) pair folded into A, given B and the two
// round constants used at this point in the reference round function.
func cdFromB(b, rc0, rc1 uint32) (uint32, uint32) {
	c := l2Forward(b ^ rc0)
	d := l1Forward(bitops.Rotr32(b, 3) ^ rc1)
	t := bitops.Rotl32(c^d, 31)
	c ^= bitops.Rotl32(d, 17)
	d ^= bitops.Rotr32(t, 16)
	return c, d
}

// cdFromA computes the (C, D) pair folded into B, given A and the two
// round constants used at this point in the reference round function.
func cdFromA(a, rc0, rc1 uint32) (uint32, uint32) {
	c := l1Forward(a ^ rc0)
	d := l2Forward(bitops.Rotl32(a, 24) ^ rc1)
	t := bitops.Rotr32(c^d, 31)
	c ^= bitops.Rotr32(d, 17)
	d ^= bitops.Rotl32(t, 16)
	return c, d
}

// injectionBToA is the full term XORed into A during the first subround:
// f_B(B) = rotl(C,24) ^ rotl(D,16) ^ R[4], where (C,D) = cdFromB(B, R[2], R[3]).
func injectionBToA(b uint32) uint32 {
	c, d := cdFromB(b, neoAlzetteRoundConstants[2], neoAlzetteRoundConstants[3])
	return bitops.Rotl32(c, 24) ^ bitops.Rotl32(d, 16) ^ neoAlzetteRoundConstants[4]
}

// injectionAToB is the full term XORed into B during the second subround:
// f_A(A) = rotl(C,24) ^ rotl(D,16) ^ R[9], where (C,D) = cdFromA(A, R[7], R[8]).
func injectionAToB(a uint32) uint32 {
	c, d := cdFromA(a, neoAlzetteRoundConstants[7], neoAlzetteRoundConstants[8])
	return bitops.Rotl32(c, 24) ^ bitops.Rotl32(d, 16) ^ neoAlzetteRoundConstants[9]
}

// NeoAlzette returns the compiled-in cipher description for the reference
// NeoAlzette round function: round constants, L1/L2 forward basis images
// with inverses derived by GF(2) Gauss-Jordan elimination, and the two
// injection tables built by direct evaluation of the A->B / B->A folded
// terms (injectionAToB / injectionBToA). Both injection terms turn out to
// be purely affine in this concrete cipher (no AND/OR anywhere in the
// round function), so their Pairs tables come out all-zero and every
// Transition(u) has rank 0, weight 0 — consistent with spec.md §8's
// scenarios 1/2, where only rotations and XORs move bits around and no
// weight is charged outside the modular add/sub gates.
func NeoAlzette() Description {
	var l1, l2 [32]uint32
	for i := 0; i < 32; i++ {
		e := uint32(1) << uint(i)
		l1[i] = l1Forward(e)
		l2[i] = l2Forward(e)
	}

	d := Description{
		RoundConstants: neoAlzetteRoundConstants,
		L1Forward:      l1,
		L2Forward:      l2,
		L1Inverse:      DeriveInverse(l1),
		L2Inverse:      DeriveInverse(l2),
		InjectionA:     injection.Compile(injection.BuildTables(injectionAToB)),
		InjectionB:     injection.Compile(injection.BuildTables(injectionBToA)),
		TermRotate:     [2]int{31, 17},
		MixRotate:      [2]int{24, 16},
	}
	return d
}

// Forward evaluates the plain (non-mask) reference round function once,
// a -> a', b -> b'. Used only by this repository's own tests.
func Forward(a, b uint32) (uint32, uint32) {
	r := neoAlzetteRoundConstants

	b += bitops.Rotl32(a, 31) ^ bitops.Rotl32(a, 17) ^ r[0]
	a -= r[1]
	a ^= bitops.Rotl32(b, 24)
	b ^= bitops.Rotl32(a, 16)
	a = l1Forward(a)
	b = l2Forward(b)
	a ^= injectionBToA(b)

	a += bitops.Rotl32(b, 31) ^ bitops.Rotl32(b, 17) ^ r[5]
	b -= r[6]
	b ^= bitops.Rotl32(a, 24)
	a ^= bitops.Rotl32(b, 16)
	b = l1Forward(b)
	a = l2Forward(a)
	b ^= injectionAToB(a)

	a ^= r[10]
	b ^= r[11]
	return a, b
}

// l1Backward/l2Backward invert l1Forward/l2Forward directly (not via the
// generic DeriveInverse machinery) for use by Backward, matching the
// closed forms in the reference implementation.
func l1Backward(x uint32) uint32 {
	return x ^ bitops.Rotr32(x, 2) ^ bitops.Rotr32(x, 8) ^ bitops.Rotr32(x, 10) ^ bitops.Rotr32(x, 14) ^
		bitops.Rotr32(x, 16) ^ bitops.Rotr32(x, 18) ^ bitops.Rotr32(x, 20) ^ bitops.Rotr32(x, 24) ^
		bitops.Rotr32(x, 28) ^ bitops.Rotr32(x, 30)
}

func l2Backward(x uint32) uint32 {
	return x ^ bitops.Rotr32(x, 2) ^ bitops.Rotr32(x, 4) ^ bitops.Rotr32(x, 8) ^ bitops.Rotr32(x, 12) ^
		bitops.Rotr32(x, 14) ^ bitops.Rotr32(x, 16) ^ bitops.Rotr32(x, 18) ^ bitops.Rotr32(x, 22) ^
		bitops.Rotr32(x, 24) ^ bitops.Rotr32(x, 30)
}

// Backward evaluates the inverse of Forward. Used only by this
// repository's own tests.
func Backward(a, b uint32) (uint32, uint32) {
	r := neoAlzetteRoundConstants

	b ^= r[11]
	a ^= r[10]

	b ^= injectionAToB(a)
	b = l1Backward(b)
	a = l2Backward(a)
	a ^= bitops.Rotl32(b, 16)
	b ^= bitops.Rotl32(a, 24)
	b += r[6]
	a -= bitops.Rotl32(b, 31) ^ bitops.Rotl32(b, 17) ^ r[5]

	a ^= injectionBToA(b)
	a = l1Backward(a)
	b = l2Backward(b)
	b ^= bitops.Rotl32(a, 16)
	a ^= bitops.Rotl32(b, 24)
	a += r[1]
	b -= bitops.Rotl32(a, 31) ^ bitops.Rotl32(a, 17) ^ r[0]

	return a, b
}
