package bitops

import "math/bits"

// Popcount32 returns the number of set bits in x.
func Popcount32(x uint32) int {
	return bits.OnesCount32(x)
}

// Parity32 returns 0 or 1: the XOR of all bits of x.
func Parity32(x uint32) uint32 {
	return uint32(Popcount32(x) & 1)
}

// Rotl32 rotates x left by r bits, r taken modulo 32 (including negative r).
func Rotl32(x uint32, r int) uint32 {
	return bits.RotateLeft32(x, r)
}

// Rotr32 rotates x right by r bits, r taken modulo 32 (including negative r).
func Rotr32(x uint32, r int) uint32 {
	return bits.RotateLeft32(x, -r)
}

// LeadingBit returns the index (0..31) of the highest set bit of x, or -1 if
// x is zero.
func LeadingBit(x uint32) int {
	if x == 0 {
		return -1
	}
	return 31 - bits.LeadingZeros32(x)
}
