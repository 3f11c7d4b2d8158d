package weight

import "math/bits"

// AddConstWeight computes the exact linear weight of Y = X + K (mod 2^32)
// for input mask alpha (on X) and output mask beta (on Y), via a per-bit
// carry-state dynamic program: two Walsh accumulators, one per carry
// value, updated bit by bit from LSB to MSB. ok is false when the exact
// Walsh sum is zero (the approximation is infeasible).
func AddConstWeight(alpha, beta, k uint32) (int, bool) {
	var v0, v1 int64 = 1, 0
	for i := uint(0); i < 32; i++ {
		ai := int((alpha >> i) & 1)
		bi := int((beta >> i) & 1)
		ki := int((k >> i) & 1)

		var nv0, nv1 int64
		for _, x := range [2]int{0, 1} {
			for cin, src := range [2]int64{0: v0, 1: v1} {
				y := x ^ ki ^ cin
				cout := (x & ki) | (x & cin) | (ki & cin)
				exponent := (ai & x) ^ (bi & y)
				term := src
				if exponent != 0 {
					term = -term
				}
				if cout == 0 {
					nv0 += term
				} else {
					nv1 += term
				}
			}
		}
		v0, v1 = nv0, nv1
	}

	s := v0 + v1
	if s == 0 {
		return 0, false
	}
	abs := s
	if abs < 0 {
		abs = -abs
	}
	msb := bits.Len64(uint64(abs)) - 1
	w := 32 - msb
	if w < 0 {
		w = 0
	}
	if w > 32 {
		w = 32
	}
	return w, true
}

// SubConstWeight computes the exact linear weight of Y = X - constant
// (mod 2^32) by rewriting the subtraction as addition of the two's
// complement of constant: K = (^constant) + 1.
func SubConstWeight(alpha, beta, constant uint32) (int, bool) {
	k := ^constant + 1
	return AddConstWeight(alpha, beta, k)
}
