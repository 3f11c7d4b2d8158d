package auto

import "math/rand"

// pairKey packs a (maskA, maskB) candidate into a single comparable key
// for the dedup set.
type pairKey uint64

func keyOf(maskA, maskB uint32) pairKey {
	return pairKey(uint64(maskA)<<32 | uint64(maskB))
}

// deriveSeed mixes the two start masks into a 64-bit seed via a
// SplitMix64-style avalanche, the same construction tsp/rng.go's
// deriveSeed uses to decorrelate independent RNG streams from a parent.
func deriveSeed(maskA, maskB uint32) int64 {
	x := uint64(maskA)<<32 | uint64(maskB)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// BuildCandidateSet deterministically expands a neighborhood of
// (maskA, maskB) pairs around the start, per spec.md §4.6 step 1: the
// exact start pair first, then every single-bit XOR flip on either
// lane, every byte toggle, every nibble toggle, then a pseudo-random
// fill of multi-bit flips (flip count biased geometrically, capped by
// maxBitFlips) until count unique pairs are collected or the generator
// has made 64*count random-fill attempts (a practical backstop
// against an unreachable count on a degenerate configuration).
func BuildCandidateSet(startA, startB uint32, count, maxBitFlips int, seed uint64) []JobResult {
	if count <= 0 {
		return nil
	}

	seen := make(map[pairKey]struct{}, count)
	out := make([]JobResult, 0, count)
	add := func(a, b uint32) bool {
		k := keyOf(a, b)
		if _, dup := seen[k]; dup {
			return false
		}
		seen[k] = struct{}{}
		out = append(out, JobResult{JobIndex: len(out), MaskA: a, MaskB: b})
		return len(out) >= count
	}

	if add(startA, startB) {
		return out
	}

	for i := 0; i < 32; i++ {
		if add(startA^(1<<uint(i)), startB) || add(startA, startB^(1<<uint(i))) {
			return out
		}
	}

	for byteIdx := 0; byteIdx < 4; byteIdx++ {
		mask := uint32(0xFF) << uint(byteIdx*8)
		if add(startA^mask, startB) || add(startA, startB^mask) {
			return out
		}
	}

	for nibbleIdx := 0; nibbleIdx < 8; nibbleIdx++ {
		mask := uint32(0xF) << uint(nibbleIdx*4)
		if add(startA^mask, startB) || add(startA, startB^mask) {
			return out
		}
	}

	s := seed
	if s == 0 {
		s = uint64(deriveSeed(startA, startB))
	}
	rng := rand.New(rand.NewSource(int64(s)))

	if maxBitFlips < 1 {
		maxBitFlips = 1
	}
	maxAttempts := count * 64
	for attempt := 0; attempt < maxAttempts && len(out) < count; attempt++ {
		flips := geometricFlipCount(rng, maxBitFlips)
		a, b := startA, startB
		for f := 0; f < flips; f++ {
			bit := uint(rng.Intn(64))
			if bit < 32 {
				a ^= 1 << bit
			} else {
				b ^= 1 << (bit - 32)
			}
		}
		if add(a, b) {
			return out
		}
	}
	return out
}

// geometricFlipCount samples a flip count in [1, maxBitFlips] biased
// toward small values: each additional flip beyond the first survives
// only a further 50% chance, approximating a geometric distribution
// truncated at maxBitFlips.
func geometricFlipCount(rng *rand.Rand, maxBitFlips int) int {
	n := 1
	for n < maxBitFlips && rng.Intn(2) == 0 {
		n++
	}
	return n
}
