package bitops

// AffineSubspace describes offset ⊕ span(basis): a correlated-mask set of
// size 2^rank. Basis holds exactly rank entries; the zero value (rank 0)
// denotes the singleton {offset}.
type AffineSubspace struct {
	Offset uint32
	Basis  []uint32 // linearly independent, len == Rank
	Rank   int
}

// Walk enumerates up to maxElements distinct elements of the subspace by
// counting through the 2^Rank include/exclude patterns over the basis
// vectors (bit i of the counter selects whether basis[i] is XORed into the offset),
// calling yield for each. Walk stops early if yield returns false, or once
// maxElements have been produced. maxElements <= 0 means unbounded (full
// 2^Rank enumeration) — callers wanting a hard bound must clamp Rank or
// provide a positive maxElements.
func (s AffineSubspace) Walk(maxElements int, yield func(mask uint32) bool) {
	total := 1 << uint(s.Rank)
	limit := total
	if maxElements > 0 && maxElements < total {
		limit = maxElements
	}
	for i := 0; i < limit; i++ {
		v := s.Offset
		for j, b := range s.Basis {
			if i&(1<<uint(j)) != 0 {
				v ^= b
			}
		}
		if !yield(v) {
			return
		}
	}
}

// Contains reports whether mask lies in the subspace.
func (s AffineSubspace) Contains(mask uint32) bool {
	var basis Basis
	for _, b := range s.Basis {
		basis.Insert(b)
	}
	return basis.Reduce(mask^s.Offset) == 0
}
