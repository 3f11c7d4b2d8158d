package injection

// BuildTables derives Tables for an arbitrary function f: GF(2)^32 ->
// GF(2)^32 by direct evaluation: f(0), f(e_i) for the 32 basis vectors,
// and the 496 second differences f(0)^f(e_i)^f(e_j)^f(e_i^e_j) for i<j.
// This works regardless of whether f is linear, affine, or genuinely
// quadratic — a purely linear/affine f simply yields an all-zero Pairs
// table (every second difference cancels), which Compile/Transition
// handle correctly (rank 0, weight 0 for every output mask).
func BuildTables(f func(uint32) uint32) Tables {
	var t Tables
	t.Zero = f(0)
	for i := 0; i < 32; i++ {
		t.Basis[i] = f(1 << uint(i))
	}
	for i := 0; i < 32; i++ {
		for j := i + 1; j < 32; j++ {
			ei, ej := uint32(1)<<uint(i), uint32(1)<<uint(j)
			t.Pairs[PairIndex(i, j)] = t.Zero ^ t.Basis[i] ^ t.Basis[j] ^ f(ei^ej)
		}
	}
	return t
}
