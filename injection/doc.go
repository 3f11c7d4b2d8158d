// Package injection implements the quadratic-injection linear model of
// SPEC_FULL.md L2: for a fixed injection output mask u, the scalar
// boolean function g_u(x) = <u, f(x)> is a quadratic form over GF(2)^32.
// Its bilinear matrix and linear offset are derived, at call time, from
// two offline tables supplied by the cipher description (f(0), f(e_i) for
// the 32 basis vectors, and the 496 second differences f(0)^f(e_i)^f(e_j)^
// f(e_i^e_j) for i<j): see Tables.
//
// The result for a given u is an affine subspace of correlated input
// masks (bitops.AffineSubspace) plus a weight = ceil(rank/2). u == 0
// always yields the trivial rank-0 transition at weight 0.
package injection
