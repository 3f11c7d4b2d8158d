// Package bitops provides the bit-level primitives shared by every layer of
// the linear-hull search engine: population count and parity over 32-bit
// words, left/right rotation, and GF(2) linear-algebra helpers (XOR-basis
// insertion and affine-subspace enumeration) used to represent and walk
// correlated-mask subspaces.
//
// Determinism: every function here is a pure computation over fixed-width
// words; there is no hidden state and no allocation on the hot paths
// (Basis is a fixed-size array, not a slice).
//
// Errors: none; no function here returns an error.
package bitops
