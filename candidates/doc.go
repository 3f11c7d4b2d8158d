// Package candidates implements the per-gate candidate generators of
// SPEC_FULL.md L3: the modular-addition variable-variable enumerator
// (a reference recursive DFS plus an 8-bit block "highway" accelerator,
// both grounded on the Schulte-Geers z-recurrence), the modular
// add/sub-by-constant heuristic pool, and the injection-subspace walk
// (a thin wrapper over bitops.AffineSubspace.Walk).
//
// Every generator returns candidates already sorted by (weight ascending,
// then mask(s) ascending) and truncated to a caller-supplied cap, so the
// round kernel and search engine can rely on nondecreasing-weight
// iteration order for Matsui pruning (SPEC_FULL.md §4.4's "inner loop
// breaks when a candidate's weight alone exceeds slack").
package candidates
