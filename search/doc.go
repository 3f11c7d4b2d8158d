// Package search is the Matsui-style threshold search engine: a
// recursive depth-first walk over round boundaries, driven by the
// round kernel (package kernel) in reverse, pruned against a running
// global best weight and an optional remaining-round lower-bound table,
// with best-effort per-depth memoization and best-weight checkpointing.
//
// A Context owns one run's mutable state (current best, trail stack,
// node counter, stop flags); Configuration is the immutable bag of caps
// and budgets a Context is built from. Run is the single entry point:
// it validates the start boundary, prepares the Context, and drives the
// DFS to completion or to a budget/target stop.
package search
