// Package weight implements the three exact linear-correlation weight
// operators used throughout the search: modular addition of two variables
// (Schulte-Geers z-recurrence and the equivalent Wallén CCZ closed form),
// and modular addition/subtraction of a variable and a constant (bitwise
// carry dynamic program).
//
// "Weight" means ceil(-log2(|correlation|)), clamped to [0, 32]. A weight
// is reported together with an ok bool; ok == false means the mask triple
// is infeasible (correlation is exactly zero) rather than an error — see
// SPEC_FULL.md's error-taxonomy mapping of "Infeasible" to a (value, ok)
// pair instead of an error return.
//
// Determinism: all three operators are pure functions of their mask
// arguments; no floating point is used for feasibility decisions (only
// SubConstWeight/AddConstWeight's internal Walsh accumulation is exact
// 64-bit integer arithmetic, never floating point, since |S| <= 2^32 and
// fits comfortably in an int64).
package weight
