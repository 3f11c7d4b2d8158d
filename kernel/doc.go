// Package kernel implements the reverse round-boundary transition of
// SPEC_FULL.md L4: given the output-boundary masks of one NeoAlzette
// round, it walks the round's six weight-bearing gates (two modular
// additions, two modular subtractions-by-constant, two quadratic
// injections) in reverse order, charging the appropriate weight operator
// (package weight) at each gate and enumerating candidates (package
// candidates) within a caller-supplied round weight cap, producing the
// set of predecessor boundary masks with their per-gate weight
// breakdown (RoundTrailStep).
//
// Mask propagation through the purely linear parts of the round (the
// XOR-rotate mixing steps, the L1/L2 diffusion maps, and the rotated
// linear term folded into each addition) follows the standard identity
// <mask, L(x)> = <L^T(mask), x>: each linear map's transpose is applied
// directly from its forward basis images (parity(mask & image[i])),
// never its functional inverse — transpose and inverse coincide only for
// orthogonal maps, and L1/L2 are not orthogonal in general.
package kernel
