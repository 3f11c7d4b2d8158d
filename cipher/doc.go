// Package cipher defines the external configuration contract consumed by
// the search engine (SPEC_FULL.md §3/§6): a Description carrying the
// round-constant table, the L1/L2 diffusion maps (given by their forward
// basis images, with inverses derived once by GF(2) Gauss-Jordan
// elimination), the two injection functions' offline tables (§4.2), and
// the rotation amounts used in the ARX mixing steps between additions.
//
// NeoAlzette returns one concrete, compiled-in Description grounded on
// the reference round function: two subrounds, each a modular addition
// term, a modular subtraction by a round constant, an XOR-rotate mix, a
// linear diffusion map, and an injection from the other branch, with two
// terminal constant XORs. This package also exposes Forward/Backward,
// the plain (non-mask) round function, used only by this repository's own
// tests to validate the mask-propagation model against direct evaluation.
package cipher
