// Package neoalz is the root of a linear-hull threshold search toolkit for
// the NeoAlzette block cipher round function.
//
// There is no code at this import path: every layer lives in its own
// subpackage, composed bottom-up:
//
//	bitops/     — popcount, parity, rotate, GF(2) linear basis
//	weight/     — exact linear/differential weight operators
//	injection/  — quadratic injection model and per-mask affine transitions
//	cipher/     — round description contract (constants, linear maps, injections)
//	candidates/ — per-gate predecessor-mask enumerators
//	kernel/     — single reverse round-boundary transition
//	search/     — Matsui-style threshold DFS engine
//	auto/       — breadth neighborhood scan followed by a seeded deep search
//	batch/      — parallel multi-job driver (file or RNG-seeded jobs)
//	substrate/  — memory governor, ballast, sharded cache, logging
//
// Callers import the subpackage for the layer they need; search is the
// usual entry point for a single start-mask run, auto and batch wrap it
// for neighborhood and multi-job exploration respectively.
package neoalz
