// Package auto implements the two-stage "auto" driver: a breadth scan
// over a neighborhood of candidate start masks using a cheaply-capped
// search engine, followed by a single deep search seeded from the
// breadth winner's upper bound.
//
// Breadth never discovers a trail deep search can't reproduce or beat:
// every breadth candidate runs the same kernel.RoundPredecessors/search
// engine as deep, only with tighter node/predecessor caps, so the deep
// stage simply reruns the winner with those caps lifted and the
// breadth weight as a starting best_weight ceiling.
package auto
