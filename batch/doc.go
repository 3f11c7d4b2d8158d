// Package batch implements the parallel multi-job driver: parse or
// generate a list of independent (round_count, mask_a, mask_b) jobs, run
// a capped breadth scan over all of them in parallel, select the top-K
// by the shared (best_weight, job_index, masks) lex order, deepen each
// of the K survivors one-per-worker, and report the smallest deep
// weight (ties broken by job index), per spec.md §4.7.
package batch
