package batch

import "errors"

var (
	// ErrZeroZeroMask is returned for a batch-file line whose masks are
	// both zero, per spec.md §6's "(0, 0) is rejected".
	ErrZeroZeroMask = errors.New("batch: mask pair (0, 0) is rejected")

	// ErrMalformedLine is returned for a non-blank, non-comment line that
	// is not exactly "MASK_A MASK_B" or "ROUNDS MASK_A MASK_B".
	ErrMalformedLine = errors.New("batch: malformed batch file line")

	// ErrMissingSeed is returned when RNG-seeded job generation is
	// requested without a seed; spec.md §4.7 makes a seed mandatory for
	// RNG jobs (no silently-random default).
	ErrMissingSeed = errors.New("batch: RNG job generation requires an explicit seed")

	// ErrNoJobs is returned when the job list (parsed or generated) is
	// empty, and by Run when no job has a feasible breadth result.
	ErrNoJobs = errors.New("batch: job list is empty")
)
