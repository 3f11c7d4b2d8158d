package batch

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
)

// Job is one independent search task: a round count and a start mask
// pair, ready to hand to search.Run.
type Job struct {
	RoundCount int
	MaskA      uint32
	MaskB      uint32
}

// ParseBatchFile reads the batch file format from spec.md §6: UTF-8 text,
// '#' starts a comment to end of line, blank lines are ignored, each
// remaining line is either "MASK_A MASK_B" (defaultRoundCount is used) or
// "ROUNDS MASK_A MASK_B", commas are treated as whitespace, and a (0, 0)
// mask pair is rejected.
func ParseBatchFile(r io.Reader, defaultRoundCount int) ([]Job, error) {
	var jobs []Job
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		line = strings.ReplaceAll(line, ",", " ")
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		job, err := parseJobFields(fields, defaultRoundCount)
		if err != nil {
			return nil, fmt.Errorf("batch: line %d: %w", lineNo, err)
		}
		jobs = append(jobs, job)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, ErrNoJobs
	}
	return jobs, nil
}

func parseJobFields(fields []string, defaultRoundCount int) (Job, error) {
	var rounds int
	var maskAField, maskBField string

	switch len(fields) {
	case 2:
		rounds = defaultRoundCount
		maskAField, maskBField = fields[0], fields[1]
	case 3:
		r, err := strconv.ParseUint(fields[0], 0, 32)
		if err != nil {
			return Job{}, fmt.Errorf("%w: rounds %q", ErrMalformedLine, fields[0])
		}
		rounds = int(r)
		maskAField, maskBField = fields[1], fields[2]
	default:
		return Job{}, ErrMalformedLine
	}

	maskA, err := strconv.ParseUint(maskAField, 0, 32)
	if err != nil {
		return Job{}, fmt.Errorf("%w: mask_a %q", ErrMalformedLine, maskAField)
	}
	maskB, err := strconv.ParseUint(maskBField, 0, 32)
	if err != nil {
		return Job{}, fmt.Errorf("%w: mask_b %q", ErrMalformedLine, maskBField)
	}
	if maskA == 0 && maskB == 0 {
		return Job{}, ErrZeroZeroMask
	}
	return Job{RoundCount: rounds, MaskA: uint32(maskA), MaskB: uint32(maskB)}, nil
}

// GenerateRNGJobs deterministically generates count nonzero-mask jobs
// from seed, per spec.md §4.7's "job count + RNG seed" mode. A zero seed
// is rejected (ErrMissingSeed) rather than silently substituted, since an
// unintentionally-random batch run is exactly the failure mode spec.md
// calls out as requiring an explicit seed.
func GenerateRNGJobs(count int, seed int64, roundCount int) ([]Job, error) {
	if seed == 0 {
		return nil, ErrMissingSeed
	}
	if count <= 0 {
		return nil, ErrNoJobs
	}
	rng := rand.New(rand.NewSource(seed))
	jobs := make([]Job, 0, count)
	for len(jobs) < count {
		a := rng.Uint32()
		b := rng.Uint32()
		if a == 0 && b == 0 {
			continue
		}
		jobs = append(jobs, Job{RoundCount: roundCount, MaskA: a, MaskB: b})
	}
	return jobs, nil
}
