package search

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// CheckpointWriter appends one "=== checkpoint ===" block per
// best-weight improvement to the underlying writer. It owns no
// lifetime beyond the run that holds it; callers are responsible for
// closing the underlying io.Writer if it needs closing.
type CheckpointWriter struct {
	mu  sync.Mutex
	out io.Writer
}

// NewCheckpointWriter wraps an io.Writer (typically an *os.File opened
// append-only) as a CheckpointWriter.
func NewCheckpointWriter(out io.Writer) *CheckpointWriter {
	return &CheckpointWriter{out: out}
}

// Record appends one checkpoint block. Hex words are formatted as
// "0x" + 8 lowercase hex digits, matching the reference log format.
func (c *CheckpointWriter) Record(reason string, rounds int, startA, startB uint32, bestWeight int, nodesVisited uint64, elapsedSec float64, bestA, bestB uint32, trail []RoundTrailEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var b []byte
	b = append(b, "=== checkpoint ===\n"...)
	b = append(b, fmt.Sprintf("timestamp_local: %s\n", time.Now().Format(time.RFC3339))...)
	b = append(b, fmt.Sprintf("reason: %s\n", reason)...)
	b = append(b, fmt.Sprintf("rounds: %d\n", rounds)...)
	b = append(b, fmt.Sprintf("start_mask_a: 0x%08x\n", startA)...)
	b = append(b, fmt.Sprintf("start_mask_b: 0x%08x\n", startB)...)
	b = append(b, fmt.Sprintf("best_weight: %d\n", bestWeight)...)
	b = append(b, fmt.Sprintf("nodes_visited: %d\n", nodesVisited)...)
	b = append(b, fmt.Sprintf("elapsed_sec: %.3f\n", elapsedSec)...)
	b = append(b, fmt.Sprintf("best_input_mask_a: 0x%08x\n", bestA)...)
	b = append(b, fmt.Sprintf("best_input_mask_b: 0x%08x\n", bestB)...)
	b = append(b, fmt.Sprintf("trail_steps: %d\n", len(trail))...)
	for _, step := range trail {
		b = append(b, fmt.Sprintf("%d %d 0x%08x 0x%08x 0x%08x 0x%08x\n",
			step.RoundIndex, step.RoundWeight, step.OutMaskA, step.OutMaskB, step.InMaskA, step.InMaskB)...)
	}

	_, err := c.out.Write(b)
	return err
}
