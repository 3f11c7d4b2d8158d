package search

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckpointWriterRecordsExpectedFields(t *testing.T) {
	var buf bytes.Buffer
	w := NewCheckpointWriter(&buf)
	trail := []RoundTrailEntry{
		{RoundIndex: 0, OutMaskA: 1, OutMaskB: 2, InMaskA: 3, InMaskB: 4, RoundWeight: 2},
	}
	err := w.Record("improvement", 1, 0x12345678, 0x9abcdef0, 2, 7, 0.125, 3, 4, trail)
	require.NoError(t, err)

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "=== checkpoint ===\n"))
	require.Contains(t, out, "rounds: 1\n")
	require.Contains(t, out, "start_mask_a: 0x12345678\n")
	require.Contains(t, out, "start_mask_b: 0x9abcdef0\n")
	require.Contains(t, out, "best_weight: 2\n")
	require.Contains(t, out, "nodes_visited: 7\n")
	require.Contains(t, out, "best_input_mask_a: 0x00000003\n")
	require.Contains(t, out, "best_input_mask_b: 0x00000004\n")
	require.Contains(t, out, "trail_steps: 1\n")
	require.Contains(t, out, "0 2 0x00000001 0x00000002 0x00000003 0x00000004\n")
}

func TestCheckpointWriterAppendsMultipleBlocks(t *testing.T) {
	var buf bytes.Buffer
	w := NewCheckpointWriter(&buf)
	require.NoError(t, w.Record("improvement", 1, 1, 1, 3, 1, 0.01, 1, 1, nil))
	require.NoError(t, w.Record("improvement", 1, 1, 1, 2, 2, 0.02, 1, 1, nil))
	require.Equal(t, 2, strings.Count(buf.String(), "=== checkpoint ==="))
}
