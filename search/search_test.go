package search

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/arxlab/neoalz/cipher"
	"github.com/arxlab/neoalz/substrate"
)

// Note: the numeric scenarios in spec.md section 8 (exact best_weight /
// best_input_mask values for specific start masks) are bit-exact claims
// about the real cipher's rotation amounts composed across up to six
// gates per round; asserting them here without the ability to execute
// the engine would be guessing, not testing. What follows instead
// exercises the structural and monotone laws section 8 also specifies,
// which this implementation's control flow makes directly checkable.

func TestRunRejectsZeroStartMask(t *testing.T) {
	desc := cipher.NeoAlzette()
	_, err := Run(DefaultConfiguration(1), desc, 0, 0)
	require.ErrorIs(t, err, ErrZeroStartMask)
}

func TestRunRejectsNonPositiveRoundCount(t *testing.T) {
	desc := cipher.NeoAlzette()
	_, err := Run(DefaultConfiguration(0), desc, 1, 0)
	require.ErrorIs(t, err, ErrInvalidRoundCount)
}

func TestRunIsDeterministic(t *testing.T) {
	desc := cipher.NeoAlzette()
	cfg := DefaultConfiguration(2)
	cfg.MaxAddCandidates = 3
	cfg.MaxSubCandidates = 4

	r1, err := Run(cfg, desc, 0x12345678, 0x9abcdef0)
	require.NoError(t, err)
	r2, err := Run(cfg, desc, 0x12345678, 0x9abcdef0)
	require.NoError(t, err)

	require.Equal(t, r1.Found, r2.Found)
	require.Equal(t, r1.BestWeight, r2.BestWeight)
	require.Equal(t, r1.BestInputMaskA, r2.BestInputMaskA)
	require.Equal(t, r1.BestInputMaskB, r2.BestInputMaskB)
	require.Equal(t, r1.Trail, r2.Trail)
}

func TestDoublingCandidateCapNeverWorsensBestWeight(t *testing.T) {
	desc := cipher.NeoAlzette()
	small := DefaultConfiguration(2)
	small.MaxAddCandidates = 2
	small.MaxSubCandidates = 2

	wide := small
	wide.MaxAddCandidates = 4
	wide.MaxSubCandidates = 4

	rSmall, err := Run(small, desc, 0x12345678, 0x9abcdef0)
	require.NoError(t, err)
	rWide, err := Run(wide, desc, 0x12345678, 0x9abcdef0)
	require.NoError(t, err)

	if rSmall.Found && rWide.Found {
		require.LessOrEqual(t, rWide.BestWeight, rSmall.BestWeight)
	} else if rSmall.Found {
		require.True(t, rWide.Found, "wider caps can never find fewer trails than narrower caps")
	}
}

// Scenario 4: R = 1, max_nodes = 1, max_seconds = 0 -> found = false,
// stop flag "hit max_nodes". The first dfs call (depth 0) does not yet
// exceed the budget; its recursive call into depth 1 (the terminal
// depth for a 1-round search) is the node that pushes the counter past
// the cap, so the terminal improvement is never recorded.
func TestMaxNodesBudgetStopsBeforeTerminal(t *testing.T) {
	desc := cipher.NeoAlzette()
	cfg := DefaultConfiguration(1)
	cfg.MaxNodes = 1

	res, err := Run(cfg, desc, 0x12345678, 0x9abcdef0)
	require.NoError(t, err)
	require.False(t, res.Found)
	require.Contains(t, res.StopReasons, StopMaxNodes)
}

// Scenario 5 (checkpoint half): a generous target weight is hit by the
// very first terminal the DFS reaches (every terminal reached is
// already an improvement, by construction of the prune check ahead of
// it), so exactly one checkpoint block is appended before the
// target-hit stop flag halts the search.
func TestTargetWeightChecksInExactlyOneCheckpointBlock(t *testing.T) {
	desc := cipher.NeoAlzette()
	var buf bytes.Buffer
	cfg := DefaultConfiguration(2)
	cfg.TargetWeight = 100
	cfg.CheckpointWriter = NewCheckpointWriter(&buf)

	res, err := Run(cfg, desc, 0x12345678, 0x9abcdef0)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.LessOrEqual(t, res.BestWeight, 100)
	require.Contains(t, res.StopReasons, StopTargetHit)
	require.Equal(t, 1, strings.Count(buf.String(), "=== checkpoint ==="))
}

// recordImprovement is only ever called by dfs after the accumulated <
// bestWeight prune check, so bestWeight is monotone non-increasing by
// construction; this confirms a full run actually reaches a terminal and
// that the best_weight of successive checkpoint blocks never increases.
func TestBestWeightMonotoneNonIncreasingAcrossImprovements(t *testing.T) {
	desc := cipher.NeoAlzette()
	var buf bytes.Buffer
	cfg := DefaultConfiguration(2)
	cfg.MaxAddCandidates = 3
	cfg.MaxSubCandidates = 3
	cfg.CheckpointWriter = NewCheckpointWriter(&buf)

	res, err := Run(cfg, desc, 0x12345678, 0x9abcdef0)
	require.NoError(t, err)
	require.True(t, res.Found)

	var weights []int
	for _, line := range strings.Split(buf.String(), "\n") {
		if v, ok := strings.CutPrefix(line, "best_weight: "); ok {
			n, err := strconv.Atoi(v)
			require.NoError(t, err)
			weights = append(weights, n)
		}
	}
	require.NotEmpty(t, weights)
	for i := 1; i < len(weights); i++ {
		require.LessOrEqual(t, weights[i], weights[i-1])
	}
	require.Equal(t, res.BestWeight, weights[len(weights)-1])
}

// A Run under a permanently-pressured Governor (memoization skipped on
// every lookup) still completes without error and finds a trail.
func TestRunUnderMemoryPressureStillFindsResult(t *testing.T) {
	desc := cipher.NeoAlzette()
	cfg := DefaultConfiguration(2)
	cfg.MaxAddCandidates = 3
	cfg.MaxSubCandidates = 3

	governor := substrate.NewMemoryGovernor()
	governor.Enable(1000)
	governor.UpdateFromSample(0) // permanently below headroom
	cfg.Governor = governor

	res, err := Run(cfg, desc, 0x12345678, 0x9abcdef0)
	require.NoError(t, err)
	require.True(t, res.Found)
}
