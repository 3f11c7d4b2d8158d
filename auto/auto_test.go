package auto

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/arxlab/neoalz/cipher"
)

func TestRunProducesATopKListAndADeepResultNoWorseThanIt(t *testing.T) {
	desc := cipher.NeoAlzette()
	cfg := DefaultConfiguration(1)
	cfg.BreadthCandidateCount = 16
	cfg.TopK = 4
	cfg.BreadthMaxNodes = 2000
	cfg.DeepMaxAddCandidates = 3
	cfg.DeepMaxSubCandidates = 3

	res, err := Run(desc, 0x00000001, 0x00000000, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, res.BreadthTopK)
	require.True(t, res.Deep.Found)
	require.LessOrEqual(t, res.Deep.BestWeight, res.DeepSeedJob.Result.BestWeight)
}

func TestRunRejectsZeroCandidateCount(t *testing.T) {
	desc := cipher.NeoAlzette()
	cfg := DefaultConfiguration(1)
	cfg.BreadthCandidateCount = 0

	_, err := Run(desc, 1, 0, cfg)
	require.ErrorIs(t, err, ErrNoCandidates)
}
