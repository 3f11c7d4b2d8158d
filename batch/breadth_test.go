package batch

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/arxlab/neoalz/cipher"
	"github.com/arxlab/neoalz/substrate"
)

func TestBatchRunBreadthCoversEveryJob(t *testing.T) {
	desc := cipher.NeoAlzette()
	jobs := []Job{
		{RoundCount: 1, MaskA: 0x1, MaskB: 0x0},
		{RoundCount: 1, MaskA: 0x2, MaskB: 0x0},
	}
	cfg := DefaultConfiguration()
	cfg.BreadthMaxNodes = 2000

	outcomes := RunBreadth(desc, jobs, cfg, nil, nil)
	require.Len(t, outcomes, len(jobs))
	for i, o := range outcomes {
		require.Equal(t, i, o.JobIndex)
	}
}

func TestBatchRunBreadthExhaustedResourceStillCompletesWithoutMemoization(t *testing.T) {
	desc := cipher.NeoAlzette()
	jobs := []Job{
		{RoundCount: 1, MaskA: 0x1, MaskB: 0x0},
		{RoundCount: 1, MaskA: 0x2, MaskB: 0x0},
	}
	cfg := DefaultConfiguration()
	cfg.BreadthMaxNodes = 2000

	resource := substrate.NewBoundedResource(1) // too small for any job to reserve memoBudgetBytes
	outcomes := RunBreadth(desc, jobs, cfg, nil, resource)
	require.Len(t, outcomes, len(jobs))
}
