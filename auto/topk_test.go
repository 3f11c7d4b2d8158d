package auto

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/arxlab/neoalz/search"
)

func feasible(jobIndex int, weight int, maskA, maskB uint32) JobResult {
	return JobResult{
		JobIndex: jobIndex,
		MaskA:    maskA,
		MaskB:    maskB,
		Result:   search.Result{Found: true, BestWeight: weight},
	}
}

func TestTopKListDropsInfeasibleResults(t *testing.T) {
	list := newTopKList(4)
	list.Insert(JobResult{JobIndex: 0, Result: search.Result{Found: false}})
	require.Empty(t, list.Snapshot())
}

func TestTopKListOrdersByWeightThenJobIndex(t *testing.T) {
	list := newTopKList(4)
	list.Insert(feasible(2, 5, 0, 0))
	list.Insert(feasible(0, 3, 0, 0))
	list.Insert(feasible(1, 3, 0, 0))

	snap := list.Snapshot()
	require.Len(t, snap, 3)
	require.Equal(t, 0, snap[0].JobIndex)
	require.Equal(t, 1, snap[1].JobIndex)
	require.Equal(t, 2, snap[2].JobIndex)
}

func TestTopKListTrimsToCapacity(t *testing.T) {
	list := newTopKList(2)
	list.Insert(feasible(0, 9, 0, 0))
	list.Insert(feasible(1, 1, 0, 0))
	list.Insert(feasible(2, 5, 0, 0))

	snap := list.Snapshot()
	require.Len(t, snap, 2)
	require.Equal(t, 1, snap[0].JobIndex)
	require.Equal(t, 2, snap[1].JobIndex)
}
