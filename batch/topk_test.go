package batch

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/arxlab/neoalz/search"
)

func feasibleOutcome(jobIndex, weight int) JobOutcome {
	return JobOutcome{JobIndex: jobIndex, Breadth: search.Result{Found: true, BestWeight: weight}}
}

func TestBatchTopKListOrdersByWeightThenJobIndex(t *testing.T) {
	list := newTopKList(3)
	list.Insert(feasibleOutcome(2, 5))
	list.Insert(feasibleOutcome(0, 3))
	list.Insert(feasibleOutcome(1, 3))

	snap := list.Snapshot()
	require.Equal(t, []int{0, 1, 2}, []int{snap[0].JobIndex, snap[1].JobIndex, snap[2].JobIndex})
}

func TestBatchTopKListDropsInfeasible(t *testing.T) {
	list := newTopKList(2)
	list.Insert(JobOutcome{JobIndex: 0, Breadth: search.Result{Found: false}})
	require.Empty(t, list.Snapshot())
}
