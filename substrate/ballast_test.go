package substrate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryBallastZeroHeadroomNeverStarts(t *testing.T) {
	b := NewMemoryBallast(0)
	b.Start()
	require.Equal(t, uint64(0), b.AllocatedBytes())
	b.Stop()
}

func TestMemoryBallastStopClearsAllocation(t *testing.T) {
	b := NewMemoryBallast(ballastStepBytes)
	b.tryAllocateOneBlock()
	require.Equal(t, uint64(ballastStepBytes), b.AllocatedBytes())
	b.clear()
	require.Equal(t, uint64(0), b.AllocatedBytes())
}

func TestMemoryBallastAllocateStopsAtHeadroom(t *testing.T) {
	b := NewMemoryBallast(ballastStepBytes)
	b.tryAllocateOneBlock()
	b.tryAllocateOneBlock() // second attempt must refuse: would exceed headroom
	require.Equal(t, uint64(ballastStepBytes), b.AllocatedBytes())
}

func TestMemoryBallastFreeOneBlock(t *testing.T) {
	b := NewMemoryBallast(2 * ballastStepBytes)
	b.tryAllocateOneBlock()
	b.tryAllocateOneBlock()
	require.Equal(t, uint64(2*ballastStepBytes), b.AllocatedBytes())
	b.tryFreeOneBlock()
	require.Equal(t, uint64(ballastStepBytes), b.AllocatedBytes())
}
