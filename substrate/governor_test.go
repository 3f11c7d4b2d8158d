package substrate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryGovernorDisabledNeverReportsPressure(t *testing.T) {
	g := NewMemoryGovernor()
	g.UpdateFromSample(0)
	require.False(t, g.InPressure())
}

func TestMemoryGovernorEntersPressureBelowHeadroom(t *testing.T) {
	g := NewMemoryGovernor()
	g.Enable(1000)
	g.UpdateFromSample(500)
	require.True(t, g.InPressure())
}

func TestMemoryGovernorHysteresisPreventsImmediateRecovery(t *testing.T) {
	g := NewMemoryGovernor()
	g.Enable(1000)
	g.UpdateFromSample(500)
	require.True(t, g.InPressure())

	g.UpdateFromSample(1000 + hysteresisBytes - 1)
	require.True(t, g.InPressure(), "must stay in pressure until past the hysteresis band")

	g.UpdateFromSample(1000 + hysteresisBytes + 1)
	require.False(t, g.InPressure())
}

func TestMemoryGovernorPollIfNeededRateLimits(t *testing.T) {
	g := NewMemoryGovernor()
	g.Enable(1000)
	calls := 0
	g.SetPollFn(func() SystemMemoryInfo {
		calls++
		return SystemMemoryInfo{AvailablePhysicalBytes: 2000}
	})

	now := time.Now()
	g.PollIfNeeded(now)
	g.PollIfNeeded(now.Add(time.Millisecond))
	require.Equal(t, 1, calls)

	g.PollIfNeeded(now.Add(time.Second))
	require.Equal(t, 2, calls)
}
