package substrate

import (
	"sync/atomic"
	"time"
)

// MemoryGovernor is a light "pressure" signal: callers query InPressure()
// before growing a cache or memoization table and skip growth while under
// pressure. It never itself allocates or frees memory; PollFn supplies the
// system memory sample (QuerySystemMemory by default), grounded on
// memory_governor_poll_if_needed/memory_governor_update_from_system_sample
// in runtime_component.hpp.
type MemoryGovernor struct {
	enabled       atomic.Bool
	pressure      atomic.Bool
	headroomBytes atomic.Uint64

	pollFn       func() SystemMemoryInfo
	pollInterval time.Duration
	lastPollNano atomic.Int64
}

// NewMemoryGovernor returns a disabled governor; call Enable to arm it.
func NewMemoryGovernor() *MemoryGovernor {
	g := &MemoryGovernor{
		pollFn:       QuerySystemMemory,
		pollInterval: 250 * time.Millisecond,
	}
	return g
}

// SetPollFn overrides the system-memory sampler, e.g. with a fake for tests.
func (g *MemoryGovernor) SetPollFn(fn func() SystemMemoryInfo) {
	g.pollFn = fn
}

// Enable arms the governor for a run with the given headroom: once
// available memory drops below headroomBytes, InPressure reports true
// until availability recovers above headroom plus a fixed hysteresis
// band (to avoid oscillating on/off every poll near the boundary).
func (g *MemoryGovernor) Enable(headroomBytes uint64) {
	g.headroomBytes.Store(headroomBytes)
	g.pressure.Store(false)
	g.enabled.Store(true)
}

func (g *MemoryGovernor) Disable() {
	g.enabled.Store(false)
	g.pressure.Store(false)
}

func (g *MemoryGovernor) InPressure() bool {
	return g.enabled.Load() && g.pressure.Load()
}

// HeadroomBytes returns the headroom the governor was last Enable'd with,
// 0 if it was never enabled.
func (g *MemoryGovernor) HeadroomBytes() uint64 {
	return g.headroomBytes.Load()
}

// hysteresisBytes matches runtime_component.hpp's MemoryBallast hysteresis
// band, reused here so pressure does not flap across a single poll's
// sampling noise.
const hysteresisBytes = 256 * 1024 * 1024

// UpdateFromSample feeds one memory sample into the pressure state.
func (g *MemoryGovernor) UpdateFromSample(availablePhysicalBytes uint64) {
	if !g.enabled.Load() {
		return
	}
	headroom := g.headroomBytes.Load()
	switch {
	case availablePhysicalBytes < headroom:
		g.pressure.Store(true)
	case availablePhysicalBytes > headroom+hysteresisBytes:
		g.pressure.Store(false)
	}
}

// PollIfNeeded rate-limits sampling to at most once per pollInterval,
// mirroring the cadence-gated pattern search.Context uses for its own
// deadline check; cheap to call from a hot loop.
func (g *MemoryGovernor) PollIfNeeded(now time.Time) {
	if !g.enabled.Load() {
		return
	}
	last := g.lastPollNano.Load()
	nowNano := now.UnixNano()
	if nowNano-last < g.pollInterval.Nanoseconds() {
		return
	}
	if !g.lastPollNano.CompareAndSwap(last, nowNano) {
		return // another goroutine just polled
	}
	sample := g.pollFn()
	g.UpdateFromSample(sample.AvailablePhysicalBytes)
}
