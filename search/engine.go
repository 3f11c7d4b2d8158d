package search

import (
	"math"
	"time"

	"github.com/arxlab/neoalz/cipher"
	"github.com/arxlab/neoalz/kernel"
)

// Context holds one run's mutable search state: the owning engine's
// current best, its working trail stack, node counter, and stop flags.
// Never shared across goroutines — callers running parallel searches
// (package auto, package batch) construct one Context (via Run) per
// worker.
type Context struct {
	cfg  Configuration
	desc cipher.Description

	startA, startB uint32

	nodesVisited uint64
	cadenceSteps uint64

	bestWeight     int
	bestTrail      []RoundTrailEntry
	bestInputMaskA uint32
	bestInputMaskB uint32
	found          bool

	trail []RoundTrailEntry

	memo *memoTable

	stopNodes  bool
	stopTime   bool
	stopTarget bool

	startTime   time.Time
	deadline    time.Time
	useDeadline bool

	remainingLB []int
}

func resolveLB(cfg Configuration) []int {
	want := cfg.RoundCount + 1
	if len(cfg.RemainingRoundLB) == want {
		out := make([]int, want)
		copy(out, cfg.RemainingRoundLB)
		return out
	}
	return make([]int, want)
}

// cadenceMask returns the bitmask used to rate-limit the stop-flag poll
// to roughly every 2^18 nodes, tightened to 2^10 when the time budget
// is small enough that a coarser cadence could overshoot it badly.
func cadenceMask(cfg Configuration) uint64 {
	if cfg.MaxSeconds > 0 && cfg.MaxSeconds <= 10 {
		return 1<<10 - 1
	}
	return 1<<18 - 1
}

// Run drives one Matsui DFS to completion (or to a budget/target stop)
// from the given start boundary, under cfg, against the given cipher
// description.
func Run(cfg Configuration, desc cipher.Description, startA, startB uint32) (Result, error) {
	if startA == 0 && startB == 0 {
		return Result{}, ErrZeroStartMask
	}
	if cfg.RoundCount < 1 {
		return Result{}, ErrInvalidRoundCount
	}

	c := &Context{
		cfg:         cfg,
		desc:        desc,
		startA:      startA,
		startB:      startB,
		bestWeight:  math.MaxInt32,
		remainingLB: resolveLB(cfg),
		trail:       make([]RoundTrailEntry, 0, cfg.RoundCount),
		startTime:   time.Now(),
	}
	if cfg.SeedBestWeight >= 0 {
		c.bestWeight = cfg.SeedBestWeight
		c.bestTrail = append([]RoundTrailEntry(nil), cfg.SeedTrail...)
		c.bestInputMaskA, c.bestInputMaskB = cfg.SeedBestInputMaskA, cfg.SeedBestInputMaskB
		c.found = true
	}
	if cfg.MemoizationEnabled {
		c.memo = newMemoTable(cfg.RoundCount+1, cfg.Governor)
	}
	if cfg.MaxSeconds > 0 {
		c.useDeadline = true
		c.deadline = c.startTime.Add(time.Duration(cfg.MaxSeconds * float64(time.Second)))
	}

	c.dfs(0, startA, startB, 0)

	res := Result{
		Found:          c.found,
		BestWeight:     c.bestWeight,
		BestInputMaskA: c.bestInputMaskA,
		BestInputMaskB: c.bestInputMaskB,
		Trail:          c.bestTrail,
		NodesVisited:   c.nodesVisited,
	}
	if !c.found {
		res.BestWeight = 0
	}
	if c.stopNodes {
		res.StopReasons = append(res.StopReasons, StopMaxNodes)
	}
	if c.stopTime {
		res.StopReasons = append(res.StopReasons, StopMaxSeconds)
	}
	if c.stopTarget {
		res.StopReasons = append(res.StopReasons, StopTargetHit)
	}
	return res, nil
}

// dfs is the single recursive search step: (depth, boundary masks,
// accumulated weight) -> either a terminal improvement, a prune, or a
// fan-out into the round kernel's predecessors.
func (c *Context) dfs(depth int, maskA, maskB uint32, accumulated int) {
	c.nodesVisited++
	c.cadenceSteps++
	if c.cadenceSteps&cadenceMask(c.cfg) == 0 {
		now := time.Now()
		if c.useDeadline && now.After(c.deadline) {
			c.stopTime = true
		}
		if c.cfg.Governor != nil {
			c.cfg.Governor.PollIfNeeded(now)
		}
	}
	if c.stopTime || c.stopTarget {
		return
	}
	if c.cfg.MaxNodes > 0 && c.nodesVisited > c.cfg.MaxNodes {
		c.stopNodes = true
		return
	}

	if accumulated >= c.bestWeight {
		return
	}
	roundsLeft := c.cfg.RoundCount - depth
	if roundsLeft < len(c.remainingLB) && accumulated+c.remainingLB[roundsLeft] >= c.bestWeight {
		return
	}

	if depth == c.cfg.RoundCount {
		c.recordImprovement(maskA, maskB, accumulated)
		return
	}

	if c.memo != nil && c.memo.ShouldPrune(depth, maskA, maskB, accumulated) {
		return
	}

	lbNext := 0
	if roundsLeft-1 >= 0 && roundsLeft-1 < len(c.remainingLB) {
		lbNext = c.remainingLB[roundsLeft-1]
	}
	roundCap := c.bestWeight - accumulated - lbNext
	if roundCap <= 0 {
		return
	}

	predecessors := kernel.RoundPredecessors(c.desc, maskA, maskB, kernel.Caps{
		WeightCap:         roundCap,
		MaxAddCandidates:  c.cfg.MaxAddCandidates,
		MaxSubCandidates:  c.cfg.MaxSubCandidates,
		MaxInjectionMasks: c.cfg.MaxInjectionMasks,
		MaxPredecessors:   c.cfg.MaxRoundPredecessors,
		UseHighway:        c.cfg.UseHighway,
	})

	for _, step := range predecessors {
		if accumulated+step.Weight >= c.bestWeight {
			break // ascending order: every later candidate is at least as bad
		}
		c.trail = append(c.trail, RoundTrailEntry{
			RoundIndex:  c.cfg.RoundCount - 1 - depth,
			OutMaskA:    maskA,
			OutMaskB:    maskB,
			InMaskA:     step.InMaskA,
			InMaskB:     step.InMaskB,
			RoundWeight: step.Weight,
		})
		c.dfs(depth+1, step.InMaskA, step.InMaskB, accumulated+step.Weight)
		c.trail = c.trail[:len(c.trail)-1]
		if c.stopTime || c.stopTarget || c.stopNodes {
			return
		}
	}
}

func (c *Context) recordImprovement(maskA, maskB uint32, weight int) {
	c.bestWeight = weight
	c.bestTrail = append([]RoundTrailEntry(nil), c.trail...)
	c.bestInputMaskA = maskA
	c.bestInputMaskB = maskB
	c.found = true

	if c.cfg.CheckpointWriter != nil {
		elapsed := time.Since(c.startTime).Seconds()
		_ = c.cfg.CheckpointWriter.Record("improvement", c.cfg.RoundCount, c.startA, c.startB,
			c.bestWeight, c.nodesVisited, elapsed, maskA, maskB, c.bestTrail)
	}
	if c.cfg.TargetWeight >= 0 && c.bestWeight <= c.cfg.TargetWeight {
		c.stopTarget = true
	}
}
