package telemetry

import "github.com/pthm-cable/wander/explore"

// Totals carries the cumulative planner and walker counters summed over
// all agents, plus cumulative distance. The collector diffs successive
// totals to produce per-window deltas.
type Totals struct {
	Planner  explore.PlannerStats
	Walker   explore.WalkerStats
	Distance float64
}

// MapSnapshot carries map-knowledge values sampled at window end.
type MapSnapshot struct {
	AgentCount      int
	ExploredCells   int
	BlockedCells    int
	UnexploredCells int
	FrontierSize    int
}

// Collector turns cumulative counters into windowed stats rows.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float32

	windowStartTick int32
	last            Totals
}

// NewCollector creates a stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec float64, dt float32) *Collector {
	ticksPerWindow := int32(windowDurationSec / float64(dt))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
		windowStartTick:     0,
	}
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats for the closing window and starts the
// next one. Counter fields come from diffing totals against the
// previous flush; snapshot fields pass through as sampled.
func (c *Collector) Flush(currentTick int32, totals Totals, snap MapSnapshot) WindowStats {
	knownCells := snap.ExploredCells + snap.BlockedCells + snap.UnexploredCells
	coverage := 0.0
	if knownCells > 0 {
		coverage = float64(snap.ExploredCells) / float64(knownCells)
	}

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * float64(c.dt),

		AgentCount: snap.AgentCount,

		Coverage:        coverage,
		ExploredCells:   snap.ExploredCells,
		BlockedCells:    snap.BlockedCells,
		UnexploredCells: snap.UnexploredCells,
		FrontierSize:    snap.FrontierSize,

		ChunksScanned:     totals.Planner.ChunksScanned - c.last.Planner.ChunksScanned,
		TargetsAccepted:   totals.Planner.TargetsAccepted - c.last.Planner.TargetsAccepted,
		RejectedCooldown:  totals.Planner.RejectedCooldown - c.last.Planner.RejectedCooldown,
		RejectedExhausted: totals.Planner.RejectedExhausted - c.last.Planner.RejectedExhausted,
		EmptyCycles:       totals.Planner.EmptyCycles - c.last.Planner.EmptyCycles,

		MoveRequests:   totals.Walker.MoveRequests - c.last.Walker.MoveRequests,
		StuckSkips:     totals.Walker.StuckSkips - c.last.Walker.StuckSkips,
		PathsCompleted: totals.Walker.PathsCompleted - c.last.Walker.PathsCompleted,
		IndexFaults:    totals.Walker.IndexFaults - c.last.Walker.IndexFaults,

		DistanceTraveled: totals.Distance - c.last.Distance,
	}

	c.windowStartTick = currentTick
	c.last = totals

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}

// SnapshotState tallies the cell counts and frontier size of one
// exploration state into a MapSnapshot. Call once per agent; coverage
// sums across calls.
func SnapshotState(snap *MapSnapshot, state *explore.ExplorationState) {
	state.Tree.Range(func(cx, cy int, chunk *explore.Chunk) {
		unexplored, explored, blocked := chunk.Counts()
		snap.UnexploredCells += unexplored
		snap.ExploredCells += explored
		snap.BlockedCells += blocked
	})
	snap.FrontierSize += state.Frontier.Len()
}
