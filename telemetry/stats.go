package telemetry

import "log/slog"

// WindowStats holds aggregated exploration statistics for a time
// window. Counter fields are deltas over the window; coverage and
// frontier fields are sampled at window end.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Agent population at window end
	AgentCount int `csv:"agents"`

	// Map knowledge at window end
	Coverage        float64 `csv:"coverage"` // explored / total known cells
	ExploredCells   int     `csv:"explored_cells"`
	BlockedCells    int     `csv:"blocked_cells"`
	UnexploredCells int     `csv:"unexplored_cells"`
	FrontierSize    int     `csv:"frontier"`

	// Planner events during window
	ChunksScanned     int `csv:"chunks_scanned"`
	TargetsAccepted   int `csv:"targets_accepted"`
	RejectedCooldown  int `csv:"rejected_cooldown"`
	RejectedExhausted int `csv:"rejected_exhausted"`
	EmptyCycles       int `csv:"empty_cycles"`

	// Walker events during window
	MoveRequests   int `csv:"move_requests"`
	StuckSkips     int `csv:"stuck_skips"`
	PathsCompleted int `csv:"paths_completed"`
	IndexFaults    int `csv:"index_faults"`

	// Movement during window
	DistanceTraveled float64 `csv:"distance"`
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"agents", s.AgentCount,
		"coverage", s.Coverage,
		"explored_cells", s.ExploredCells,
		"blocked_cells", s.BlockedCells,
		"unexplored_cells", s.UnexploredCells,
		"frontier", s.FrontierSize,
		"chunks_scanned", s.ChunksScanned,
		"targets_accepted", s.TargetsAccepted,
		"rejected_cooldown", s.RejectedCooldown,
		"rejected_exhausted", s.RejectedExhausted,
		"empty_cycles", s.EmptyCycles,
		"move_requests", s.MoveRequests,
		"stuck_skips", s.StuckSkips,
		"paths_completed", s.PathsCompleted,
		"index_faults", s.IndexFaults,
		"distance", s.DistanceTraveled,
	)
}
