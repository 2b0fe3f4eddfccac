package explore

import (
	"fmt"

	"github.com/pthm-cable/wander/components"
)

// WalkerState identifies the waypoint walker's state machine state.
type WalkerState uint8

const (
	WalkerIdle      WalkerState = iota // no path loaded
	WalkerToStart                      // walking a synthetic path to the first waypoint
	WalkerOnPath                       // walking the loaded path
	WalkerPaused                       // walking suspended, path retained
	WalkerCompleted                    // terminal: path finished
)

// String returns a short state label for status output.
func (s WalkerState) String() string {
	switch s {
	case WalkerIdle:
		return "idle"
	case WalkerToStart:
		return "to-start"
	case WalkerOnPath:
		return "walking"
	case WalkerPaused:
		return "paused"
	case WalkerCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// WalkerParams holds tunable parameters for waypoint following.
type WalkerParams struct {
	StartDistance       float32 // beyond this, walk to the path start first
	ArrivalDistance     float32 // waypoint reached inside this planar distance
	MoveInterval        float64 // seconds between movement requests
	StuckSampleInterval float64 // seconds between stuck-detection samples
	StuckDistance       float32 // progress below this per sample counts as stuck
	StuckTimeout        float64 // seconds without progress before skipping ahead
}

// DefaultWalkerParams returns sensible defaults for waypoint following.
func DefaultWalkerParams() WalkerParams {
	return WalkerParams{
		StartDistance:       3.0,
		ArrivalDistance:     1.2,
		MoveInterval:        0.1,
		StuckSampleInterval: 0.5,
		StuckDistance:       0.5,
		StuckTimeout:        2.0,
	}
}

// WalkerStats holds cumulative walker counters for telemetry.
type WalkerStats struct {
	MoveRequests   int
	StuckSkips     int
	PathsCompleted int
	IndexFaults    int // out-of-bounds index forced a stop
}

// WaypointWalker drives an agent along an ordered sequence of
// waypoints. It advances on arrival, skips ahead when the agent stops
// making progress, and rate-limits movement requests. Every method is
// safe to call every tick; failures degrade to "no movement requested
// this tick" rather than panicking.
type WaypointWalker struct {
	world  World
	clock  Clock
	params WalkerParams

	state    WalkerState
	resumeTo WalkerState // state to restore on unpause

	path     []components.Position
	original []components.Position // full path retained while walking to its start
	name     string
	index    int // 1-based; invariant 1 <= index <= len(path) while walking
	forward  bool
	loop     bool

	lastMoveAt     float64
	lastSampleAt   float64
	lastSamplePos  components.Position
	lastProgressAt float64

	stats WalkerStats
}

// NewWaypointWalker creates an idle walker.
func NewWaypointWalker(world World, clock Clock, params WalkerParams) *WaypointWalker {
	return &WaypointWalker{
		world:  world,
		clock:  clock,
		params: params,
		state:  WalkerIdle,
	}
}

// Params returns the current parameters.
func (w *WaypointWalker) Params() WalkerParams {
	return w.params
}

// SetParams replaces the parameters. Takes effect next Advance.
func (w *WaypointWalker) SetParams(params WalkerParams) {
	w.params = params
}

// Stats returns cumulative walker counters.
func (w *WaypointWalker) Stats() WalkerStats {
	return w.stats
}

// State returns the current state machine state.
func (w *WaypointWalker) State() WalkerState {
	return w.state
}

// SetLoop toggles ping-pong looping: on reaching a path end the walker
// reverses direction instead of completing.
func (w *WaypointWalker) SetLoop(loop bool) {
	w.loop = loop
}

// StartWalkingPath loads a path and begins walking it. When the agent
// is farther than StartDistance from points[0], or forceToStart is
// set, the walker first follows a synthetic two-point path from the
// current position to the path start. Returns false when the path is
// empty or no agent position is available.
func (w *WaypointWalker) StartWalkingPath(points []components.Position, name string, forceToStart bool) bool {
	if len(points) == 0 {
		return false
	}
	pos, ok := w.world.CurrentPosition()
	if !ok {
		return false
	}

	w.Stop()
	w.name = name
	w.forward = true
	w.index = 1

	if forceToStart || PlanarDist(pos, points[0]) > w.params.StartDistance {
		w.original = points
		w.path = []components.Position{pos, points[0]}
		w.state = WalkerToStart
	} else {
		w.path = points
		w.state = WalkerOnPath
	}

	now := w.clock()
	w.lastSampleAt = now
	w.lastSamplePos = pos
	w.lastProgressAt = now
	// Let the first Advance issue a request immediately.
	w.lastMoveAt = now - w.params.MoveInterval
	return true
}

// Advance runs one tick of the walker. A no-op unless walking. May be
// called more often than the movement interval; requests are still
// issued at most once per interval.
func (w *WaypointWalker) Advance() {
	if w.state != WalkerToStart && w.state != WalkerOnPath {
		return
	}
	pos, ok := w.world.CurrentPosition()
	if !ok {
		return
	}

	if w.index < 1 || w.index > len(w.path) {
		// Self-healing: an index outside the path is fatal to this walk
		// but not to the process.
		w.stats.IndexFaults++
		w.Stop()
		return
	}

	waypoint := w.path[w.index-1]
	if PlanarDist(pos, waypoint) <= w.params.ArrivalDistance {
		if w.state == WalkerToStart && w.IsAtFinalWaypoint() {
			// Arrived at the path start; begin the recorded path.
			w.switchToOriginal()
		} else {
			w.advanceIndex(pos)
		}
		return
	}

	if !w.IsAtFinalWaypoint() {
		w.checkStuck(pos)
		if w.state != WalkerToStart && w.state != WalkerOnPath {
			return
		}
	}

	now := w.clock()
	if now-w.lastMoveAt >= w.params.MoveInterval {
		w.world.RequestMove(w.path[w.index-1])
		w.lastMoveAt = now
		w.stats.MoveRequests++
	}
}

// switchToOriginal swaps the synthetic navigate-to-start path for the
// recorded one after arriving at its first point.
func (w *WaypointWalker) switchToOriginal() {
	w.path = w.original
	w.original = nil
	w.state = WalkerOnPath
	w.index = 1
	w.resetStuckWindow()
}

// advanceIndex steps the index in the current direction. Reaching a
// boundary completes the path, or reverses when looping.
func (w *WaypointWalker) advanceIndex(pos components.Position) {
	if w.forward {
		if w.index < len(w.path) {
			w.index++
			w.resetStuckWindowAt(pos)
			return
		}
		if w.loop && len(w.path) > 1 {
			w.forward = false
			w.index--
			w.resetStuckWindowAt(pos)
			return
		}
	} else {
		if w.index > 1 {
			w.index--
			w.resetStuckWindowAt(pos)
			return
		}
		if w.loop && len(w.path) > 1 {
			w.forward = true
			w.index++
			w.resetStuckWindowAt(pos)
			return
		}
	}
	w.complete()
}

// checkStuck samples agent movement at a fixed interval and skips to
// the next waypoint when progress stalls past the stuck timeout. Never
// gives up permanently: it keeps skipping until the path is exhausted.
func (w *WaypointWalker) checkStuck(pos components.Position) {
	now := w.clock()
	if now-w.lastSampleAt >= w.params.StuckSampleInterval {
		if PlanarDist(pos, w.lastSamplePos) >= w.params.StuckDistance {
			w.lastProgressAt = now
		}
		w.lastSampleAt = now
		w.lastSamplePos = pos
	}

	if now-w.lastProgressAt > w.params.StuckTimeout {
		w.stats.StuckSkips++
		w.advanceIndex(pos)
	}
}

func (w *WaypointWalker) resetStuckWindow() {
	if pos, ok := w.world.CurrentPosition(); ok {
		w.resetStuckWindowAt(pos)
	}
}

func (w *WaypointWalker) resetStuckWindowAt(pos components.Position) {
	now := w.clock()
	w.lastSampleAt = now
	w.lastSamplePos = pos
	w.lastProgressAt = now
}

// complete enters the terminal Completed state. Kept distinct from
// Idle so callers can tell "finished the path" from "stopped for any
// reason".
func (w *WaypointWalker) complete() {
	w.state = WalkerCompleted
	w.stats.PathsCompleted++
}

// Stop tears down all path state and returns the walker to idle.
// Idempotent.
func (w *WaypointWalker) Stop() {
	w.state = WalkerIdle
	w.resumeTo = WalkerIdle
	w.path = nil
	w.original = nil
	w.name = ""
	w.index = 0
	w.forward = true
	w.loop = false
	w.lastMoveAt = 0
	w.lastSampleAt = 0
	w.lastProgressAt = 0
}

// TogglePause suspends or resumes walking. Only valid while walking or
// paused; returns whether the walker is paused afterwards.
func (w *WaypointWalker) TogglePause() bool {
	switch w.state {
	case WalkerToStart, WalkerOnPath:
		w.resumeTo = w.state
		w.state = WalkerPaused
		return true
	case WalkerPaused:
		w.state = w.resumeTo
		w.resetStuckWindow()
		return false
	default:
		return false
	}
}

// IsAtFinalWaypoint reports whether the current index is the last one
// in the walking direction.
func (w *WaypointWalker) IsAtFinalWaypoint() bool {
	if len(w.path) == 0 {
		return false
	}
	if w.forward {
		return w.index == len(w.path)
	}
	return w.index == 1
}

// IsPathCompleted reports whether the walker finished a path. Only the
// terminal Completed state qualifies; a stopped walker does not.
func (w *WaypointWalker) IsPathCompleted() bool {
	return w.state == WalkerCompleted
}

// Progress returns the current waypoint index and the path length.
func (w *WaypointWalker) Progress() (current, total int) {
	return w.index, len(w.path)
}

// Status returns a one-line human-readable description.
func (w *WaypointWalker) Status() string {
	switch w.state {
	case WalkerIdle:
		return "idle"
	case WalkerCompleted:
		return fmt.Sprintf("completed %q", w.name)
	default:
		return fmt.Sprintf("%s %q (%d/%d)", w.state, w.name, w.index, len(w.path))
	}
}
