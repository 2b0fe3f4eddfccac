package explore

import "github.com/pthm-cable/wander/components"

// ProgressWatch detects a pursuit that has stopped closing on its
// target. The walker skips waypoints when stuck mid-path but never
// skips the final one; on a single-waypoint path that exemption covers
// the whole walk, so the driving code needs an outer guard to abandon
// targets that cannot be reached at all.
type ProgressWatch struct {
	minProgress float32
	timeout     float64

	active   bool
	target   components.Position
	bestDist float32
	since    float64
}

// NewProgressWatch creates an inactive watch. minProgress is the
// planar distance the pursuit must close to count as progress, timeout
// the seconds without progress before the watch fires.
func NewProgressWatch(minProgress float32, timeout float64) *ProgressWatch {
	return &ProgressWatch{minProgress: minProgress, timeout: timeout}
}

// SetThresholds replaces the thresholds. Takes effect next Observe.
func (pw *ProgressWatch) SetThresholds(minProgress float32, timeout float64) {
	pw.minProgress = minProgress
	pw.timeout = timeout
}

// Observe records one tick of pursuit and reports whether the target
// should be abandoned: true once the agent has not come minProgress
// closer to it for timeout seconds. A changed target restarts the
// window, as does Reset.
func (pw *ProgressWatch) Observe(now float64, pos, target components.Position) bool {
	dist := PlanarDist(pos, target)
	if !pw.active || target != pw.target {
		pw.active = true
		pw.target = target
		pw.bestDist = dist
		pw.since = now
		return false
	}
	if dist <= pw.bestDist-pw.minProgress {
		pw.bestDist = dist
		pw.since = now
		return false
	}
	return now-pw.since > pw.timeout
}

// Reset deactivates the watch. The next Observe starts a fresh window.
func (pw *ProgressWatch) Reset() {
	pw.active = false
}
