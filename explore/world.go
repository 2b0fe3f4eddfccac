package explore

import (
	"math"

	"github.com/pthm-cable/wander/components"
)

// World is the narrow interface the engine drives an agent through.
// Implementations bind the engine to a concrete world; the engine
// treats all four capabilities as opaque.
type World interface {
	// CurrentPosition returns the agent position, or false if the agent
	// is not available this tick.
	CurrentPosition() (components.Position, bool)

	// IsWalkable reports whether the point is traversable.
	IsWalkable(p components.Position) bool

	// ProjectToGround returns p with Z set to the terrain height.
	ProjectToGround(p components.Position) components.Position

	// RequestMove asks the agent to move toward p. Fire-and-forget; the
	// engine re-requests until arrival.
	RequestMove(p components.Position)
}

// Clock returns monotonic time in seconds. The engine never sleeps; all
// waiting is expressed as comparisons against this clock, sampled once
// per tick.
type Clock func() float64

// PlanarDist returns the XY-plane distance between two positions.
// Z is terrain height and does not participate.
func PlanarDist(a, b components.Position) float32 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return float32(math.Sqrt(dx*dx + dy*dy))
}
