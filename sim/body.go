package sim

import (
	"math"

	"github.com/pthm-cable/wander/components"
	"github.com/pthm-cable/wander/explore"
)

// Body is one agent's kinematic presence in the world. It accepts
// movement requests and integrates toward the most recent one at a
// capped speed, refusing steps onto unwalkable ground. A body that
// keeps getting pushed into a wall simply stops moving, which is what
// the walker's stuck detection keys off.
//
// Body implements the world interface the exploration components
// consume, scoped to its own agent.
type Body struct {
	terrain *Terrain

	pos    components.Position
	hasPos bool

	goal     components.Position
	hasGoal  bool
	maxSpeed float32

	traveled float32
}

var _ explore.World = (*Body)(nil)

// NewBody places an agent at the nearest walkable point to (x, y).
func NewBody(terrain *Terrain, x, y, maxSpeed float32) *Body {
	px, py := terrain.NearestWalkable(x, y, 50)
	b := &Body{
		terrain:  terrain,
		maxSpeed: maxSpeed,
		hasPos:   true,
	}
	b.pos = b.ProjectToGround(components.Position{X: px, Y: py})
	return b
}

// CurrentPosition returns the agent's position.
func (b *Body) CurrentPosition() (components.Position, bool) {
	return b.pos, b.hasPos
}

// IsWalkable reports whether the planar point can be stood on.
func (b *Body) IsWalkable(p components.Position) bool {
	return b.terrain.Walkable(p.X, p.Y)
}

// ProjectToGround drops a point onto the terrain surface.
func (b *Body) ProjectToGround(p components.Position) components.Position {
	p.Z = b.terrain.GroundHeight(p.X, p.Y)
	return p
}

// RequestMove records the point to move toward. Only the latest
// request is kept; issuing a new one supersedes any in-flight goal.
func (b *Body) RequestMove(p components.Position) {
	b.goal = p
	b.hasGoal = true
}

// SetPosition teleports the body, snapping to the ground. Testing and
// spawn placement only.
func (b *Body) SetPosition(p components.Position) {
	b.pos = b.ProjectToGround(p)
	b.hasPos = true
}

// DistanceTraveled returns the cumulative planar distance moved.
func (b *Body) DistanceTraveled() float32 {
	return b.traveled
}

// Step integrates one timestep toward the current goal. The step is
// capped at maxSpeed*dt and rejected outright when it would land on
// unwalkable ground.
func (b *Body) Step(dt float32) {
	if !b.hasGoal || !b.hasPos {
		return
	}

	dx := b.goal.X - b.pos.X
	dy := b.goal.Y - b.pos.Y
	dist := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if dist < 1e-6 {
		b.hasGoal = false
		return
	}

	step := b.maxSpeed * dt
	if step > dist {
		step = dist
	}
	nx := b.pos.X + dx/dist*step
	ny := b.pos.Y + dy/dist*step

	if !b.terrain.Walkable(nx, ny) {
		// Blocked. Keep the goal; the walker decides when to give up.
		return
	}

	b.pos = b.ProjectToGround(components.Position{X: nx, Y: ny})
	b.traveled += step
	if step >= dist {
		b.hasGoal = false
	}
}
