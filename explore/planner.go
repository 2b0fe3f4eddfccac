package explore

import "github.com/pthm-cable/wander/components"

// PlannerParams holds tunable parameters for frontier selection.
type PlannerParams struct {
	CellSize          float32 // world units per occupancy cell
	ExplorationRadius float32 // cells inside this planar radius scan as explored
	ArrivalDistance   float32 // target cleared inside this planar distance
	CooldownWindow    float64 // seconds a visited chunk stays excluded
	ExploredPenalty   float32 // score weight subtracted per explored cell
}

// DefaultPlannerParams returns sensible defaults for frontier selection.
func DefaultPlannerParams() PlannerParams {
	return PlannerParams{
		CellSize:          2.0,
		ExplorationRadius: 20.0,
		ArrivalDistance:   3.0,
		CooldownWindow:    30.0,
		ExploredPenalty:   0.5,
	}
}

// ChunkWorldSize returns the world-unit edge length of a chunk.
func (p PlannerParams) ChunkWorldSize() float32 {
	return p.CellSize * ChunkSize
}

// PlannerStats holds cumulative planner counters for telemetry.
type PlannerStats struct {
	ChunksScanned     int
	TargetsAccepted   int
	RejectedCooldown  int
	RejectedExhausted int // chunks no longer interesting when popped
	EmptyCycles       int // update cycles that found no acceptable target
}

// Planner selects the next frontier chunk to visit. It alternates
// between two states: no target (each Update rescans, rebuilds the
// candidate queue, and tries to pick one) and targeting (Update only
// checks for arrival).
//
// The planner mutates its ExplorationState persistently across calls;
// nothing resets the memory except an explicit state Reset.
type Planner struct {
	world  World
	clock  Clock
	state  *ExplorationState
	params PlannerParams

	target    components.Position
	hasTarget bool
	stats     PlannerStats

	queue *PriorityQueue[ChunkCoord]
}

// NewPlanner creates a planner over the given state. The state may be
// shared with rendering or persistence code but has a single writer:
// this planner, on its own tick.
func NewPlanner(world World, clock Clock, state *ExplorationState, params PlannerParams) *Planner {
	return &Planner{
		world:  world,
		clock:  clock,
		state:  state,
		params: params,
		queue:  NewPriorityQueue[ChunkCoord](),
	}
}

// Params returns the current parameters.
func (p *Planner) Params() PlannerParams {
	return p.params
}

// SetParams replaces the parameters. Takes effect next Update.
func (p *Planner) SetParams(params PlannerParams) {
	p.params = params
}

// Stats returns cumulative planner counters.
func (p *Planner) Stats() PlannerStats {
	return p.stats
}

// CurrentTarget returns the active exploration target, if any.
func (p *Planner) CurrentTarget() (components.Position, bool) {
	return p.target, p.hasTarget
}

// ClearTarget drops the active target. The next Update recomputes from
// scratch.
func (p *Planner) ClearTarget() {
	p.hasTarget = false
}

// Update runs one planning cycle and reports whether a target is
// active afterwards. With a target it only checks for arrival; without
// one it rescans the 3x3 chunk block around the agent, refreshes the
// frontier, and selects the best candidate.
func (p *Planner) Update() bool {
	pos, ok := p.world.CurrentPosition()
	if !ok {
		return p.hasTarget
	}

	if p.hasTarget {
		if PlanarDist(pos, p.target) < p.params.ArrivalDistance {
			// Arrived. Clear now; the next cycle recomputes from
			// scratch against the freshly scanned surroundings.
			p.hasTarget = false
		}
		return p.hasTarget
	}

	ccx, ccy := p.chunkCoordAt(pos)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			p.scanChunk(pos, ccx+dx, ccy+dy)
		}
	}

	return p.selectTarget(pos)
}

// scanChunk reclassifies every cell of chunk (cx, cy) against the
// current agent position and updates the frontier.
//
// Cells inside the exploration radius are settled: explored if
// walkable, blocked otherwise. Cells outside the radius only pick up
// blockage; an unexplored walkable cell out there stays unexplored so
// the chunk keeps its information value.
func (p *Planner) scanChunk(agent components.Position, cx, cy int) {
	chunk := p.state.ChunkAt(cx, cy)
	size := p.params.ChunkWorldSize()
	originX := float32(cx) * size
	originY := float32(cy) * size

	for ly := 0; ly < ChunkSize; ly++ {
		for lx := 0; lx < ChunkSize; lx++ {
			center := components.Position{
				X: originX + (float32(lx)+0.5)*p.params.CellSize,
				Y: originY + (float32(ly)+0.5)*p.params.CellSize,
			}
			center = p.world.ProjectToGround(center)
			walkable := p.world.IsWalkable(center)

			if PlanarDist(agent, center) <= p.params.ExplorationRadius {
				if walkable {
					chunk.SetCell(lx, ly, CellExplored)
				} else {
					chunk.SetCell(lx, ly, CellBlocked)
				}
			} else if !walkable {
				chunk.SetCell(lx, ly, CellBlocked)
			}
		}
	}

	p.state.Frontier.MarkScanned(p.state.Tree, cx, cy)
	p.stats.ChunksScanned++
}

// selectTarget rebuilds the priority queue from the full frontier and
// pops until an acceptable candidate is found. Rejected candidates are
// discarded, not requeued; the next cycle rebuilds anyway.
func (p *Planner) selectTarget(agent components.Position) bool {
	p.queue = NewPriorityQueue[ChunkCoord]()

	for _, coord := range p.state.Frontier.Coords() {
		chunk, ok := p.state.Tree.Get(coord.X, coord.Y)
		if !ok {
			continue
		}
		center := p.chunkCenter(coord)
		unexplored, explored, _ := chunk.Counts()
		gain := float32(unexplored) - p.params.ExploredPenalty*float32(explored)
		score := (PlanarDist(agent, center) + 1) * gain
		// Max-score-first selection over a min-heap.
		p.queue.Push(coord, -score)
	}

	now := p.clock()
	for {
		coord, ok := p.queue.Pop()
		if !ok {
			p.stats.EmptyCycles++
			return false
		}
		chunk, ok := p.state.Tree.Get(coord.X, coord.Y)
		if !ok || !chunk.StillInteresting() {
			p.stats.RejectedExhausted++
			continue
		}
		if p.state.OnCooldown(coord, now, p.params.CooldownWindow) {
			p.stats.RejectedCooldown++
			continue
		}

		// Stamp the cooldown on acceptance, before any movement starts,
		// so the same region is not re-selected every tick en route.
		p.state.RecordVisit(coord, now)
		p.target = p.world.ProjectToGround(p.chunkCenter(coord))
		p.hasTarget = true
		p.stats.TargetsAccepted++
		return true
	}
}

func (p *Planner) chunkCoordAt(pos components.Position) (int, int) {
	size := p.params.ChunkWorldSize()
	return floorDiv(pos.X, size), floorDiv(pos.Y, size)
}

func (p *Planner) chunkCenter(c ChunkCoord) components.Position {
	size := p.params.ChunkWorldSize()
	return components.Position{
		X: (float32(c.X) + 0.5) * size,
		Y: (float32(c.Y) + 0.5) * size,
	}
}

// floorDiv returns floor(v/size) as an int, correct for negative v.
func floorDiv(v, size float32) int {
	q := v / size
	i := int(q)
	if q < 0 && float32(i) != q {
		i--
	}
	return i
}
