package explore

import (
	"testing"

	"github.com/pthm-cable/wander/components"
)

func newTestPlanner(w *fakeWorld, c *fakeClock) *Planner {
	return NewPlanner(w, c.Now, NewExplorationState(), DefaultPlannerParams())
}

// TestPlannerFindsTarget verifies an open world produces a target on
// the first cycle and that the target chunk is cooldown-stamped
// immediately.
func TestPlannerFindsTarget(t *testing.T) {
	world := &fakeWorld{pos: components.Position{}, hasPos: true}
	clock := &fakeClock{now: 10.0}
	p := newTestPlanner(world, clock)

	if !p.Update() {
		t.Fatal("Update found no target in an open world")
	}
	target, ok := p.CurrentTarget()
	if !ok {
		t.Fatal("CurrentTarget missing after successful Update")
	}

	size := p.params.ChunkWorldSize()
	coord := ChunkCoord{X: floorDiv(target.X, size), Y: floorDiv(target.Y, size)}
	if !p.state.OnCooldown(coord, clock.now, p.params.CooldownWindow) {
		t.Error("accepted target chunk not on cooldown")
	}
	if p.Stats().TargetsAccepted != 1 {
		t.Errorf("TargetsAccepted = %d, want 1", p.Stats().TargetsAccepted)
	}
}

// TestPlannerCooldown verifies an accepted chunk is not re-selected
// while its cooldown window runs, even when it stays the best
// candidate, and becomes eligible again afterwards.
func TestPlannerCooldown(t *testing.T) {
	world := &fakeWorld{pos: components.Position{}, hasPos: true}
	clock := &fakeClock{now: 100.0}
	p := newTestPlanner(world, clock)

	size := p.params.ChunkWorldSize()
	targetCoord := func() ChunkCoord {
		target, ok := p.CurrentTarget()
		if !ok {
			t.Fatal("no current target")
		}
		return ChunkCoord{X: floorDiv(target.X, size), Y: floorDiv(target.Y, size)}
	}

	// With the clock frozen, repeated selections must never repeat a
	// chunk: every acceptance stamps its cooldown. The candidate pool
	// eventually exhausts and Update starts returning false.
	var accepted []ChunkCoord
	for i := 0; i < 20; i++ {
		if !p.Update() {
			break
		}
		accepted = append(accepted, targetCoord())
		p.ClearTarget()
	}
	if len(accepted) < 2 {
		t.Fatalf("only %d targets accepted, cannot exercise cooldown", len(accepted))
	}
	seen := make(map[ChunkCoord]bool)
	for _, coord := range accepted {
		if seen[coord] {
			t.Errorf("chunk %v selected twice inside cooldown window", coord)
		}
		seen[coord] = true
	}
	if p.Stats().RejectedCooldown == 0 {
		t.Error("pool exhaustion recorded no cooldown rejections")
	}

	// Past the window the first chunk becomes eligible again.
	first := accepted[0]
	clock.now += p.params.CooldownWindow + 1

	reSelected := false
	for i := 0; i < 20; i++ {
		if !p.Update() {
			break
		}
		if targetCoord() == first {
			reSelected = true
			break
		}
		p.ClearTarget()
	}
	if !reSelected {
		t.Error("chunk never re-selectable after cooldown expiry")
	}
}

// TestPlannerArrival verifies reaching the target clears it and the
// following cycle recomputes a fresh one.
func TestPlannerArrival(t *testing.T) {
	world := &fakeWorld{pos: components.Position{}, hasPos: true}
	clock := &fakeClock{now: 1.0}
	p := newTestPlanner(world, clock)

	if !p.Update() {
		t.Fatal("no initial target")
	}
	target, _ := p.CurrentTarget()

	world.pos = target
	if p.Update() {
		t.Error("Update reported a target on the arrival cycle")
	}
	if _, ok := p.CurrentTarget(); ok {
		t.Error("target not cleared on arrival")
	}

	clock.now += 1.0
	if !p.Update() {
		t.Error("Update after arrival found no fresh target")
	}
}

// TestPlannerCellClassification verifies the scan settles cells inside
// the exploration radius by walkability and only records blockage
// outside it.
func TestPlannerCellClassification(t *testing.T) {
	world := &fakeWorld{
		pos:    components.Position{},
		hasPos: true,
		// Everything at X > 5 is a wall.
		blocked: func(p components.Position) bool { return p.X > 5 },
	}
	clock := &fakeClock{now: 1.0}
	p := newTestPlanner(world, clock)
	p.Update()

	chunk, ok := p.state.Tree.Get(0, 0)
	if !ok {
		t.Fatal("agent chunk not scanned")
	}

	// Cell (0,0) centers at (1,1): walkable, within radius 20.
	if got := chunk.Cell(0, 0); got != CellExplored {
		t.Errorf("near walkable cell = %v, want CellExplored", got)
	}
	// Cell (4,0) centers at (9,1): wall, within radius.
	if got := chunk.Cell(4, 0); got != CellBlocked {
		t.Errorf("near wall cell = %v, want CellBlocked", got)
	}

	// A walkable cell outside the radius stays unexplored. Cell (0,0)
	// of chunk (-1,-1) centers at (-9,-9), ~12.7 units out, so shrink
	// the radius below that.
	params := p.Params()
	params.ExplorationRadius = 5
	p.SetParams(params)
	p.state.Reset()
	p.ClearTarget()
	p.Update()

	far, ok := p.state.Tree.Get(-1, -1)
	if !ok {
		t.Fatal("far chunk not scanned")
	}
	if got := far.Cell(0, 0); got != CellUnexplored {
		t.Errorf("far walkable cell = %v, want CellUnexplored", got)
	}
}

// TestPlannerScoring verifies max-score-first selection: more
// unexplored cells at equal distance wins, and the explored count
// discounts a candidate.
func TestPlannerScoring(t *testing.T) {
	world := &fakeWorld{pos: components.Position{}, hasPos: true}
	clock := &fakeClock{now: 1.0}
	p := newTestPlanner(world, clock)

	rich := NewChunk()
	poor := NewChunk()
	for ly := 0; ly < ChunkSize; ly++ {
		for lx := 0; lx < ChunkSize; lx++ {
			if ly > 0 {
				poor.SetCell(lx, ly, CellExplored)
			}
		}
	}

	// Symmetric placement around the agent: equal distance.
	p.state.Tree.Insert(3, 0, rich)
	p.state.Tree.Insert(-4, 0, poor)
	p.state.Frontier.set[ChunkCoord{3, 0}] = struct{}{}
	p.state.Frontier.set[ChunkCoord{-4, 0}] = struct{}{}

	if !p.selectTarget(components.Position{}) {
		t.Fatal("selectTarget found nothing")
	}
	target, _ := p.CurrentTarget()
	if target.X < 0 {
		t.Errorf("selected the low-information candidate at X=%f", target.X)
	}
}

// TestPlannerNoPosition verifies a missing agent position degrades to
// a no-op cycle.
func TestPlannerNoPosition(t *testing.T) {
	world := &fakeWorld{hasPos: false}
	clock := &fakeClock{}
	p := newTestPlanner(world, clock)

	if p.Update() {
		t.Error("Update reported a target with no agent position")
	}
	if p.Stats().ChunksScanned != 0 {
		t.Error("scan ran with no agent position")
	}
}

// TestPlannerExhaustedQueue verifies a world with nothing interesting
// yields no target rather than looping.
func TestPlannerExhaustedQueue(t *testing.T) {
	world := &fakeWorld{
		pos:     components.Position{},
		hasPos:  true,
		blocked: func(components.Position) bool { return true },
	}
	clock := &fakeClock{now: 1.0}
	p := newTestPlanner(world, clock)

	// All cells blocked: every chunk settles to fully blocked, nothing
	// stays interesting, the frontier stays empty.
	if p.Update() {
		t.Error("Update found a target in a fully blocked world")
	}
	if p.Stats().EmptyCycles == 0 {
		t.Error("empty cycle not recorded")
	}
}
