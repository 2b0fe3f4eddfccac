package sim

import (
	"testing"

	"github.com/pthm-cable/wander/components"
	"github.com/pthm-cable/wander/explore"
)

// openTerrain returns terrain where every in-bounds point is walkable.
func openTerrain() *Terrain {
	cfg := testTerrainConfig()
	cfg.WallThreshold = 2.0
	return NewTerrain(1, cfg, 100, 100)
}

func TestBodyStepsTowardGoal(t *testing.T) {
	body := NewBody(openTerrain(), 10, 10, 5)
	body.SetPosition(components.Position{X: 10, Y: 10})

	body.RequestMove(components.Position{X: 20, Y: 10})
	body.Step(1.0) // one second at speed 5

	pos, ok := body.CurrentPosition()
	if !ok {
		t.Fatal("body lost its position")
	}
	if pos.X < 14.9 || pos.X > 15.1 {
		t.Errorf("pos.X = %v, want ~15 after one second at speed 5", pos.X)
	}
	if body.DistanceTraveled() < 4.9 {
		t.Errorf("DistanceTraveled = %v, want ~5", body.DistanceTraveled())
	}
}

func TestBodyArrivesAndStops(t *testing.T) {
	body := NewBody(openTerrain(), 10, 10, 5)
	body.SetPosition(components.Position{X: 10, Y: 10})
	body.RequestMove(components.Position{X: 12, Y: 10})

	for i := 0; i < 10; i++ {
		body.Step(0.1)
	}
	pos, _ := body.CurrentPosition()
	if explore.PlanarDist(pos, components.Position{X: 12, Y: 10}) > 0.01 {
		t.Errorf("body at %+v, want at goal (12,10)", pos)
	}

	// No goal left: further steps do not move the body.
	before := body.DistanceTraveled()
	body.Step(1.0)
	if body.DistanceTraveled() != before {
		t.Error("body moved without a goal")
	}
}

func TestBodyRefusesUnwalkableStep(t *testing.T) {
	body := NewBody(openTerrain(), 2, 50, 5)
	body.SetPosition(components.Position{X: 2, Y: 50})

	// Out of bounds is unwalkable; the body must stall at the edge.
	body.RequestMove(components.Position{X: -20, Y: 50})
	for i := 0; i < 100; i++ {
		body.Step(0.1)
	}

	pos, _ := body.CurrentPosition()
	if pos.X < 0 {
		t.Errorf("body escaped the world at X = %v", pos.X)
	}
}

func TestBodyLatestRequestWins(t *testing.T) {
	body := NewBody(openTerrain(), 10, 10, 5)
	body.SetPosition(components.Position{X: 10, Y: 10})

	body.RequestMove(components.Position{X: 90, Y: 10})
	body.RequestMove(components.Position{X: 10, Y: 20})
	body.Step(1.0)

	pos, _ := body.CurrentPosition()
	if pos.X != 10 || pos.Y <= 10 {
		t.Errorf("body at %+v, want moving toward (10,20)", pos)
	}
}
