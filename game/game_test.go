package game

import (
	"testing"

	"github.com/pthm-cable/wander/config"
	"github.com/pthm-cable/wander/telemetry"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	cfg.World.Width = 120
	cfg.World.Height = 120
	cfg.Agents.Count = 2
	cfg.Agents.SpawnSpread = 10
	cfg.Telemetry.StatsWindow = 2.0
	return cfg
}

func TestHeadlessRunExplores(t *testing.T) {
	var windows []telemetry.WindowStats
	g := NewGameWithOptions(Options{
		Seed:           7,
		Headless:       true,
		StepsPerUpdate: 10,
		Config:         testConfig(t),
		StatsCallback: func(stats telemetry.WindowStats) {
			windows = append(windows, stats)
		},
	})
	defer g.Unload()

	for g.Tick() < 3000 {
		g.UpdateHeadless()
	}

	if g.Coverage() <= 0 {
		t.Error("no cells explored after 3000 ticks")
	}

	totals := g.Totals()
	if totals.Planner.TargetsAccepted == 0 {
		t.Error("no exploration targets accepted")
	}
	if totals.Walker.MoveRequests == 0 {
		t.Error("no movement requests issued")
	}
	if totals.Distance <= 0 {
		t.Error("agents never moved")
	}

	if len(windows) == 0 {
		t.Fatal("no telemetry windows flushed")
	}
	last := windows[len(windows)-1]
	if last.AgentCount != 2 {
		t.Errorf("AgentCount = %d, want 2", last.AgentCount)
	}
	if last.Coverage <= 0 {
		t.Error("telemetry window reports zero coverage")
	}
}

func TestAgentsStayInBounds(t *testing.T) {
	cfg := testConfig(t)
	g := NewGameWithOptions(Options{
		Seed:           11,
		Headless:       true,
		StepsPerUpdate: 5,
		Config:         cfg,
	})
	defer g.Unload()

	for g.Tick() < 1500 {
		g.UpdateHeadless()

		for id, nav := range g.navs {
			pos, ok := nav.body.CurrentPosition()
			if !ok {
				t.Fatalf("%s lost its position", agentLabel(id))
			}
			if pos.X < 0 || pos.X >= g.worldW || pos.Y < 0 || pos.Y >= g.worldH {
				t.Fatalf("%s escaped the world at (%v,%v)", agentLabel(id), pos.X, pos.Y)
			}
		}
	}
}

func TestResetExploration(t *testing.T) {
	g := NewGameWithOptions(Options{
		Seed:           3,
		Headless:       true,
		StepsPerUpdate: 10,
		Config:         testConfig(t),
	})
	defer g.Unload()

	for g.Tick() < 600 {
		g.UpdateHeadless()
	}
	if g.Coverage() <= 0 {
		t.Fatal("nothing explored before reset")
	}

	g.ResetExploration()
	if g.Coverage() != 0 {
		t.Error("coverage nonzero after reset")
	}

	// Exploration resumes from a clean slate.
	for g.Tick() < 1200 {
		g.UpdateHeadless()
	}
	if g.Coverage() <= 0 {
		t.Error("exploration did not resume after reset")
	}
}
