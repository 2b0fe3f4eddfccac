package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	panelWidth   = 260
	panelPadding = 10
)

// drawPanel renders the tuning panel: live sliders over the planner
// and walker parameters, applied to every agent.
func (g *Game) drawPanel() {
	px := g.screenWidth - panelWidth - panelPadding
	py := float32(panelPadding)

	rl.DrawRectangle(int32(px)-panelPadding, 0, panelWidth+2*panelPadding,
		int32(g.screenHeight), rl.Fade(rl.Black, 0.6))

	rl.DrawText("Exploration", int32(px), int32(py), 20, rl.RayWhite)
	py += 35

	// All agents share parameters; read from any planner.
	var sample *agentNav
	for _, nav := range g.navs {
		sample = nav
		break
	}
	if sample == nil {
		return
	}
	pp := sample.planner.Params()
	wp := sample.walker.Params()

	slider := func(label string, value, min, max float32, format string) float32 {
		rl.DrawText(label, int32(px), int32(py), 14, rl.Gray)
		py += 18
		v := gui.SliderBar(
			rl.Rectangle{X: px, Y: py, Width: panelWidth - 60, Height: 20},
			"", "",
			value, min, max,
		)
		rl.DrawText(fmt.Sprintf(format, v), int32(px+panelWidth-52), int32(py+2), 16, rl.RayWhite)
		py += 32
		return v
	}

	pp.ExplorationRadius = slider("Exploration radius", pp.ExplorationRadius, 5, 60, "%.0f")
	pp.CooldownWindow = float64(slider("Cooldown window (s)", float32(pp.CooldownWindow), 0, 120, "%.0f"))
	pp.ExploredPenalty = slider("Explored penalty", pp.ExploredPenalty, 0, 1, "%.2f")
	wp.StuckTimeout = float64(slider("Stuck timeout (s)", float32(wp.StuckTimeout), 0.5, 10, "%.1f"))

	for _, nav := range g.navs {
		nav.planner.SetParams(pp)
		nav.walker.SetParams(wp)
		nav.watch.SetThresholds(wp.StuckDistance, wp.StuckTimeout)
	}

	py += 8
	pauseText := "Pause"
	if g.paused {
		pauseText = "Resume"
	}
	if gui.Button(rl.Rectangle{X: px, Y: py, Width: 115, Height: 30}, pauseText) {
		g.paused = !g.paused
	}
	if gui.Button(rl.Rectangle{X: px + 125, Y: py, Width: 115, Height: 30}, "Reset Map") {
		g.ResetExploration()
	}
}
