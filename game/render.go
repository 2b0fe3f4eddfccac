package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wander/explore"
)

// terrainTexture wraps the once-generated terrain backdrop.
type terrainTexture struct {
	tex rl.Texture2D
}

// Agent palette, indexed by agent ID.
var agentColors = []rl.Color{
	rl.NewColor(102, 191, 255, 255), // sky blue
	rl.NewColor(255, 161, 0, 255),   // orange
	rl.NewColor(0, 228, 48, 255),    // green
	rl.NewColor(255, 109, 194, 255), // pink
	rl.NewColor(200, 122, 255, 255), // purple
	rl.NewColor(253, 249, 0, 255),   // yellow
	rl.NewColor(255, 84, 84, 255),   // red
	rl.NewColor(0, 158, 189, 255),   // teal
}

func agentColor(id uint32) rl.Color {
	return agentColors[int(id)%len(agentColors)]
}

// Draw renders one frame.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(18, 20, 26, 255))

	g.ensureTerrainTexture()
	ox, oy := g.camera.WorldToScreen(0, 0)
	rl.DrawTextureEx(g.terrainTex.tex, rl.Vector2{X: ox, Y: oy}, 0, g.camera.Zoom, rl.White)

	g.drawExploration()
	g.drawAgents()
	g.drawHUD()
	if g.showPanel {
		g.drawPanel()
	}

	rl.EndDrawing()
}

// ensureTerrainTexture rasterizes the terrain once, one texel per
// world unit.
func (g *Game) ensureTerrainTexture() {
	if g.terrainTexLoaded {
		return
	}

	w := int(g.worldW)
	h := int(g.worldH)
	img := rl.GenImageColor(w, h, rl.Black)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			wx := float32(x) + 0.5
			wy := float32(y) + 0.5
			var col rl.Color
			if g.terrain.Walkable(wx, wy) {
				// Shade open ground by height for some relief.
				shade := uint8(60 + g.terrain.GroundHeight(wx, wy)*8)
				col = rl.NewColor(shade/2, shade, shade/2, 255)
			} else {
				col = rl.NewColor(52, 46, 46, 255)
			}
			rl.ImageDrawPixel(img, int32(x), int32(y), col)
		}
	}
	g.terrainTex.tex = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	g.terrainTexLoaded = true
}

func (g *Game) unloadTerrainTexture() {
	if g.terrainTexLoaded {
		rl.UnloadTexture(g.terrainTex.tex)
		g.terrainTexLoaded = false
	}
}

// drawExploration overlays each agent's occupancy knowledge and
// frontier ring.
func (g *Game) drawExploration() {
	for id, nav := range g.navs {
		col := agentColor(id)
		params := nav.planner.Params()
		chunkSize := params.ChunkWorldSize()
		cellSize := params.CellSize

		nav.state.Tree.Range(func(cx, cy int, chunk *explore.Chunk) {
			originX := float32(cx) * chunkSize
			originY := float32(cy) * chunkSize
			if !g.camera.IsVisible(originX+chunkSize/2, originY+chunkSize/2, chunkSize) {
				return
			}

			for ly := 0; ly < explore.ChunkSize; ly++ {
				for lx := 0; lx < explore.ChunkSize; lx++ {
					cell := chunk.Cell(lx, ly)
					if cell == explore.CellUnexplored {
						continue
					}
					sx, sy := g.camera.WorldToScreen(
						originX+float32(lx)*cellSize,
						originY+float32(ly)*cellSize,
					)
					size := int32(cellSize*g.camera.Zoom) + 1
					if cell == explore.CellExplored {
						rl.DrawRectangle(int32(sx), int32(sy), size, size, rl.Fade(col, 0.12))
					} else {
						rl.DrawRectangle(int32(sx), int32(sy), size, size, rl.Fade(rl.Red, 0.18))
					}
				}
			}
		})

		if g.showFrontier {
			for _, coord := range nav.state.Frontier.Coords() {
				sx, sy := g.camera.WorldToScreen(
					float32(coord.X)*chunkSize,
					float32(coord.Y)*chunkSize,
				)
				size := int32(chunkSize * g.camera.Zoom)
				rl.DrawRectangleLines(int32(sx), int32(sy), size, size, rl.Fade(rl.Yellow, 0.5))
			}
		}
	}
}

// drawAgents renders agent bodies, their targets, and debug labels.
func (g *Game) drawAgents() {
	for id, nav := range g.navs {
		pos, ok := nav.body.CurrentPosition()
		if !ok {
			continue
		}
		col := agentColor(id)
		sx, sy := g.camera.WorldToScreen(pos.X, pos.Y)

		if target, hasTarget := nav.planner.CurrentTarget(); hasTarget {
			tx, ty := g.camera.WorldToScreen(target.X, target.Y)
			rl.DrawLineEx(rl.Vector2{X: sx, Y: sy}, rl.Vector2{X: tx, Y: ty}, 1, rl.Fade(col, 0.4))
			rl.DrawCircleLines(int32(tx), int32(ty), 4, col)
		}

		radius := 1.5 * g.camera.Zoom
		if radius < 3 {
			radius = 3
		}
		rl.DrawCircleV(rl.Vector2{X: sx, Y: sy}, radius, col)

		if g.debugMode {
			label := fmt.Sprintf("%s %s", agentLabel(id), nav.walker.Status())
			rl.DrawText(label, int32(sx)+6, int32(sy)-6, 10, rl.White)
		}
	}
}

// drawHUD renders the status lines in the top-left corner.
func (g *Game) drawHUD() {
	y := int32(10)
	line := func(format string, args ...interface{}) {
		rl.DrawText(fmt.Sprintf(format, args...), 10, y, 18, rl.RayWhite)
		y += 22
	}

	line("tick %d  (%.0fs)  %dx", g.tick, g.simTime, g.stepsPerUpdate)
	line("coverage %.1f%%", g.Coverage()*100)
	if g.paused {
		line("PAUSED")
	}
	if g.debugMode {
		t := g.Totals()
		line("accepted %d  stuck %d  scans %d", t.Planner.TargetsAccepted, t.Walker.StuckSkips, t.Planner.ChunksScanned)
	}

	rl.DrawText("space pause | tab panel | d debug | f frontier | l log | arrows/wheel camera",
		10, int32(g.screenHeight)-24, 14, rl.Gray)
}
