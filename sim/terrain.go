// Package sim provides the simulated world the explorers move through:
// procedurally generated terrain and the kinematic agent bodies.
package sim

import (
	"math"

	"github.com/ojrac/opensimplex-go"

	"github.com/pthm-cable/wander/config"
)

// Terrain is a procedurally generated field over a bounded rectangle.
// A noise value above the wall threshold makes a point unwalkable; the
// same field, attenuated, supplies a ground height so paths are not
// perfectly planar.
type Terrain struct {
	noise  opensimplex.Noise
	cfg    config.TerrainConfig
	width  float32
	height float32
}

// NewTerrain builds terrain for a width x height world from a seed.
func NewTerrain(seed int64, cfg config.TerrainConfig, width, height float32) *Terrain {
	return &Terrain{
		noise:  opensimplex.NewNormalized(seed),
		cfg:    cfg,
		width:  width,
		height: height,
	}
}

// fbm samples fractal brownian motion noise in [0, 1].
func (t *Terrain) fbm(x, y float64) float64 {
	freq := t.cfg.NoiseScale
	amp := 1.0
	sum := 0.0
	norm := 0.0
	for i := 0; i < t.cfg.Octaves; i++ {
		sum += amp * t.noise.Eval2(x*freq, y*freq)
		norm += amp
		freq *= t.cfg.Lacunarity
		amp *= t.cfg.Gain
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}

// InBounds reports whether a planar point lies inside the world
// rectangle [0, width) x [0, height).
func (t *Terrain) InBounds(x, y float32) bool {
	return x >= 0 && x < t.width && y >= 0 && y < t.height
}

// Walkable reports whether a planar point can be stood on. Points
// outside the world rectangle are never walkable.
func (t *Terrain) Walkable(x, y float32) bool {
	if !t.InBounds(x, y) {
		return false
	}
	return t.fbm(float64(x), float64(y)) < t.cfg.WallThreshold
}

// GroundHeight returns the terrain surface height at a planar point.
func (t *Terrain) GroundHeight(x, y float32) float32 {
	h := t.fbm(float64(x), float64(y))
	return float32(h * t.cfg.HeightScale)
}

// Size returns the world rectangle dimensions.
func (t *Terrain) Size() (width, height float32) {
	return t.width, t.height
}

// WalkableFraction samples the terrain on a grid and returns the
// fraction of walkable points. Used by tuning fitness to normalize
// coverage across seeds.
func (t *Terrain) WalkableFraction(step float32) float64 {
	if step <= 0 {
		step = 1
	}
	total := 0
	open := 0
	for y := step / 2; y < t.height; y += step {
		for x := step / 2; x < t.width; x += step {
			total++
			if t.Walkable(x, y) {
				open++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(open) / float64(total)
}

// NearestWalkable spirals outward from (x, y) and returns the first
// walkable point found, or the clamped input when none exists within
// maxRadius.
func (t *Terrain) NearestWalkable(x, y, maxRadius float32) (float32, float32) {
	if t.Walkable(x, y) {
		return x, y
	}
	for r := float32(1); r <= maxRadius; r++ {
		steps := int(math.Ceil(float64(2 * math.Pi * r)))
		if steps < 8 {
			steps = 8
		}
		for i := 0; i < steps; i++ {
			a := 2 * math.Pi * float64(i) / float64(steps)
			px := x + r*float32(math.Cos(a))
			py := y + r*float32(math.Sin(a))
			if t.Walkable(px, py) {
				return px, py
			}
		}
	}
	return clamp(x, 0, t.width-1), clamp(y, 0, t.height-1)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
