package game

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/wander/camera"
	"github.com/pthm-cable/wander/components"
	"github.com/pthm-cable/wander/config"
	"github.com/pthm-cable/wander/explore"
	"github.com/pthm-cable/wander/sim"
	"github.com/pthm-cable/wander/telemetry"
)

// Options holds runtime settings passed in from the command line.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	Headless       bool
	StepsPerUpdate int

	// Config overrides the global config when non-nil. Used by the
	// parameter tuner to run many configs in one process.
	Config *config.Config

	// StatsCallback receives every flushed stats window.
	StatsCallback func(telemetry.WindowStats)
}

// agentNav bundles the navigation stack of one explorer: its body in
// the world, its private exploration memory, the planner and walker
// driving it, and the watch that abandons unreachable targets.
type agentNav struct {
	body    *sim.Body
	state   *explore.ExplorationState
	planner *explore.Planner
	walker  *explore.WaypointWalker
	watch   *explore.ProgressWatch
}

// Game holds the complete simulation state.
type Game struct {
	world *ecs.World
	rng   *rand.Rand

	agentMapper *ecs.Map3[
		components.Position,
		components.Explorer,
		components.Kinematics,
	]
	agentFilter *ecs.Filter3[
		components.Position,
		components.Explorer,
		components.Kinematics,
	]

	terrain *sim.Terrain
	navs    map[uint32]*agentNav

	camera        *camera.Camera
	collector     *telemetry.Collector
	output        *telemetry.OutputManager
	statsCallback func(telemetry.WindowStats)

	// State
	tick           int32
	simTime        float64
	paused         bool
	stepsPerUpdate int
	logStats       bool
	nextID         uint32

	// Debug toggles
	debugMode    bool
	showFrontier bool
	showPanel    bool

	// Cached config values
	dt             float32
	worldW, worldH float32
	screenWidth    float32
	screenHeight   float32

	// Rendering state, graphical mode only
	terrainTexLoaded bool
	terrainTex       terrainTexture
}

// NewGameWithOptions creates a game instance from config plus runtime
// options.
func NewGameWithOptions(opts Options) *Game {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}
	world := ecs.NewWorld()

	g := &Game{
		world:          world,
		rng:            rand.New(rand.NewSource(opts.Seed)),
		navs:           make(map[uint32]*agentNav),
		stepsPerUpdate: opts.StepsPerUpdate,
		logStats:       opts.LogStats,
		statsCallback:  opts.StatsCallback,
		showFrontier:   true,
		dt:             cfg.Derived.DT32,
		worldW:         cfg.Derived.WorldW32,
		worldH:         cfg.Derived.WorldH32,
		screenWidth:    cfg.Derived.ScreenW32,
		screenHeight:   cfg.Derived.ScreenH32,
		agentMapper: ecs.NewMap3[
			components.Position,
			components.Explorer,
			components.Kinematics,
		](world),
		agentFilter: ecs.NewFilter3[
			components.Position,
			components.Explorer,
			components.Kinematics,
		](world),
	}
	if g.stepsPerUpdate < 1 {
		g.stepsPerUpdate = 1
	}

	g.terrain = sim.NewTerrain(opts.Seed, cfg.Terrain, g.worldW, g.worldH)

	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}
	g.collector = telemetry.NewCollector(statsWindow, g.dt)

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		Logf("output disabled: %v", err)
	} else {
		g.output = om
		if err := g.output.WriteConfig(cfg); err != nil {
			Logf("config snapshot failed: %v", err)
		}
	}

	if !opts.Headless {
		g.camera = camera.New(g.screenWidth, g.screenHeight, g.worldW, g.worldH)
	}

	g.spawnAgents(cfg)

	return g
}

// now is the simulation clock handed to planners and walkers. It
// advances with ticks, not wall time, so headless runs behave
// identically at any speed.
func (g *Game) now() float64 {
	return g.simTime
}

// spawnAgents creates the explorer population scattered around the
// world center.
func (g *Game) spawnAgents(cfg *config.Config) {
	spread := float32(cfg.Agents.SpawnSpread)
	for i := 0; i < cfg.Agents.Count; i++ {
		a := g.rng.Float64() * 2 * math.Pi
		r := float32(g.rng.Float64()) * spread
		x := g.worldW/2 + r*float32(math.Cos(a))
		y := g.worldH/2 + r*float32(math.Sin(a))
		g.spawnAgent(cfg, x, y)
	}
}

// spawnAgent creates one explorer with its own navigation stack.
func (g *Game) spawnAgent(cfg *config.Config, x, y float32) ecs.Entity {
	id := g.nextID
	g.nextID++

	maxSpeed := float32(cfg.Agents.MaxSpeed)
	body := sim.NewBody(g.terrain, x, y, maxSpeed)
	state := explore.NewExplorationState()
	wp := walkerParams(cfg)
	nav := &agentNav{
		body:    body,
		state:   state,
		planner: explore.NewPlanner(body, g.now, state, plannerParams(cfg)),
		walker:  explore.NewWaypointWalker(body, g.now, wp),
		watch:   explore.NewProgressWatch(wp.StuckDistance, wp.StuckTimeout),
	}
	g.navs[id] = nav

	pos, _ := body.CurrentPosition()
	exp := components.Explorer{ID: id}
	kin := components.Kinematics{MaxSpeed: maxSpeed}

	return g.agentMapper.NewEntity(&pos, &exp, &kin)
}

// plannerParams converts config values to planner parameters.
func plannerParams(cfg *config.Config) explore.PlannerParams {
	return explore.PlannerParams{
		CellSize:          float32(cfg.Explore.CellSize),
		ExplorationRadius: float32(cfg.Explore.ExplorationRadius),
		ArrivalDistance:   float32(cfg.Explore.ArrivalDistance),
		CooldownWindow:    cfg.Explore.CooldownWindow,
		ExploredPenalty:   float32(cfg.Explore.ExploredPenalty),
	}
}

// walkerParams converts config values to walker parameters.
func walkerParams(cfg *config.Config) explore.WalkerParams {
	return explore.WalkerParams{
		StartDistance:       float32(cfg.Walker.StartDistance),
		ArrivalDistance:     float32(cfg.Walker.ArrivalDistance),
		MoveInterval:        cfg.Walker.MoveInterval,
		StuckSampleInterval: cfg.Walker.StuckSampleInterval,
		StuckDistance:       float32(cfg.Walker.StuckDistance),
		StuckTimeout:        cfg.Walker.StuckTimeout,
	}
}

// Update runs one frame worth of simulation in graphical mode:
// input handling plus stepsPerUpdate ticks.
func (g *Game) Update() {
	g.handleInput()

	if g.paused {
		return
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.simulationStep()
	}
}

// UpdateHeadless runs stepsPerUpdate ticks with no input or rendering.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.simulationStep()
	}
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.tick
}

// Coverage returns the explored fraction of all known cells across
// agents, for fitness evaluation and the HUD.
func (g *Game) Coverage() float64 {
	snap := telemetry.MapSnapshot{}
	for _, nav := range g.navs {
		telemetry.SnapshotState(&snap, nav.state)
	}
	known := snap.ExploredCells + snap.BlockedCells + snap.UnexploredCells
	if known == 0 {
		return 0
	}
	return float64(snap.ExploredCells) / float64(known)
}

// Totals sums cumulative planner and walker counters over all agents.
func (g *Game) Totals() telemetry.Totals {
	var t telemetry.Totals
	for _, nav := range g.navs {
		p := nav.planner.Stats()
		w := nav.walker.Stats()
		t.Planner.ChunksScanned += p.ChunksScanned
		t.Planner.TargetsAccepted += p.TargetsAccepted
		t.Planner.RejectedCooldown += p.RejectedCooldown
		t.Planner.RejectedExhausted += p.RejectedExhausted
		t.Planner.EmptyCycles += p.EmptyCycles
		t.Walker.MoveRequests += w.MoveRequests
		t.Walker.StuckSkips += w.StuckSkips
		t.Walker.PathsCompleted += w.PathsCompleted
		t.Walker.IndexFaults += w.IndexFaults
		t.Distance += float64(nav.body.DistanceTraveled())
	}
	return t
}

// ResetExploration wipes every agent's exploration memory and
// in-flight navigation. The terrain and agent positions stay.
func (g *Game) ResetExploration() {
	for _, nav := range g.navs {
		nav.walker.Stop()
		nav.planner.ClearTarget()
		nav.watch.Reset()
		nav.state.Reset()
	}
	Logf("exploration memory reset at tick %d", g.tick)
}

// Unload releases rendering resources and closes output files.
func (g *Game) Unload() {
	g.unloadTerrainTexture()
	if err := g.output.Close(); err != nil {
		Logf("closing output: %v", err)
	}
}

// agentLabel formats the short per-agent display name.
func agentLabel(id uint32) string {
	return fmt.Sprintf("explorer-%d", id)
}
