package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wander/config"
	"github.com/pthm-cable/wander/game"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = embedded defaults)")
	headless := flag.Bool("headless", false, "Run without a window")
	logStats := flag.Bool("log-stats", false, "Emit telemetry windows via slog")
	statsWindow := flag.Float64("stats-window", 0, "Telemetry window in seconds (0 = config value)")
	outputDir := flag.String("output-dir", "", "Directory for telemetry CSV and config snapshot")
	seed := flag.Int64("seed", 0, "World seed (0 = derive from time)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after this many ticks (0 = run until closed)")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Simulation ticks per frame or headless update")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if err := config.Init(*configPath); err != nil {
		slog.Error("config load failed", "path", *configPath, "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	opts := game.Options{
		Seed:           *seed,
		LogStats:       *logStats,
		StatsWindowSec: *statsWindow,
		OutputDir:      *outputDir,
		Headless:       *headless,
		StepsPerUpdate: *stepsPerUpdate,
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	if *headless {
		runHeadless(opts, cfg, *maxTicks)
	} else {
		runWindow(opts, cfg, *maxTicks)
	}
}

func runHeadless(opts game.Options, cfg *config.Config, maxTicks int) {
	g := game.NewGameWithOptions(opts)
	defer g.Unload()

	slog.Info("exploration started",
		"seed", opts.Seed,
		"agents", cfg.Agents.Count,
		"world_w", cfg.World.Width,
		"world_h", cfg.World.Height,
		"max_ticks", maxTicks,
	)

	for maxTicks == 0 || int(g.Tick()) < maxTicks {
		g.UpdateHeadless()
	}
	logRunSummary(g)
}

func runWindow(opts game.Options, cfg *config.Config, maxTicks int) {
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "wander")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g := game.NewGameWithOptions(opts)
	defer g.Unload()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			break
		}
	}
	logRunSummary(g)
}

// logRunSummary reports what the run explored before exiting.
func logRunSummary(g *game.Game) {
	t := g.Totals()
	slog.Info("exploration finished",
		"tick", g.Tick(),
		"coverage", g.Coverage(),
		"targets_accepted", t.Planner.TargetsAccepted,
		"paths_completed", t.Walker.PathsCompleted,
		"stuck_skips", t.Walker.StuckSkips,
		"distance", t.Distance,
	)
}
