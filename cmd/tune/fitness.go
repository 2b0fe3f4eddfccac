package main

import (
	"math"
	"sync"

	"github.com/pthm-cable/wander/config"
	"github.com/pthm-cable/wander/game"
)

// FitnessEvaluator runs headless simulations and computes fitness.
type FitnessEvaluator struct {
	params     *ParamVector
	maxTicks   int32
	seeds      []int64
	baseConfig *config.Config

	mu          sync.Mutex
	bestFitness float64
	lastQuality float64 // quality from most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int32, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		maxTicks:    maxTicks,
		seeds:       seeds,
		baseConfig:  baseCfg,
		bestFitness: math.Inf(1),
	}
}

// LastQuality returns the quality score from the most recent evaluation.
func (fe *FitnessEvaluator) LastQuality() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastQuality
}

// seedResult holds the result from one seed evaluation.
type seedResult struct {
	coverage float64
	quality  float64
}

// Evaluate computes fitness for a parameter vector (lower = better).
// Fitness is negative mean coverage: more map explored = lower fitness.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	results := make([]seedResult, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = fe.runSimulation(x, s)
		}(i, seed)
	}
	wg.Wait()

	var totalCoverage, totalQuality float64
	for _, r := range results {
		totalCoverage += r.coverage
		totalQuality += r.quality
	}

	n := float64(len(fe.seeds))
	fitness := -totalCoverage / n

	fe.mu.Lock()
	if fitness < fe.bestFitness {
		fe.bestFitness = fitness
	}
	fe.lastQuality = totalQuality / n
	fe.mu.Unlock()

	return fitness
}

// runSimulation executes a single headless run and scores it.
func (fe *FitnessEvaluator) runSimulation(x []float64, seed int64) seedResult {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	g := game.NewGameWithOptions(game.Options{
		Seed:           seed,
		Headless:       true,
		StepsPerUpdate: 10,
		Config:         cfg,
	})
	defer g.Unload()

	for g.Tick() < fe.maxTicks {
		g.UpdateHeadless()
	}

	totals := g.Totals()
	// Quality: fraction of accepted targets whose path was finished.
	// Distinguishes "covers a lot by thrashing" from clean traversal.
	quality := 0.0
	if totals.Planner.TargetsAccepted > 0 {
		quality = float64(totals.Walker.PathsCompleted) / float64(totals.Planner.TargetsAccepted)
	}

	return seedResult{
		coverage: g.Coverage(),
		quality:  quality,
	}
}

// copyConfig deep-copies the base config.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg, err := fe.baseConfig.Clone()
	if err != nil {
		panic(err)
	}
	return cfg
}
