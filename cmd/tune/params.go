// Package main provides CMA-ES tuning of exploration parameters for
// maximum map coverage.
package main

import (
	"github.com/pthm-cable/wander/config"
)

// ParamSpec defines a single tunable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all tunable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of tunable parameters.
// Cell size and move interval are locked: they define the occupancy
// resolution and request cadence the rest of the system assumes.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "exploration_radius", Path: "explore.exploration_radius", Min: 5.0, Max: 60.0, Default: 20.0},
			{Name: "cooldown_window", Path: "explore.cooldown_window", Min: 5.0, Max: 120.0, Default: 30.0},
			{Name: "explored_penalty", Path: "explore.explored_penalty", Min: 0.0, Max: 1.0, Default: 0.5},
			{Name: "planner_arrival", Path: "explore.arrival_distance", Min: 1.0, Max: 8.0, Default: 3.0},
			{Name: "stuck_timeout", Path: "walker.stuck_timeout", Min: 0.5, Max: 8.0, Default: 2.0},
			{Name: "stuck_distance", Path: "walker.stuck_distance", Min: 0.1, Max: 2.0, Default: 0.5},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		val := v[i]
		if val < spec.Min {
			val = spec.Min
		}
		if val > spec.Max {
			val = spec.Max
		}
		clamped[i] = val
	}
	return clamped
}

// ApplyToConfig applies parameter values to a Config struct.
// Order must match Specs order.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)

	cfg.Explore.ExplorationRadius = clamped[0]
	cfg.Explore.CooldownWindow = clamped[1]
	cfg.Explore.ExploredPenalty = clamped[2]
	cfg.Explore.ArrivalDistance = clamped[3]
	cfg.Walker.StuckTimeout = clamped[4]
	cfg.Walker.StuckDistance = clamped[5]
}
