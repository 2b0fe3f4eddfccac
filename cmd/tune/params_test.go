package main

import (
	"testing"

	"github.com/pthm-cable/wander/config"
)

func TestNormalizeRoundTrip(t *testing.T) {
	pv := NewParamVector()
	defaults := pv.DefaultVector()

	back := pv.Denormalize(pv.Normalize(defaults))
	for i, v := range back {
		if diff := v - defaults[i]; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("param %s round trip = %v, want %v", pv.Specs[i].Name, v, defaults[i])
		}
	}
}

func TestApplyToConfigClamps(t *testing.T) {
	pv := NewParamVector()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}

	// All values far above their bounds must clamp to Max.
	values := make([]float64, pv.Dim())
	for i := range values {
		values[i] = 1e9
	}
	pv.ApplyToConfig(cfg, values)

	if cfg.Explore.ExplorationRadius != pv.Specs[0].Max {
		t.Errorf("ExplorationRadius = %v, want clamped to %v", cfg.Explore.ExplorationRadius, pv.Specs[0].Max)
	}
	if cfg.Walker.StuckTimeout != pv.Specs[4].Max {
		t.Errorf("StuckTimeout = %v, want clamped to %v", cfg.Walker.StuckTimeout, pv.Specs[4].Max)
	}
}
