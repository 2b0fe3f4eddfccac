// Package config provides configuration loading and access for the
// exploration simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	World     WorldConfig     `yaml:"world"`
	Terrain   TerrainConfig   `yaml:"terrain"`
	Agents    AgentsConfig    `yaml:"agents"`
	Explore   ExploreConfig   `yaml:"explore"`
	Walker    WalkerConfig    `yaml:"walker"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds world dimensions and simulation timing.
// The world can be larger than the screen; the camera handles the
// viewport.
type WorldConfig struct {
	Width  int     `yaml:"width"`  // World width in world units (0 = use screen width)
	Height int     `yaml:"height"` // World height in world units (0 = use screen height)
	Seed   int64   `yaml:"seed"`   // Terrain and placement seed
	DT     float64 `yaml:"dt"`     // Fixed simulation timestep in seconds
}

// TerrainConfig holds procedural terrain generation parameters.
type TerrainConfig struct {
	NoiseScale    float64 `yaml:"noise_scale"`    // Base noise frequency
	Octaves       int     `yaml:"octaves"`        // FBM octaves (detail level)
	Lacunarity    float64 `yaml:"lacunarity"`     // Frequency multiplier per octave
	Gain          float64 `yaml:"gain"`           // Amplitude multiplier per octave
	WallThreshold float64 `yaml:"wall_threshold"` // Noise above this is unwalkable
	HeightScale   float64 `yaml:"height_scale"`   // Ground height amplitude in world units
}

// AgentsConfig holds agent creation parameters.
type AgentsConfig struct {
	Count       int     `yaml:"count"`        // Number of explorers
	MaxSpeed    float64 `yaml:"max_speed"`    // World units per second
	SpawnSpread float64 `yaml:"spawn_spread"` // Radius of the spawn scatter around world center
}

// ExploreConfig holds frontier-selection parameters.
type ExploreConfig struct {
	CellSize          float64 `yaml:"cell_size"`          // World units per occupancy cell
	ExplorationRadius float64 `yaml:"exploration_radius"` // Cells inside this radius scan as explored
	ArrivalDistance   float64 `yaml:"arrival_distance"`   // Target cleared inside this distance
	CooldownWindow    float64 `yaml:"cooldown_window"`    // Seconds a visited chunk stays excluded
	ExploredPenalty   float64 `yaml:"explored_penalty"`   // Score weight subtracted per explored cell
}

// WalkerConfig holds waypoint-following parameters.
type WalkerConfig struct {
	StartDistance       float64 `yaml:"start_distance"`        // Beyond this, walk to the path start first
	ArrivalDistance     float64 `yaml:"arrival_distance"`      // Waypoint reached inside this distance
	MoveInterval        float64 `yaml:"move_interval"`         // Seconds between movement requests
	StuckSampleInterval float64 `yaml:"stuck_sample_interval"` // Seconds between stuck-detection samples
	StuckDistance       float64 `yaml:"stuck_distance"`        // Progress below this per sample counts as stuck
	StuckTimeout        float64 `yaml:"stuck_timeout"`         // Seconds without progress before skipping ahead
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // Seconds per stats row
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT32      float32 // World.DT as float32
	ScreenW32 float32 // Screen.Width as float32
	ScreenH32 float32 // Screen.Height as float32
	WorldW32  float32 // Effective world width as float32
	WorldH32  float32 // Effective world height as float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

// Clone returns a deep copy of the configuration with derived values
// recomputed. Used when many variant configs run in one process.
func (c *Config) Clone() (*Config, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	clone := &Config{}
	if err := yaml.Unmarshal(data, clone); err != nil {
		return nil, fmt.Errorf("unmarshaling config copy: %w", err)
	}
	clone.computeDerived()
	return clone, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.DT32 = float32(c.World.DT)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	// World dimensions default to screen size if not specified
	worldW := c.World.Width
	if worldW == 0 {
		worldW = c.Screen.Width
	}
	worldH := c.World.Height
	if worldH == 0 {
		worldH = c.Screen.Height
	}
	c.Derived.WorldW32 = float32(worldW)
	c.Derived.WorldH32 = float32(worldH)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
