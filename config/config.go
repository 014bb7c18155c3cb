// Package config provides configuration loading and access for the simulation.
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
	Screen     ScreenConfig     `yaml:"screen"`
	Field      FieldConfig      `yaml:"field"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Merge      MergeConfig      `yaml:"merge"`
	Wind       WindConfig       `yaml:"wind"`
	Tilt       TiltConfig       `yaml:"tilt"`
	Render     RenderConfig     `yaml:"render"`
	Background BackgroundConfig `yaml:"background"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int  `yaml:"width"`
	Height    int  `yaml:"height"`
	TargetFPS int  `yaml:"target_fps"`
	Resizable bool `yaml:"resizable"`
}

// FieldConfig holds droplet field sizing.
type FieldConfig struct {
	MaxDroplets  int     `yaml:"max_droplets"`
	GridCellSize float64 `yaml:"grid_cell_size"`
}

// SpawnConfig holds spawner parameters.
type SpawnConfig struct {
	BaseRatePerPx float64 `yaml:"base_rate_per_px"` // droplets per pixel of width per 60Hz frame
	TopFraction   float64 `yaml:"top_fraction"`     // spawn band height as fraction of surface height
	MinRadius     float64 `yaml:"min_radius"`
	MaxRadius     float64 `yaml:"max_radius"`
	MaxSpeedX     float64 `yaml:"max_speed_x"` // initial vx is uniform in [-max/2, max/2)
}

// PhysicsConfig holds integrator parameters.
// Values are empirical and tuned for appearance.
type PhysicsConfig struct {
	DT             float64 `yaml:"dt"`       // headless step size in seconds
	MaxDT          float64 `yaml:"max_dt"`   // frame clock clamp in seconds
	BaseFPS        float64 `yaml:"base_fps"` // velocity units are per frame at this rate
	TiltGainX      float64 `yaml:"tilt_gain_x"`
	TiltGainY      float64 `yaml:"tilt_gain_y"`
	WindGain       float64 `yaml:"wind_gain"`
	Adhesion       float64 `yaml:"adhesion"` // threshold = adhesion / max(1, r)
	StaticFriction float64 `yaml:"static_friction"`
	Damping        float64 `yaml:"damping"`
	DampingPerR    float64 `yaml:"damping_per_r"`
	DampingMaxDrop float64 `yaml:"damping_max_drop"`
	JitterX        float64 `yaml:"jitter_x"`
	JitterY        float64 `yaml:"jitter_y"`
}

// MergeConfig holds merger parameters.
type MergeConfig struct {
	OverlapFactor float64 `yaml:"overlap_factor"` // merge when overlap > factor * min(ra, rb)
}

// WindConfig holds gust parameters.
type WindConfig struct {
	GustInterval float64 `yaml:"gust_interval"` // seconds of simulated time between gusts
	GustStrength float64 `yaml:"gust_strength"`
	Max          float64 `yaml:"max"`
}

// TiltConfig holds the initial tilt vector and sensor smoothing.
type TiltConfig struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Smoothing float64 `yaml:"smoothing"` // weight of the previous value
	MinY      float64 `yaml:"min_y"`
	MaxY      float64 `yaml:"max_y"`
}

// RenderConfig holds lens rendering parameters.
type RenderConfig struct {
	RefractionShift   float64 `yaml:"refraction_shift"`
	Magnification     float64 `yaml:"magnification"`
	MagnificationPerR float64 `yaml:"magnification_per_r"`
	MagnificationMax  float64 `yaml:"magnification_max"`
	RimStart          float64 `yaml:"rim_start"` // fraction of radius where rim darkening begins
	RimAlpha          float64 `yaml:"rim_alpha"`
	HighlightAlpha    float64 `yaml:"highlight_alpha"`
	FallbackAlpha     float64 `yaml:"fallback_alpha"`
}

// BackgroundConfig holds the background image reference.
type BackgroundConfig struct {
	Source      string  `yaml:"source"`       // file path or http(s) URL; empty = fallback mode
	LoadTimeout float64 `yaml:"load_timeout"` // seconds
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32 float32 // Screen.Width as float32
	ScreenH32 float32 // Screen.Height as float32
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

// Defaults returns a fresh copy of the embedded defaults.
func Defaults() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

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

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects values that would break the field invariants.
func (c *Config) validate() error {
	if c.Field.MaxDroplets < 0 {
		return fmt.Errorf("field.max_droplets must be >= 0, got %d", c.Field.MaxDroplets)
	}
	if c.Field.GridCellSize <= 0 {
		return fmt.Errorf("field.grid_cell_size must be > 0, got %v", c.Field.GridCellSize)
	}
	if c.Spawn.MinRadius <= 0 || c.Spawn.MaxRadius < c.Spawn.MinRadius {
		return fmt.Errorf("spawn radius range invalid: [%v, %v]", c.Spawn.MinRadius, c.Spawn.MaxRadius)
	}
	if c.Physics.MaxDT <= 0 {
		return fmt.Errorf("physics.max_dt must be > 0, got %v", c.Physics.MaxDT)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
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
