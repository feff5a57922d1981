// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Controls  ControlsConfig  `yaml:"controls"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Effects   EffectsConfig   `yaml:"effects"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
}

// PhysicsConfig holds integration parameters.
type PhysicsConfig struct {
	DT                float64 `yaml:"dt"`                 // Fixed step used by the headless driver
	CoincidentEpsilon float64 `yaml:"coincident_epsilon"` // Center distance below which a pair is skipped
}

// SpawnConfig holds the sampling ranges used when a population is created.
type SpawnConfig struct {
	MassMin      float64 `yaml:"mass_min"`
	MassMax      float64 `yaml:"mass_max"`
	RadiusFactor float64 `yaml:"radius_factor"` // radius = mass * radius_factor
	Speed        float64 `yaml:"speed"`         // velocity components in [-speed, speed)
	ColorMin     float64 `yaml:"color_min"`
	ColorMax     float64 `yaml:"color_max"`
}

// ControlsConfig holds the initial control values and their UI ranges.
type ControlsConfig struct {
	Acceleration float64 `yaml:"acceleration"`
	Resistance   float64 `yaml:"resistance"`
	Particles    int     `yaml:"particles"`
	Running      bool    `yaml:"running"`

	AccelerationMax float64 `yaml:"acceleration_max"`
	ResistanceMax   float64 `yaml:"resistance_max"`
	ParticlesMin    int     `yaml:"particles_min"`
	ParticlesMax    int     `yaml:"particles_max"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// EffectsConfig holds collision spark parameters.
type EffectsConfig struct {
	Enabled            bool    `yaml:"enabled"`
	SparksPerCollision int     `yaml:"sparks_per_collision"`
	SparkLife          float64 `yaml:"spark_life"`  // seconds
	SparkSpeed         float64 `yaml:"spark_speed"` // units/second
	MaxSparks          int     `yaml:"max_sparks"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32      float32 // Screen.Width as float32
	ScreenH32      float32 // Screen.Height as float32
	TicksPerWindow int     // Telemetry.StatsWindow / Physics.DT, at least 1
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
	cfg, err := Defaults()
	if err != nil {
		return nil, err
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

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	cfg.computeDerived()

	return cfg, nil
}

// Defaults returns a fresh copy of the embedded default configuration.
func Defaults() (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	cfg.computeDerived()
	return cfg, nil
}

// Validate reports values the simulation cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height))
	}
	if c.Physics.DT <= 0 {
		errs = append(errs, fmt.Errorf("physics.dt must be positive, got %v", c.Physics.DT))
	}
	if c.Physics.CoincidentEpsilon < 0 {
		errs = append(errs, fmt.Errorf("physics.coincident_epsilon must not be negative, got %v", c.Physics.CoincidentEpsilon))
	}
	if c.Spawn.MassMin <= 0 {
		errs = append(errs, fmt.Errorf("spawn.mass_min must be positive, got %v", c.Spawn.MassMin))
	}
	if c.Spawn.MassMax <= c.Spawn.MassMin {
		errs = append(errs, fmt.Errorf("spawn.mass_max (%v) must exceed spawn.mass_min (%v)", c.Spawn.MassMax, c.Spawn.MassMin))
	}
	if c.Spawn.RadiusFactor <= 0 {
		errs = append(errs, fmt.Errorf("spawn.radius_factor must be positive, got %v", c.Spawn.RadiusFactor))
	}
	if c.Spawn.ColorMax < c.Spawn.ColorMin {
		errs = append(errs, fmt.Errorf("spawn.color_max (%v) is below spawn.color_min (%v)", c.Spawn.ColorMax, c.Spawn.ColorMin))
	}
	if c.Controls.ParticlesMin < 1 {
		errs = append(errs, fmt.Errorf("controls.particles_min must be at least 1, got %d", c.Controls.ParticlesMin))
	}
	if c.Controls.ParticlesMax < c.Controls.ParticlesMin {
		errs = append(errs, fmt.Errorf("controls.particles_max (%d) is below controls.particles_min (%d)", c.Controls.ParticlesMax, c.Controls.ParticlesMin))
	}
	return errors.Join(errs...)
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	ticks := 1
	if c.Physics.DT > 0 {
		ticks = int(c.Telemetry.StatsWindow / c.Physics.DT)
	}
	if ticks < 1 {
		ticks = 1
	}
	c.Derived.TicksPerWindow = ticks
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
