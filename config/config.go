// Package config provides configuration loading and access for the viewer.
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

// MaxBodies is the number of bodies reachable with the numbered selection keys.
const MaxBodies = 9

// ErrInvalid marks a configuration that loaded but cannot be used.
var ErrInvalid = errors.New("invalid config")

// Config holds all viewer configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Textures  TexturesConfig  `yaml:"textures"`
	Stars     StarsConfig     `yaml:"stars"`
	Camera    CameraConfig    `yaml:"camera"`
	Sun       SunConfig       `yaml:"sun"`
	OrbitRing OrbitRingConfig `yaml:"orbit_ring"`
	Keys      KeysConfig      `yaml:"keys"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Bodies    []BodyConfig    `yaml:"bodies"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	TargetFPS int     `yaml:"target_fps"`
	Title     string  `yaml:"title"`
	MSAA      bool    `yaml:"msaa"`
	Fovy      float64 `yaml:"fovy"` // vertical field of view in degrees
}

// TexturesConfig holds texture lookup settings.
type TexturesConfig struct {
	Dir string `yaml:"dir"` // directory probed for <name>.jpg / <name>.png
}

// StarsConfig holds background star field parameters.
type StarsConfig struct {
	Count  int     `yaml:"count"`
	Spread float64 `yaml:"spread"` // stars lie within [-spread, spread] on each axis
	Seed   int64   `yaml:"seed"`   // 0 = time-based
}

// CameraConfig holds camera parameters for both modes.
type CameraConfig struct {
	InitialTarget int                `yaml:"initial_target"`
	Global        GlobalCameraConfig `yaml:"global"`
	Focus         FocusCameraConfig  `yaml:"focus"`
}

// GlobalCameraConfig tunes the whole-system orbit.
type GlobalCameraConfig struct {
	Radius        float64 `yaml:"radius"`
	BaseHeight    float64 `yaml:"base_height"`
	SwayAmplitude float64 `yaml:"sway_amplitude"`
	SwayFrequency float64 `yaml:"sway_frequency"`
	Speed         float64 `yaml:"speed"` // degrees per tick
}

// FocusCameraConfig tunes the chase camera.
type FocusCameraConfig struct {
	Radius float64 `yaml:"radius"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // degrees per tick
}

// SunConfig holds sun appearance parameters.
type SunConfig struct {
	Radius     float64   `yaml:"radius"`
	Color      []float64 `yaml:"color"`
	Emissive   []float64 `yaml:"emissive"`
	SpinSpeed  float64   `yaml:"spin_speed"` // degrees per tick
	HaloRadius float64   `yaml:"halo_radius"`
	HaloColor  []float64 `yaml:"halo_color"`
	HaloAlpha  float64   `yaml:"halo_alpha"`
}

// OrbitRingConfig holds orbit path rendering parameters.
type OrbitRingConfig struct {
	Segments int       `yaml:"segments"`
	Color    []float64 `yaml:"color"`
}

// KeysConfig holds raylib key codes for the controls.
type KeysConfig struct {
	Quit       int32 `yaml:"quit"`
	Pause      int32 `yaml:"pause"`
	Focus      int32 `yaml:"focus"`
	SelectBase int32 `yaml:"select_base"` // key selecting the first body
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	PerfWindow     int     `yaml:"perf_window"`      // ticks averaged per perf sample
	LogIntervalSec float64 `yaml:"log_interval_sec"` // 0 = no periodic perf log
	OutputDir      string  `yaml:"output_dir"`       // empty = no CSV output
}

// BodyConfig declares one orbiting body. Declaration order is selection order.
type BodyConfig struct {
	Name        string    `yaml:"name"`
	Distance    float64   `yaml:"distance"`
	Radius      float64   `yaml:"radius"`
	Speed       float64   `yaml:"speed"`       // degrees per tick
	Inclination float64   `yaml:"inclination"` // degrees
	Color       []float64 `yaml:"color"`
	Satellite   bool      `yaml:"satellite"`
	Rings       bool      `yaml:"rings"`
	Facts       []string  `yaml:"facts"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32 float32        // Screen.Width as float32
	ScreenH32 float32        // Screen.Height as float32
	BodyIndex map[string]int // name -> declaration index
	BodyNames []string       // names in declaration order
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

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file.
		// A bodies list in the file replaces the default list as a whole.
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

// validate rejects configurations the simulation cannot run with.
func (c *Config) validate() error {
	if len(c.Bodies) == 0 {
		return fmt.Errorf("%w: no bodies declared", ErrInvalid)
	}
	if len(c.Bodies) > MaxBodies {
		return fmt.Errorf("%w: %d bodies declared, at most %d are selectable", ErrInvalid, len(c.Bodies), MaxBodies)
	}
	seen := make(map[string]bool, len(c.Bodies))
	for i, b := range c.Bodies {
		if b.Name == "" {
			return fmt.Errorf("%w: body %d has no name", ErrInvalid, i)
		}
		if seen[b.Name] {
			return fmt.Errorf("%w: duplicate body name %q", ErrInvalid, b.Name)
		}
		seen[b.Name] = true
		if b.Distance <= 0 || b.Radius <= 0 {
			return fmt.Errorf("%w: body %q needs positive distance and radius", ErrInvalid, b.Name)
		}
	}
	if c.Camera.InitialTarget < 0 || c.Camera.InitialTarget >= len(c.Bodies) {
		return fmt.Errorf("%w: camera.initial_target %d out of range", ErrInvalid, c.Camera.InitialTarget)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	if c.Screen.TargetFPS <= 0 {
		c.Screen.TargetFPS = 60
	}
	if c.OrbitRing.Segments < 3 {
		c.OrbitRing.Segments = 240
	}

	c.Derived.BodyIndex = make(map[string]int, len(c.Bodies))
	c.Derived.BodyNames = make([]string, len(c.Bodies))
	for i, b := range c.Bodies {
		c.Derived.BodyIndex[b.Name] = i
		c.Derived.BodyNames[i] = b.Name
	}
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
