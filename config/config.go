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
	Screen    ScreenConfig    `yaml:"screen"`
	World     WorldConfig     `yaml:"world"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Ship      ShipConfig      `yaml:"ship"`
	Trail     TrailConfig     `yaml:"trail"`
	Wander    WanderConfig    `yaml:"wander"`
	Path      PathConfig      `yaml:"path"`
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

// WorldConfig holds toroidal world dimensions.
// World defaults to the screen size; the viewport maps 1:1 onto it.
type WorldConfig struct {
	Width  int `yaml:"width"`  // World width in world units (0 = use screen width)
	Height int `yaml:"height"` // World height in world units (0 = use screen height)
}

// PhysicsConfig holds simulation physics parameters.
type PhysicsConfig struct {
	DT float64 `yaml:"dt"` // seconds per tick
}

// ShipConfig holds per-ship kinematic constants.
type ShipConfig struct {
	MoveSpeed     float64 `yaml:"move_speed"`     // max speed, units per second
	RotationSpeed float64 `yaml:"rotation_speed"` // max turn rate, degrees per second
	MaxForce      float64 `yaml:"max_force"`      // steering force saturation
	Mass          float64 `yaml:"mass"`
	SlowingRadius float64 `yaml:"slowing_radius"` // arrive deceleration radius
	BodyRadius    float64 `yaml:"body_radius"`    // render size
}

// TrailConfig holds trail visualization parameters.
type TrailConfig struct {
	Duration         float64 `yaml:"duration"`           // seconds a trail point lives
	MinPointDistance float64 `yaml:"min_point_distance"` // spacing between recorded points
}

// WanderConfig holds wander behavior parameters.
type WanderConfig struct {
	CircleDistance   float64 `yaml:"circle_distance"`   // projection ahead of the ship
	CircleRadius     float64 `yaml:"circle_radius"`     // rim target radius
	Jitter           float64 `yaml:"jitter"`            // angle jitter, radians per second
	ArrivalThreshold float64 `yaml:"arrival_threshold"` // state-based wander arrival distance
	MapMargin        float64 `yaml:"map_margin"`        // inset for random target sampling
}

// PathConfig holds path-following parameters.
type PathConfig struct {
	Shape                string  `yaml:"shape"`                  // "rectangle" or "hexagon"
	GenerationMargin     float64 `yaml:"generation_margin"`      // inset from world bounds
	GenerationRadius     float64 `yaml:"generation_radius"`      // hexagon radius (0 = fit bounds)
	WaypointRadius       float64 `yaml:"waypoint_radius"`        // precise snap radius
	SmoothWaypointRadius float64 `yaml:"smooth_waypoint_radius"` // smooth/patrol snap radius
	KeepVisible          bool    `yaml:"keep_visible"`           // keep waypoints drawn after deselection
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // seconds per stats window
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT32      float32 // Physics.DT as float32
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

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.DT32 = float32(c.Physics.DT)
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
