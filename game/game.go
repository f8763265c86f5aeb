// Package game hosts the simulation: the ECS world holding the two ships,
// the per-ship steering engines, input, rendering, and telemetry.
package game

import (
	"log/slog"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/skiff/components"
	"github.com/pthm-cable/skiff/config"
	"github.com/pthm-cable/skiff/steer"
	"github.com/pthm-cable/skiff/telemetry"
	"github.com/pthm-cable/skiff/ui"
)

// Options configures game startup behavior.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	Headless       bool
	StepsPerUpdate int
}

// shipTrack holds per-ship change detection state for telemetry events.
type shipTrack struct {
	prevWaypoint   int
	hadPath        bool
	prevRoamTarget steer.Vec2
	hadRoamTarget  bool
}

// Game holds the complete simulation state.
type Game struct {
	world *ecs.World
	rng   *rand.Rand

	shipMapper *ecs.Map5[
		components.Position,
		components.Velocity,
		components.Rotation,
		components.Body,
		components.Ship,
	]
	shipFilter *ecs.Filter5[
		components.Position,
		components.Velocity,
		components.Rotation,
		components.Body,
		components.Ship,
	]

	// Individual component mappers for lookups
	posMap  *ecs.Map1[components.Position]
	velMap  *ecs.Map1[components.Velocity]
	rotMap  *ecs.Map1[components.Rotation]
	shipMap *ecs.Map1[components.Ship]

	// Steering engines and trails (per ship by ID)
	helms  map[uint32]*steer.Engine
	trails map[uint32]*Trail
	tracks map[uint32]*shipTrack

	bounds steer.Bounds
	limits steer.Limits

	// Behavior selection
	selected    steer.Behavior
	clickTarget *steer.Vec2
	selector    *ui.SelectorPanel

	// Visualization channels from the primary ship's last tick
	primaryOut steer.Outputs

	// Telemetry
	collector *telemetry.Collector
	output    *telemetry.OutputManager
	logStats  bool

	// State
	tick           int32
	paused         bool
	stepsPerUpdate int
	nextID         uint32
}

// NewGameWithOptions creates a new game instance with the given options.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()
	world := ecs.NewWorld()

	stepsPerUpdate := opts.StepsPerUpdate
	if stepsPerUpdate < 1 {
		stepsPerUpdate = 1
	}

	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}

	g := &Game{
		world: world,
		rng:   rand.New(rand.NewSource(opts.Seed)),
		shipMapper: ecs.NewMap5[
			components.Position,
			components.Velocity,
			components.Rotation,
			components.Body,
			components.Ship,
		](world),
		shipFilter: ecs.NewFilter5[
			components.Position,
			components.Velocity,
			components.Rotation,
			components.Body,
			components.Ship,
		](world),
		posMap:  ecs.NewMap1[components.Position](world),
		velMap:  ecs.NewMap1[components.Velocity](world),
		rotMap:  ecs.NewMap1[components.Rotation](world),
		shipMap: ecs.NewMap1[components.Ship](world),

		helms:  make(map[uint32]*steer.Engine),
		trails: make(map[uint32]*Trail),
		tracks: make(map[uint32]*shipTrack),

		bounds: steer.Bounds{
			Width:  cfg.Derived.WorldW32,
			Height: cfg.Derived.WorldH32,
		},
		limits: steer.Limits{
			MaxSpeed: float32(cfg.Ship.MoveSpeed),
			MaxForce: float32(cfg.Ship.MaxForce),
			Mass:     float32(cfg.Ship.Mass),
			TurnRate: float32(cfg.Ship.RotationSpeed),
		},

		selected:       steer.Idle,
		collector:      telemetry.NewCollector(statsWindow, cfg.Derived.DT32),
		logStats:       opts.LogStats,
		stepsPerUpdate: stepsPerUpdate,
	}

	if !opts.Headless {
		g.selector = ui.NewSelectorPanel(int32(cfg.Screen.Width)-180, 10, 170, g.selected)
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
	} else {
		g.output = om
		if err := g.output.WriteConfig(cfg); err != nil {
			slog.Error("failed to write config snapshot", "error", err)
		}
	}

	g.spawnShips()

	slog.Info("game initialized",
		"seed", opts.Seed,
		"world_width", g.bounds.Width,
		"world_height", g.bounds.Height,
		"headless", opts.Headless,
	)

	return g
}

// spawnShips creates the primary ship at the world center and the escort
// offset into the upper-left quadrant.
func (g *Game) spawnShips() {
	g.spawnShip(components.RolePrimary, steer.Vec2{
		X: g.bounds.Width * 0.5,
		Y: g.bounds.Height * 0.5,
	})
	g.spawnShip(components.RoleEscort, steer.Vec2{
		X: g.bounds.Width * 0.25,
		Y: g.bounds.Height * 0.25,
	})
}

// spawnShip creates one ship entity with its steering engine and trail.
func (g *Game) spawnShip(role components.Role, at steer.Vec2) ecs.Entity {
	cfg := config.Cfg()

	id := g.nextID
	g.nextID++

	pos := components.Position{X: at.X, Y: at.Y}
	vel := components.Velocity{}
	rot := components.Rotation{Heading: 0}
	body := components.Body{Radius: float32(cfg.Ship.BodyRadius)}
	ship := components.Ship{ID: id, Role: role}

	g.helms[id] = steer.NewEngine(tuningFromConfig(cfg), g.rng)
	g.trails[id] = NewTrail(cfg.Trail.Duration, float32(cfg.Trail.MinPointDistance))
	g.tracks[id] = &shipTrack{}

	return g.shipMapper.NewEntity(&pos, &vel, &rot, &body, &ship)
}

// tuningFromConfig maps the loaded configuration onto steering constants.
func tuningFromConfig(cfg *config.Config) steer.Tuning {
	shape := steer.ShapeRectangle
	if cfg.Path.Shape == "hexagon" {
		shape = steer.ShapeHexagon
	}

	return steer.Tuning{
		SlowingRadius: float32(cfg.Ship.SlowingRadius),

		WanderCircleDistance: float32(cfg.Wander.CircleDistance),
		WanderCircleRadius:   float32(cfg.Wander.CircleRadius),
		WanderJitter:         float32(cfg.Wander.Jitter),

		RoamArrivalThreshold: float32(cfg.Wander.ArrivalThreshold),
		RoamMargin:           float32(cfg.Wander.MapMargin),

		PathShape:            shape,
		PathMargin:           float32(cfg.Path.GenerationMargin),
		PathRadius:           float32(cfg.Path.GenerationRadius),
		WaypointRadius:       float32(cfg.Path.WaypointRadius),
		SmoothWaypointRadius: float32(cfg.Path.SmoothWaypointRadius),
		KeepPathVisible:      cfg.Path.KeepVisible,
	}
}

// SetBehavior changes the primary ship's behavior.
func (g *Game) SetBehavior(b steer.Behavior) {
	if b == g.selected {
		return
	}
	g.selected = b
	if g.selector != nil {
		g.selector.Select(b)
	}
	if b.NeedsTarget() && g.clickTarget == nil {
		slog.Warn("behavior requires a target, click to set one", "behavior", b.String())
	}
	slog.Info("behavior selected", "behavior", b.String(), "escort", steer.Complement(b).String())
}

// Behavior returns the primary ship's current behavior.
func (g *Game) Behavior() steer.Behavior {
	return g.selected
}

// SetTarget places the world target point driving the seek family.
func (g *Game) SetTarget(p steer.Vec2) {
	g.clickTarget = &p
}

// ClearTarget removes the world target point.
func (g *Game) ClearTarget() {
	g.clickTarget = nil
}

// Update runs input handling and simulation steps for one frame.
func (g *Game) Update() {
	g.handleInput()

	if g.paused {
		return
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.simulationStep()
	}
}

// UpdateHeadless runs simulation steps without any input or rendering.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.simulationStep()
	}
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.tick
}

// Unload flushes telemetry and releases resources.
func (g *Game) Unload() {
	if err := g.output.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
