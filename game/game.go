// Package game wires the simulation engine, effects, telemetry and UI into
// a frame loop. Update and Draw drive a raylib window; UpdateHeadless runs
// fixed steps without one.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/collide/camera"
	"github.com/pthm-cable/collide/components"
	"github.com/pthm-cable/collide/config"
	"github.com/pthm-cable/collide/effects"
	"github.com/pthm-cable/collide/renderer"
	"github.com/pthm-cable/collide/systems"
	"github.com/pthm-cable/collide/telemetry"
	"github.com/pthm-cable/collide/ui"
)

// maxStepsPerUpdate bounds the steps-per-update keys.
const maxStepsPerUpdate = 10

// Game holds the complete game state.
type Game struct {
	cfg *config.Config
	rng *rand.Rand

	sim    *systems.Simulation
	sparks *effects.Sparks // nil when effects are disabled

	controls components.Controls
	limits   components.ControlLimits

	// Telemetry
	collector        *telemetry.Collector
	perfCollector    *telemetry.PerfCollector
	bookmarkDetector *telemetry.BookmarkDetector
	outputManager    *telemetry.OutputManager
	statsCallback    func(telemetry.WindowStats)
	logStats         bool

	// Last tick, for the HUD
	lastStats systems.TickStats

	headless       bool
	stepsPerUpdate int
	steps          int64 // every step, whether or not physics ran

	// Rendering (camera is also used headless for bounds)
	camera           *camera.Camera
	panel            *ui.ControlPanel
	hud              *ui.HUD
	particleRenderer *renderer.ParticleRenderer
	screenWidth      float32
	screenHeight     float32
}

// NewGameWithOptions creates a game. config.Init must have been called.
// In graphical mode the raylib window must already be open.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := config.Cfg()

	rng := rand.New(rand.NewSource(opts.Seed))

	store := systems.NewParticleStore(rng, systems.SpawnParams{
		MassMin:      cfg.Spawn.MassMin,
		MassMax:      cfg.Spawn.MassMax,
		RadiusFactor: cfg.Spawn.RadiusFactor,
		Speed:        cfg.Spawn.Speed,
		ColorMin:     cfg.Spawn.ColorMin,
		ColorMax:     cfg.Spawn.ColorMax,
	})
	resolver := systems.NewCollisionResolver()
	resolver.Epsilon = cfg.Physics.CoincidentEpsilon

	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}

	g := &Game{
		cfg: cfg,
		rng: rng,
		sim: systems.NewSimulation(store, resolver),
		limits: components.ControlLimits{
			AccelerationMax: cfg.Controls.AccelerationMax,
			ResistanceMax:   cfg.Controls.ResistanceMax,
			ParticlesMin:    cfg.Controls.ParticlesMin,
			ParticlesMax:    cfg.Controls.ParticlesMax,
		},
		collector:        telemetry.NewCollector(opts.StatsWindowSec),
		perfCollector:    telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		bookmarkDetector: telemetry.NewBookmarkDetector(10),
		logStats:         opts.LogStats,
		headless:         opts.Headless,
		stepsPerUpdate:   steps,
		screenWidth:      cfg.Derived.ScreenW32,
		screenHeight:     cfg.Derived.ScreenH32,
	}
	g.controls = components.ClampControls(opts.Controls, g.limits)

	if cfg.Effects.Enabled {
		// Separate stream so effects never change the sampled population
		g.sparks = effects.NewSparks(rand.New(rand.NewSource(opts.Seed+1)), effects.Params{
			PerCollision: cfg.Effects.SparksPerCollision,
			Life:         cfg.Effects.SparkLife,
			Speed:        cfg.Effects.SparkSpeed,
			Max:          cfg.Effects.MaxSparks,
		})
		resolver.OnContact = func(c systems.Contact) {
			g.sparks.Emit(c.Point)
		}
	}

	if !g.headless {
		g.screenWidth = float32(rl.GetScreenWidth())
		g.screenHeight = float32(rl.GetScreenHeight())
	}
	g.camera = camera.New(g.screenWidth, g.screenHeight)

	if !g.headless {
		g.panel = ui.NewControlPanel(10, 10, 260, g.limits, g.controls)
		g.hud = ui.NewHUD()
		g.particleRenderer = renderer.NewParticleRenderer(g.camera)
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("setting up output: %w", err)
	}
	g.outputManager = om
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}
	if om != nil {
		slog.Info("writing output", "dir", om.Dir())
	}

	return g, nil
}

// SetStatsCallback registers fn to receive every flushed stats window.
func (g *Game) SetStatsCallback(fn func(telemetry.WindowStats)) {
	g.statsCallback = fn
}

// Update reads the controls, then advances the simulation by the frame time.
func (g *Game) Update() {
	g.handleInput()

	controls := g.controls
	if g.panel != nil {
		controls = g.panel.Controls()
	}

	delta := float64(rl.GetFrameTime())
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step(controls, delta)
	}
}

// UpdateHeadless advances the simulation by fixed steps using the
// configured controls.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step(g.controls, g.cfg.Physics.DT)
	}
}

// step runs a single tick with timing, effects and telemetry.
func (g *Game) step(c components.Controls, delta float64) {
	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(telemetry.PhaseControls)
	g.controls = components.ClampControls(c, g.limits)
	bounds := g.camera.Bounds()

	g.perfCollector.StartPhase(telemetry.PhasePhysics)
	ts := g.sim.Tick(g.controls, bounds, delta)

	g.perfCollector.StartPhase(telemetry.PhaseEffects)
	if g.sparks != nil {
		if ts.Transition == systems.TransitionStopped {
			g.sparks.Clear()
		} else if delta > 0 {
			g.sparks.Update(delta)
		}
	}

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.collector.RecordTick(ts, delta)
	g.flushTelemetry()

	g.perfCollector.EndTick()
	g.lastStats = ts
	g.steps++
}

// Steps returns the number of update steps taken, including steps where
// the simulation was stopped or had nothing to move.
func (g *Game) Steps() int64 {
	return g.steps
}

// Tick returns the number of ticks that ran physics.
func (g *Game) Tick() int64 {
	return g.sim.Ticks()
}

// Simulation returns the underlying engine.
func (g *Game) Simulation() *systems.Simulation {
	return g.sim
}

// Controls returns the controls applied on the last step.
func (g *Game) Controls() components.Controls {
	return g.controls
}

// SparkCount returns the number of live sparks.
func (g *Game) SparkCount() int {
	if g.sparks == nil {
		return 0
	}
	return g.sparks.Count()
}

// Unload flushes and closes output files.
func (g *Game) Unload() {
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
