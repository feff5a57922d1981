package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/collide/components"
	"github.com/pthm-cable/collide/config"
	"github.com/pthm-cable/collide/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N simulation steps (0 = unlimited)")
	particles := flag.Int("particles", 0, "Initial particle count (0 = use config)")
	acceleration := flag.Float64("acceleration", -1, "Initial acceleration (negative = use config)")
	resistance := flag.Float64("resistance", -1, "Initial resistance (negative = use config)")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Simulation ticks per update call (higher = faster headless runs)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Use config stats window if not overridden by CLI
	statsWindowSec := cfg.Telemetry.StatsWindow
	if *statsWindow > 0 {
		statsWindowSec = *statsWindow
	}

	controls := components.Controls{
		Acceleration: cfg.Controls.Acceleration,
		Resistance:   cfg.Controls.Resistance,
		TargetCount:  cfg.Controls.Particles,
		Running:      cfg.Controls.Running,
	}
	if *particles > 0 {
		controls.TargetCount = *particles
	}
	if *acceleration >= 0 {
		controls.Acceleration = *acceleration
	}
	if *resistance >= 0 {
		controls.Resistance = *resistance
	}
	if *headless {
		// Nothing can press Run without a window
		controls.Running = true
	}

	// Build game options
	opts := game.Options{
		Seed:           rngSeed,
		LogStats:       *logStats,
		StatsWindowSec: statsWindowSec,
		OutputDir:      *outputDir,
		Headless:       *headless,
		StepsPerUpdate: *stepsPerUpdate,
		Controls:       controls,
	}

	if *headless {
		runHeadless(opts, *maxTicks)
		return
	}
	runWindow(cfg, opts, *maxTicks)
}

// runHeadless steps the simulation without raylib until maxTicks.
func runHeadless(opts game.Options, maxTicks int) {
	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}
	defer g.Unload()

	slog.Info("starting headless simulation",
		"seed", opts.Seed,
		"particles", opts.Controls.TargetCount,
		"stats_window", opts.StatsWindowSec,
		"max_ticks", maxTicks,
		"steps_per_update", opts.StepsPerUpdate,
	)

	if maxTicks <= 0 {
		slog.Warn("no -max-ticks given, running until interrupted")
	}

	for {
		g.UpdateHeadless()

		if maxTicks > 0 && g.Steps() >= int64(maxTicks) {
			slog.Info("max ticks reached", "steps", g.Steps(), "tick", g.Tick())
			return
		}
	}
}

// runWindow opens the raylib window and runs the frame loop.
func runWindow(cfg *config.Config, opts game.Options, maxTicks int) {
	if cfg.Screen.Resizable {
		rl.SetConfigFlags(rl.FlagWindowResizable)
	}
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		slog.Error("failed to start", "error", err)
		return
	}
	defer g.Unload()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if maxTicks > 0 && g.Steps() >= int64(maxTicks) {
			break
		}
	}
}
