package game

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/pthm-cable/collide/components"
	"github.com/pthm-cable/collide/config"
	"github.com/pthm-cable/collide/systems"
	"github.com/pthm-cable/collide/telemetry"
)

func init() {
	config.MustInit("")
}

func headlessOptions(n int) Options {
	opts := DefaultOptions()
	opts.Headless = true
	opts.Seed = 7
	opts.StatsWindowSec = 1
	opts.Controls = components.Controls{TargetCount: n, Running: true}
	return opts
}

func newHeadlessGame(t *testing.T, opts Options) *Game {
	t.Helper()
	g, err := NewGameWithOptions(opts)
	if err != nil {
		t.Fatalf("NewGameWithOptions: %v", err)
	}
	t.Cleanup(g.Unload)
	return g
}

func TestHeadlessRunKeepsPopulation(t *testing.T) {
	g := newHeadlessGame(t, headlessOptions(8))

	for i := 0; i < 120; i++ {
		g.UpdateHeadless()
	}

	if g.Tick() != 120 {
		t.Errorf("Tick() = %d, want 120", g.Tick())
	}
	if g.Simulation().State() != systems.StateRunning {
		t.Errorf("state = %v, want running", g.Simulation().State())
	}

	particles := g.Simulation().Particles()
	if len(particles) != 8 {
		t.Fatalf("population = %d, want 8", len(particles))
	}
	ids := make([]int, len(particles))
	for i, p := range particles {
		ids[i] = p.ID
	}
	sort.Ints(ids)
	for i, id := range ids {
		if id != i {
			t.Errorf("ids = %v, want a permutation of 0..7", ids)
			break
		}
	}
}

func TestHeadlessStoppedDoesNothing(t *testing.T) {
	opts := headlessOptions(8)
	opts.Controls.Running = false
	g := newHeadlessGame(t, opts)

	for i := 0; i < 10; i++ {
		g.UpdateHeadless()
	}
	if g.Tick() != 0 {
		t.Errorf("Tick() = %d, want 0", g.Tick())
	}
	if n := len(g.Simulation().Particles()); n != 0 {
		t.Errorf("population = %d, want 0", n)
	}
}

func TestStepsPerUpdate(t *testing.T) {
	opts := headlessOptions(4)
	opts.StepsPerUpdate = 4
	g := newHeadlessGame(t, opts)

	for i := 0; i < 5; i++ {
		g.UpdateHeadless()
	}
	if g.Tick() != 20 {
		t.Errorf("Tick() = %d, want 20", g.Tick())
	}
}

func TestControlsClamped(t *testing.T) {
	opts := headlessOptions(5000)
	opts.Controls.Acceleration = 10000
	g := newHeadlessGame(t, opts)

	g.UpdateHeadless()

	cfg := config.Cfg()
	c := g.Controls()
	if c.TargetCount != cfg.Controls.ParticlesMax {
		t.Errorf("TargetCount = %d, want %d", c.TargetCount, cfg.Controls.ParticlesMax)
	}
	if c.Acceleration != cfg.Controls.AccelerationMax {
		t.Errorf("Acceleration = %v, want %v", c.Acceleration, cfg.Controls.AccelerationMax)
	}
	if n := len(g.Simulation().Particles()); n != cfg.Controls.ParticlesMax {
		t.Errorf("population = %d, want %d", n, cfg.Controls.ParticlesMax)
	}
}

func TestStatsWindows(t *testing.T) {
	g := newHeadlessGame(t, headlessOptions(8))

	var windows []telemetry.WindowStats
	g.SetStatsCallback(func(s telemetry.WindowStats) {
		windows = append(windows, s)
	})

	// 1 s windows at 60 ticks per second
	for i := 0; i < 185; i++ {
		g.UpdateHeadless()
	}

	if len(windows) != 3 {
		t.Fatalf("got %d windows, want 3", len(windows))
	}
	if windows[0].Starts != 1 {
		t.Errorf("first window starts = %d, want 1", windows[0].Starts)
	}
	for i, w := range windows {
		if w.Population != 8 {
			t.Errorf("window %d population = %d, want 8", i, w.Population)
		}
		if w.KineticEnergy <= 0 {
			t.Errorf("window %d kinetic energy = %v, want > 0", i, w.KineticEnergy)
		}
	}
}

func TestSparksFollowCollisions(t *testing.T) {
	g := newHeadlessGame(t, headlessOptions(64))

	// A dense population overlaps on the first tick
	g.UpdateHeadless()

	if g.lastStats.Collisions == 0 {
		t.Fatal("expected collisions in a dense population")
	}
	if g.SparkCount() == 0 {
		t.Error("expected sparks after collisions")
	}
}

func TestEffectsDisabled(t *testing.T) {
	cfg := config.Cfg()
	saved := cfg.Effects.Enabled
	cfg.Effects.Enabled = false
	defer func() { cfg.Effects.Enabled = saved }()

	g := newHeadlessGame(t, headlessOptions(64))
	g.UpdateHeadless()

	if g.SparkCount() != 0 {
		t.Errorf("SparkCount() = %d with effects disabled", g.SparkCount())
	}
	if g.Simulation().Resolver().OnContact != nil {
		t.Error("resolver should have no contact callback with effects disabled")
	}
}

func TestOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	opts := headlessOptions(8)
	opts.OutputDir = dir

	g, err := NewGameWithOptions(opts)
	if err != nil {
		t.Fatalf("NewGameWithOptions: %v", err)
	}
	for i := 0; i < 70; i++ {
		g.UpdateHeadless()
	}
	g.Unload()

	for _, name := range []string{"config.yaml", "telemetry.csv", "perf.csv", "bookmarks.csv"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Error("telemetry.csv is empty after a full window")
	}
}

func TestDeterministicSeed(t *testing.T) {
	a := newHeadlessGame(t, headlessOptions(16))
	b := newHeadlessGame(t, headlessOptions(16))

	for i := 0; i < 60; i++ {
		a.UpdateHeadless()
		b.UpdateHeadless()
	}

	pa, pb := a.Simulation().Particles(), b.Simulation().Particles()
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("particle %d differs: %+v vs %+v", i, pa[i], pb[i])
		}
	}
}

func TestStepsAdvanceWithoutPhysics(t *testing.T) {
	tests := []struct {
		name  string
		setup func(cfg *config.Config) func()
	}{
		{"zero-width screen", func(cfg *config.Config) func() {
			saved := cfg.Derived.ScreenW32
			cfg.Derived.ScreenW32 = 0
			return func() { cfg.Derived.ScreenW32 = saved }
		}},
		{"zero particle count", func(cfg *config.Config) func() {
			saved := cfg.Controls.ParticlesMin
			cfg.Controls.ParticlesMin = 0
			return func() { cfg.Controls.ParticlesMin = saved }
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restore := tt.setup(config.Cfg())
			defer restore()

			g := newHeadlessGame(t, headlessOptions(0))
			for i := 0; i < 50; i++ {
				g.UpdateHeadless()
			}

			if g.Tick() != 0 {
				t.Errorf("Tick() = %d, want 0 with nothing to move", g.Tick())
			}
			if g.Steps() != 50 {
				t.Errorf("Steps() = %d, want 50", g.Steps())
			}
		})
	}
}

func TestStopClearsSparks(t *testing.T) {
	g := newHeadlessGame(t, headlessOptions(64))
	dt := config.Cfg().Physics.DT

	g.UpdateHeadless()
	if g.SparkCount() == 0 {
		t.Fatal("expected sparks after collisions")
	}

	stop := g.Controls()
	stop.Running = false
	g.step(stop, dt)

	if g.Simulation().State() != systems.StateStopped {
		t.Fatalf("state = %v, want stopped", g.Simulation().State())
	}
	if g.SparkCount() != 0 {
		t.Errorf("SparkCount() = %d after stop, want 0", g.SparkCount())
	}
}
