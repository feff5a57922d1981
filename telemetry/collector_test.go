package telemetry

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/collide/components"
	"github.com/pthm-cable/collide/systems"
)

func TestCollectorWindow(t *testing.T) {
	c := NewCollector(1.0)

	c.RecordTick(systems.TickStats{Transition: systems.TransitionStarted, Population: 2}, 0.25)
	for i := 0; i < 2; i++ {
		c.RecordTick(systems.TickStats{Population: 2, Collisions: 2, Reflections: 1}, 0.25)
	}
	if c.ShouldFlush() {
		t.Fatal("flushed before the window elapsed")
	}
	c.RecordTick(systems.TickStats{Population: 2, Degenerate: 1}, 0.25)
	if !c.ShouldFlush() {
		t.Fatal("expected flush after 1s")
	}

	particles := []components.Particle{
		{Velocity: r2.Vec{X: 3, Y: 4}, Mass: 1},
		{Velocity: r2.Vec{X: -3, Y: -4}, Mass: 1},
	}
	stats := c.Flush(4, particles)

	if stats.WindowStartTick != 0 || stats.WindowEndTick != 4 {
		t.Errorf("window = [%d, %d], want [0, 4]", stats.WindowStartTick, stats.WindowEndTick)
	}
	if stats.Starts != 1 || stats.Stops != 0 {
		t.Errorf("starts=%d stops=%d", stats.Starts, stats.Stops)
	}
	if stats.Collisions != 4 || stats.Reflections != 2 || stats.Degenerate != 1 {
		t.Errorf("events = %+v", stats)
	}
	if stats.CollisionsPerSec != 4 {
		t.Errorf("collisions/sec = %v, want 4", stats.CollisionsPerSec)
	}
	if stats.Population != 2 || stats.SpeedMean != 5 || stats.Momentum != 0 || stats.KineticEnergy != 25 {
		t.Errorf("population stats = %+v", stats)
	}

	// Counters reset, sim time keeps running
	if c.ShouldFlush() {
		t.Error("ShouldFlush true right after Flush")
	}
	c.RecordTick(systems.TickStats{Transition: systems.TransitionStopped}, 0.5)
	next := c.Flush(6, nil)
	if next.WindowStartTick != 4 || next.Collisions != 0 || next.Stops != 1 {
		t.Errorf("next window = %+v", next)
	}
	if next.SimTimeSec != 1.5 {
		t.Errorf("sim time = %v, want 1.5", next.SimTimeSec)
	}
	if next.Population != 0 || next.SpeedMean != 0 {
		t.Errorf("empty population stats = %+v", next)
	}
}

func TestCollectorIgnoresNonPositiveDelta(t *testing.T) {
	c := NewCollector(1.0)
	c.RecordTick(systems.TickStats{}, -1)
	c.RecordTick(systems.TickStats{}, 0)
	if c.SimTime() != 0 || c.ShouldFlush() {
		t.Errorf("sim time = %v", c.SimTime())
	}
}
