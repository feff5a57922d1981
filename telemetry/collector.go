package telemetry

import (
	"github.com/pthm-cable/collide/components"
	"github.com/pthm-cable/collide/systems"
)

// Collector accumulates tick events within time windows and produces WindowStats.
// Windows are measured in simulated seconds, so a frame-rate dependent
// driver and a fixed-step driver both get windows of the same length.
type Collector struct {
	windowSec float64

	// Current window tracking
	windowStartTick int64
	windowElapsed   float64
	simTime         float64

	// Event counters for current window
	starts      int
	stops       int
	collisions  int
	degenerate  int
	reflections int
}

// NewCollector creates a collector flushing every windowSec simulated seconds.
func NewCollector(windowSec float64) *Collector {
	if windowSec <= 0 {
		windowSec = 10
	}
	return &Collector{windowSec: windowSec}
}

// RecordTick adds one tick's events and its elapsed time.
func (c *Collector) RecordTick(ts systems.TickStats, delta float64) {
	switch ts.Transition {
	case systems.TransitionStarted:
		c.starts++
	case systems.TransitionStopped:
		c.stops++
	}
	c.collisions += ts.Collisions
	c.degenerate += ts.Degenerate
	c.reflections += ts.Reflections

	if delta > 0 {
		c.windowElapsed += delta
		c.simTime += delta
	}
}

// ShouldFlush returns true once the window has covered its duration.
func (c *Collector) ShouldFlush() bool {
	return c.windowElapsed >= c.windowSec
}

// SimTime returns the total simulated seconds recorded.
func (c *Collector) SimTime() float64 {
	return c.simTime
}

// Flush produces a WindowStats from the counters and the population at
// window end, then resets the counters for the next window.
func (c *Collector) Flush(currentTick int64, particles []components.Particle) WindowStats {
	kinetic, momentum := Energetics(particles)
	speeds := ComputeDistribution(Speeds(particles))

	var perSec float64
	if c.windowElapsed > 0 {
		perSec = float64(c.collisions) / c.windowElapsed
	}

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      c.simTime,

		Population: len(particles),

		Starts:           c.starts,
		Stops:            c.stops,
		Collisions:       c.collisions,
		Degenerate:       c.degenerate,
		Reflections:      c.reflections,
		CollisionsPerSec: perSec,

		KineticEnergy: kinetic,
		Momentum:      momentum,

		SpeedMean: speeds.Mean,
		SpeedStd:  speeds.Std,
		SpeedP10:  speeds.P10,
		SpeedP50:  speeds.P50,
		SpeedP90:  speeds.P90,
		SpeedMax:  speeds.Max,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.windowElapsed = 0
	c.starts = 0
	c.stops = 0
	c.collisions = 0
	c.degenerate = 0
	c.reflections = 0

	return stats
}
