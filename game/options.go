package game

import "github.com/pthm-cable/collide/components"

// Options holds configuration for game initialization.
type Options struct {
	Seed           int64
	LogStats       bool    // log window stats via slog
	StatsWindowSec float64 // telemetry window in simulated seconds
	OutputDir      string  // CSV and config output (empty = disabled)
	Headless       bool
	StepsPerUpdate int

	// Initial control values. Headless runs keep these for the whole run.
	Controls components.Controls
}

// DefaultOptions returns options for a graphical run seeded with 1.
func DefaultOptions() Options {
	return Options{
		Seed:           1,
		StatsWindowSec: 10,
		StepsPerUpdate: 1,
		Controls:       components.Controls{TargetCount: 2},
	}
}
