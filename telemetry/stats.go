// Package telemetry collects windowed simulation statistics and writes
// them to logs and CSV files.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/collide/components"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int64   `csv:"-"`
	WindowEndTick   int64   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Population at window end
	Population int `csv:"population"`

	// Events during window
	Starts           int     `csv:"starts"`
	Stops            int     `csv:"stops"`
	Collisions       int     `csv:"collisions"`
	Degenerate       int     `csv:"degenerate"`
	Reflections      int     `csv:"reflections"`
	CollisionsPerSec float64 `csv:"collisions_per_sec"`

	// Conserved quantities, sampled at window end
	KineticEnergy float64 `csv:"kinetic_energy"`
	Momentum      float64 `csv:"momentum"` // magnitude of total momentum

	// Speed distribution, sampled at window end
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedP10  float64 `csv:"speed_p10"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`
	SpeedMax  float64 `csv:"speed_max"`
}

// Distribution summarizes a sample.
type Distribution struct {
	Mean, Std     float64
	P10, P50, P90 float64
	Max           float64
}

// ComputeDistribution returns mean, sample standard deviation, empirical
// percentiles and maximum of values. An empty slice gives all zeros; a
// single value has zero deviation.
func ComputeDistribution(values []float64) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	d := Distribution{
		Mean: stat.Mean(sorted, nil),
		P10:  stat.Quantile(0.10, stat.Empirical, sorted, nil),
		P50:  stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P90:  stat.Quantile(0.90, stat.Empirical, sorted, nil),
		Max:  floats.Max(sorted),
	}
	if len(sorted) > 1 {
		d.Std = stat.StdDev(sorted, nil)
	}
	return d
}

// Energetics returns the total kinetic energy and the magnitude of the
// total momentum of a population.
func Energetics(particles []components.Particle) (kinetic, momentum float64) {
	energies := make([]float64, len(particles))
	var total r2.Vec
	for i := range particles {
		energies[i] = particles[i].KineticEnergy()
		total = r2.Add(total, particles[i].Momentum())
	}
	return floats.Sum(energies), r2.Norm(total)
}

// Speeds returns the speed of every particle in store order.
func Speeds(particles []components.Particle) []float64 {
	speeds := make([]float64, len(particles))
	for i := range particles {
		speeds[i] = particles[i].Speed()
	}
	return speeds
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStartTick),
		slog.Int64("window_end", s.WindowEndTick),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("population", s.Population),
		slog.Int("starts", s.Starts),
		slog.Int("stops", s.Stops),
		slog.Int("collisions", s.Collisions),
		slog.Int("degenerate", s.Degenerate),
		slog.Int("reflections", s.Reflections),
		slog.Float64("collisions_per_sec", s.CollisionsPerSec),
		slog.Float64("kinetic_energy", s.KineticEnergy),
		slog.Float64("momentum", s.Momentum),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_std", s.SpeedStd),
		slog.Float64("speed_p10", s.SpeedP10),
		slog.Float64("speed_p50", s.SpeedP50),
		slog.Float64("speed_p90", s.SpeedP90),
		slog.Float64("speed_max", s.SpeedMax),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "stats", s)
}
