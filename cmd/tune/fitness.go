package main

import (
	"math"
	"sync"

	"github.com/pthm-cable/collide/game"
	"github.com/pthm-cable/collide/telemetry"
)

// Target is the regime the tuner searches for.
type Target struct {
	MeanSpeed        float64 // units/second
	CollisionsPerSec float64
}

// FitnessEvaluator runs headless simulations and scores them against a target.
type FitnessEvaluator struct {
	params      *ParamVector
	target      Target
	ticks       int
	seeds       []int64
	statsWindow float64

	mu   sync.Mutex
	last Measurement // from the most recent Evaluate call
}

// Measurement is the steady-state regime of one or more runs.
type Measurement struct {
	MeanSpeed        float64
	CollisionsPerSec float64
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, target Target, ticks int, seeds []int64) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		target:      target,
		ticks:       ticks,
		seeds:       seeds,
		statsWindow: 5.0,
	}
}

// Last returns the measurement from the most recent evaluation.
func (fe *FitnessEvaluator) Last() Measurement {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.last
}

// Evaluate computes fitness for a parameter vector (lower = better):
// the squared relative error of speed and collision rate, averaged over seeds.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	results := make([]Measurement, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = fe.runSimulation(x, s)
		}(i, seed)
	}
	wg.Wait()

	var avg Measurement
	var total float64
	for _, m := range results {
		total += fe.score(m)
		avg.MeanSpeed += m.MeanSpeed
		avg.CollisionsPerSec += m.CollisionsPerSec
	}
	n := float64(len(results))
	avg.MeanSpeed /= n
	avg.CollisionsPerSec /= n

	fe.mu.Lock()
	fe.last = avg
	fe.mu.Unlock()

	return total / n
}

func (fe *FitnessEvaluator) score(m Measurement) float64 {
	return relErr2(m.MeanSpeed, fe.target.MeanSpeed) + relErr2(m.CollisionsPerSec, fe.target.CollisionsPerSec)
}

func relErr2(got, want float64) float64 {
	if want == 0 {
		return got * got
	}
	d := (got - want) / want
	return d * d
}

// runSimulation executes a single headless run and averages the second
// half of its stats windows, skipping the transient after spawning.
func (fe *FitnessEvaluator) runSimulation(x []float64, seed int64) Measurement {
	opts := game.Options{
		Seed:           seed,
		StatsWindowSec: fe.statsWindow,
		Headless:       true,
		StepsPerUpdate: 1,
		Controls:       fe.params.ToControls(x),
	}

	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		return Measurement{MeanSpeed: math.Inf(1), CollisionsPerSec: math.Inf(1)}
	}
	defer g.Unload()

	var windows []telemetry.WindowStats
	g.SetStatsCallback(func(s telemetry.WindowStats) {
		windows = append(windows, s)
	})

	for g.Steps() < int64(fe.ticks) {
		g.UpdateHeadless()
	}

	return steadyState(windows)
}

// steadyState averages the second half of windows.
func steadyState(windows []telemetry.WindowStats) Measurement {
	tail := windows[len(windows)/2:]
	if len(tail) == 0 {
		return Measurement{}
	}
	var m Measurement
	for _, w := range tail {
		m.MeanSpeed += w.SpeedMean
		m.CollisionsPerSec += w.CollisionsPerSec
	}
	m.MeanSpeed /= float64(len(tail))
	m.CollisionsPerSec /= float64(len(tail))
	return m
}
