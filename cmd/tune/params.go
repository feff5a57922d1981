package main

import (
	"math"

	"github.com/pthm-cable/collide/components"
	"github.com/pthm-cable/collide/config"
)

// ParamSpec defines a single tunable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all tunable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the tunable control parameters, bounded by the
// configured control ranges.
func NewParamVector(cfg *config.Config) *ParamVector {
	c := cfg.Controls
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "acceleration", Path: "controls.acceleration", Min: 0, Max: c.AccelerationMax, Default: c.AccelerationMax / 4},
			{Name: "resistance", Path: "controls.resistance", Min: 0, Max: c.ResistanceMax, Default: c.ResistanceMax / 10},
			{Name: "particles", Path: "controls.particles", Min: float64(c.ParticlesMin), Max: float64(c.ParticlesMax), Default: 64},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		clamped[i] = math.Max(spec.Min, math.Min(spec.Max, v[i]))
	}
	return clamped
}

// ToControls converts parameter values into running controls.
// Order must match Specs order.
func (pv *ParamVector) ToControls(values []float64) components.Controls {
	clamped := pv.Clamp(values)
	return components.Controls{
		Acceleration: math.Round(clamped[0]),
		Resistance:   clamped[1],
		TargetCount:  int(clamped[2]),
		Running:      true,
	}
}

// ApplyToConfig writes parameter values into the initial controls of cfg.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	c := pv.ToControls(values)
	cfg.Controls.Acceleration = c.Acceleration
	cfg.Controls.Resistance = c.Resistance
	cfg.Controls.Particles = c.TargetCount
}
