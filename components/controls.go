package components

import "math"

// Controls is the per-tick configuration supplied by the driver.
type Controls struct {
	Acceleration float64 // units/second^2
	Resistance   float64 // units/second^2, subtracted from Acceleration
	TargetCount  int     // population size used on the next start from empty
	Running      bool    // run/stop toggle
}

// ControlLimits are the UI ranges for Controls.
type ControlLimits struct {
	AccelerationMax float64
	ResistanceMax   float64
	ParticlesMin    int
	ParticlesMax    int
}

// ClampControls applies the slider ranges: acceleration is rounded to a
// whole number, resistance is clamped, the target count is clamped to
// [ParticlesMin, ParticlesMax].
func ClampControls(c Controls, l ControlLimits) Controls {
	c.Acceleration = math.Round(clamp(c.Acceleration, 0, l.AccelerationMax))
	c.Resistance = clamp(c.Resistance, 0, l.ResistanceMax)
	if c.TargetCount < l.ParticlesMin {
		c.TargetCount = l.ParticlesMin
	}
	if c.TargetCount > l.ParticlesMax {
		c.TargetCount = l.ParticlesMax
	}
	return c
}

func clamp(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
