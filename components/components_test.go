package components

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestCenteredBounds(t *testing.T) {
	b := CenteredBounds(500, 300)
	if b.Left() != -250 || b.Right() != 250 || b.Bottom() != -150 || b.Top() != 150 {
		t.Errorf("bounds = %+v", b)
	}
	if b.Width() != 500 || b.Height() != 300 {
		t.Errorf("size = %vx%v, want 500x300", b.Width(), b.Height())
	}
	if b.Empty() {
		t.Error("non-empty bounds reported Empty")
	}
	if !(Bounds{}).Empty() || !CenteredBounds(100, 0).Empty() {
		t.Error("zero-area bounds not reported Empty")
	}
}

func TestClampControls(t *testing.T) {
	limits := ControlLimits{AccelerationMax: 500, ResistanceMax: 1000, ParticlesMin: 2, ParticlesMax: 512}

	tests := []struct {
		name string
		in   Controls
		want Controls
	}{
		{"in range", Controls{Acceleration: 10, Resistance: 3.5, TargetCount: 8}, Controls{Acceleration: 10, Resistance: 3.5, TargetCount: 8}},
		{"rounds acceleration", Controls{Acceleration: 12.6, TargetCount: 2}, Controls{Acceleration: 13, TargetCount: 2}},
		{"clamps high", Controls{Acceleration: 900, Resistance: 2000, TargetCount: 9000, Running: true}, Controls{Acceleration: 500, Resistance: 1000, TargetCount: 512, Running: true}},
		{"clamps low", Controls{Acceleration: -5, Resistance: -1, TargetCount: 0}, Controls{Acceleration: 0, Resistance: 0, TargetCount: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampControls(tt.in, limits); got != tt.want {
				t.Errorf("ClampControls(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParticleDerived(t *testing.T) {
	p := Particle{Velocity: r2.Vec{X: 3, Y: 4}, Mass: 2}
	if p.Speed() != 5 {
		t.Errorf("Speed = %v, want 5", p.Speed())
	}
	if p.KineticEnergy() != 25 {
		t.Errorf("KineticEnergy = %v, want 25", p.KineticEnergy())
	}
	if m := p.Momentum(); m != (r2.Vec{X: 6, Y: 8}) {
		t.Errorf("Momentum = %v, want (6, 8)", m)
	}
}

func TestColorRGBA8(t *testing.T) {
	r, g, b, a := Color{R: 0, G: 0.5, B: 1.2}.RGBA8()
	if r != 0 || g != 128 || b != 255 || a != 255 {
		t.Errorf("RGBA8 = (%d, %d, %d, %d)", r, g, b, a)
	}
}

func TestLifeRatio(t *testing.T) {
	tests := []struct {
		life Life
		want float64
	}{
		{Life{Remaining: 1, Total: 2}, 0.5},
		{Life{Remaining: -1, Total: 2}, 0},
		{Life{Remaining: 1, Total: 0}, 0},
	}
	for _, tt := range tests {
		if got := tt.life.Ratio(); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Ratio(%+v) = %v, want %v", tt.life, got, tt.want)
		}
	}
}
