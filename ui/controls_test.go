package ui

import (
	"testing"

	"github.com/pthm-cable/collide/components"
)

var testLimits = components.ControlLimits{
	AccelerationMax: 500,
	ResistanceMax:   1000,
	ParticlesMin:    2,
	ParticlesMax:    512,
}

func TestControlPanelApply(t *testing.T) {
	tests := []struct {
		name                  string
		accel, count, resist  float32
		toggled               bool
		wantAccel, wantResist float64
		wantCount             int
		wantRunning           bool
	}{
		{"count truncated", 10, 33.9, 0, false, 10, 0, 33, false},
		{"accel rounded", 12.6, 2, 5, false, 13, 5, 2, false},
		{"toggle starts", 0, 64, 0, true, 0, 0, 64, true},
		{"clamped", 900, 1000, 2000, false, 500, 1000, 512, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewControlPanel(0, 0, 240, testLimits, components.Controls{TargetCount: 2})
			p.apply(tt.accel, tt.count, tt.resist, tt.toggled)
			c := p.Controls()
			if c.Acceleration != tt.wantAccel {
				t.Errorf("Acceleration = %v, want %v", c.Acceleration, tt.wantAccel)
			}
			if c.Resistance != tt.wantResist {
				t.Errorf("Resistance = %v, want %v", c.Resistance, tt.wantResist)
			}
			if c.TargetCount != tt.wantCount {
				t.Errorf("TargetCount = %d, want %d", c.TargetCount, tt.wantCount)
			}
			if c.Running != tt.wantRunning {
				t.Errorf("Running = %v, want %v", c.Running, tt.wantRunning)
			}
		})
	}
}

func TestControlPanelToggleTwice(t *testing.T) {
	p := NewControlPanel(0, 0, 240, testLimits, components.Controls{TargetCount: 8})
	p.apply(0, 8, 0, true)
	p.apply(0, 8, 0, true)
	if p.Controls().Running {
		t.Error("two toggles should leave the simulation stopped")
	}
}

func TestControlPanelClampsInitial(t *testing.T) {
	p := NewControlPanel(0, 0, 240, testLimits, components.Controls{TargetCount: 0, Acceleration: -5})
	c := p.Controls()
	if c.TargetCount != 2 || c.Acceleration != 0 {
		t.Errorf("initial controls not clamped: %+v", c)
	}
}

func TestHUDText(t *testing.T) {
	d := HUDData{Tick: 42, Population: 7, Collisions: 3, Sparks: 12, FPS: 60, State: "running"}
	want := "Tick: 42 | Particles: 7 | Collisions: 3 | Sparks: 12 | FPS: 60 | running"
	if got := d.Text(); got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}
