// Package components defines the value types shared by the simulation,
// the effects world and the renderer.
package components

import "gonum.org/v1/gonum/spatial/r2"

// Color is an RGB color with channels in [0, 1].
type Color struct {
	R, G, B float64
}

// RGBA8 converts the color to 8-bit channels with full opacity.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return channel8(c.R), channel8(c.G), channel8(c.B), 255
}

func channel8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Particle is one circular body in the simulation.
// ID is unique within the live population and never changes after creation.
type Particle struct {
	ID       int
	Position r2.Vec // world units
	Velocity r2.Vec // units per second
	Mass     float64
	Radius   float64 // collision and drawing extent, Mass * radius factor
	Color    Color
}

// Speed returns the magnitude of the particle's velocity.
func (p *Particle) Speed() float64 {
	return r2.Norm(p.Velocity)
}

// KineticEnergy returns 0.5 * m * |v|^2.
func (p *Particle) KineticEnergy() float64 {
	return 0.5 * p.Mass * r2.Dot(p.Velocity, p.Velocity)
}

// Momentum returns m * v.
func (p *Particle) Momentum() r2.Vec {
	return r2.Scale(p.Mass, p.Velocity)
}
