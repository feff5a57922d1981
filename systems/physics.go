package systems

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/collide/components"
)

// Reflection reports which velocity components ReflectBoundary negated.
type Reflection struct {
	X, Y bool
}

// Count returns the number of flipped axes; a corner counts twice.
func (r Reflection) Count() int {
	n := 0
	if r.X {
		n++
	}
	if r.Y {
		n++
	}
	return n
}

// ReflectBoundary negates each velocity component whose axis has the
// particle's extent outside b. Position is not modified. A particle that
// stays outside flips again on the next call.
func ReflectBoundary(p *components.Particle, b components.Bounds) Reflection {
	var r Reflection
	if p.Position.X-p.Radius < b.Left() || p.Position.X+p.Radius > b.Right() {
		p.Velocity.X = -p.Velocity.X
		r.X = true
	}
	if p.Position.Y-p.Radius < b.Bottom() || p.Position.Y+p.Radius > b.Top() {
		p.Velocity.Y = -p.Velocity.Y
		r.Y = true
	}
	return r
}

// ApplyForce pushes each velocity component away from zero by
// acceleration - resistance. Both are already scaled by elapsed time.
// A component of exactly zero counts as non-negative.
func ApplyForce(v r2.Vec, acceleration, resistance float64) r2.Vec {
	net := acceleration - resistance
	return r2.Vec{
		X: pushAway(v.X, net),
		Y: pushAway(v.Y, net),
	}
}

func pushAway(c, net float64) float64 {
	if c < 0 {
		return c - net
	}
	return c + net
}

// IntegratePosition advances pos by v * delta (explicit Euler).
func IntegratePosition(pos, v r2.Vec, delta float64) r2.Vec {
	return r2.Add(pos, r2.Scale(delta, v))
}
