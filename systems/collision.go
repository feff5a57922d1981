package systems

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/collide/components"
)

// CoincidentEpsilon is the default center distance below which a colliding
// pair has no usable normal and is skipped for the tick.
const CoincidentEpsilon = 1e-9

// Contact is the midpoint between two colliding centers.
type Contact struct {
	Point r2.Vec
	A, B  int // particle ids
}

// CollisionResult summarizes one ResolveCollisions call.
type CollisionResult struct {
	Collisions int
	Degenerate int // pairs in range with coincident centers, skipped
}

// CollisionResolver applies elastic impulses between a subject and the
// live population.
type CollisionResolver struct {
	Epsilon float64

	// OnContact, if set, is called for every resolved pair.
	OnContact func(Contact)
}

// NewCollisionResolver creates a resolver with the default epsilon.
func NewCollisionResolver() *CollisionResolver {
	return &CollisionResolver{Epsilon: CoincidentEpsilon}
}

// ResolveCollisions resolves p against every other particle in population.
// The other particle's new velocity is written into its slot immediately,
// so later subjects in the same tick see it. p's velocity is overwritten
// by each collision in turn; the last one wins.
func (r *CollisionResolver) ResolveCollisions(p *components.Particle, population []components.Particle) CollisionResult {
	var res CollisionResult
	for i := range population {
		o := &population[i]
		if o.ID == p.ID {
			continue
		}

		delta := r2.Sub(o.Position, p.Position)
		dist := r2.Norm(delta)
		if dist >= p.Radius+o.Radius {
			continue
		}
		if dist < r.Epsilon {
			res.Degenerate++
			continue
		}

		p.Velocity, o.Velocity = elasticExchange(p, o, r2.Scale(1/dist, delta))
		res.Collisions++

		if r.OnContact != nil {
			r.OnContact(Contact{
				Point: r2.Scale(0.5, r2.Add(p.Position, o.Position)),
				A:     p.ID,
				B:     o.ID,
			})
		}
	}
	return res
}

// ResolveCollisions resolves p against population with the default resolver.
func ResolveCollisions(p *components.Particle, population []components.Particle) CollisionResult {
	r := CollisionResolver{Epsilon: CoincidentEpsilon}
	return r.ResolveCollisions(p, population)
}

// elasticExchange returns the post-collision velocities of p and o given
// the unit normal n from p to o. Only the normal components change.
func elasticExchange(p, o *components.Particle, n r2.Vec) (pv, ov r2.Vec) {
	t := r2.Vec{X: -n.Y, Y: n.X}

	pn, pt := r2.Dot(p.Velocity, n), r2.Dot(p.Velocity, t)
	on, ot := r2.Dot(o.Velocity, n), r2.Dot(o.Velocity, t)

	total := p.Mass + o.Mass
	pn2 := (pn*(p.Mass-o.Mass) + 2*o.Mass*on) / total
	on2 := (on*(o.Mass-p.Mass) + 2*p.Mass*pn) / total

	pv = r2.Add(r2.Scale(pn2, n), r2.Scale(pt, t))
	ov = r2.Add(r2.Scale(on2, n), r2.Scale(ot, t))
	return pv, ov
}
