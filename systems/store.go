// Package systems contains the simulation engine: particle storage,
// collision resolution, boundary reflection and integration.
package systems

import (
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/collide/components"
)

// SpawnParams are the sampling ranges used by ParticleStore.Create.
type SpawnParams struct {
	MassMin, MassMax   float64 // mass uniform in [MassMin, MassMax)
	RadiusFactor       float64 // radius = mass * RadiusFactor
	Speed              float64 // velocity components uniform in [-Speed, Speed)
	ColorMin, ColorMax float64 // color channels uniform in [ColorMin, ColorMax)
}

// DefaultSpawnParams returns the canonical sampling ranges.
func DefaultSpawnParams() SpawnParams {
	return SpawnParams{
		MassMin:      0.5,
		MassMax:      1.0,
		RadiusFactor: 15,
		Speed:        100,
		ColorMin:     0.1,
		ColorMax:     1.0,
	}
}

// ParticleStore owns the live population.
// Particles are addressed by slot index; the backing slice is the single
// source of truth during a tick.
type ParticleStore struct {
	particles []components.Particle
	rng       *rand.Rand
	params    SpawnParams
}

// NewParticleStore creates an empty store that samples from rng.
func NewParticleStore(rng *rand.Rand, params SpawnParams) *ParticleStore {
	return &ParticleStore{
		rng:    rng,
		params: params,
	}
}

// Create replaces the population with count freshly sampled particles.
// Ids are a uniform random permutation of 0..count-1. The result is
// sorted ascending by position x.
func (s *ParticleStore) Create(count int, bounds components.Bounds) {
	if count < 0 {
		count = 0
	}

	pool := make([]int, count)
	for i := range pool {
		pool[i] = i
	}

	particles := make([]components.Particle, 0, count)
	for range count {
		// Draw an id from the remaining pool
		k := s.rng.Intn(len(pool))
		id := pool[k]
		pool[k] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]

		particles = append(particles, s.sample(id, bounds))
	}

	sort.SliceStable(particles, func(i, j int) bool {
		return particles[i].Position.X < particles[j].Position.X
	})

	s.particles = particles
}

// sample draws one particle inside bounds.
func (s *ParticleStore) sample(id int, bounds components.Bounds) components.Particle {
	p := s.params
	mass := s.uniform(p.MassMin, p.MassMax)
	return components.Particle{
		ID: id,
		Position: r2.Vec{
			X: s.uniform(bounds.Min.X, bounds.Max.X),
			Y: s.uniform(bounds.Min.Y, bounds.Max.Y),
		},
		Velocity: r2.Vec{
			X: s.uniform(-p.Speed, p.Speed),
			Y: s.uniform(-p.Speed, p.Speed),
		},
		Mass:   mass,
		Radius: mass * p.RadiusFactor,
		Color: components.Color{
			R: s.uniform(p.ColorMin, p.ColorMax),
			G: s.uniform(p.ColorMin, p.ColorMax),
			B: s.uniform(p.ColorMin, p.ColorMax),
		},
	}
}

// uniform returns a value in [lo, hi). A degenerate range returns lo.
func (s *ParticleStore) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// Clear empties the population.
func (s *ParticleStore) Clear() {
	s.particles = nil
}

// Len returns the number of live particles.
func (s *ParticleStore) Len() int {
	return len(s.particles)
}

// At returns a copy of the particle in slot i.
func (s *ParticleStore) At(i int) components.Particle {
	return s.particles[i]
}

// Set overwrites slot i.
func (s *ParticleStore) Set(i int, p components.Particle) {
	s.particles[i] = p
}

// Particles returns the live population in store order.
// The slice is owned by the store and is only valid until the next tick.
func (s *ParticleStore) Particles() []components.Particle {
	return s.particles
}
