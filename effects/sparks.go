// Package effects holds cosmetic collision sparks in an ECS world.
// Sparks never feed back into the physics.
package effects

import (
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/collide/components"
)

// Params configures spark emission.
type Params struct {
	PerCollision int     // sparks emitted per contact
	Life         float64 // seconds
	Speed        float64 // units/second
	Max          int     // live spark cap
}

// Sparks manages short-lived spark entities.
type Sparks struct {
	world  *ecs.World
	mapper *ecs.Map3[components.Position, components.Velocity, components.Life]
	filter *ecs.Filter3[components.Position, components.Velocity, components.Life]
	rng    *rand.Rand
	params Params
	count  int

	// reused between updates
	expired []ecs.Entity
}

// NewSparks creates an empty spark world.
func NewSparks(rng *rand.Rand, params Params) *Sparks {
	world := ecs.NewWorld()
	return &Sparks{
		world:  world,
		mapper: ecs.NewMap3[components.Position, components.Velocity, components.Life](world),
		filter: ecs.NewFilter3[components.Position, components.Velocity, components.Life](world),
		rng:    rng,
		params: params,
	}
}

// Emit spawns up to PerCollision sparks at a contact point, radiating in
// random directions. Emission stops at the live cap.
func (s *Sparks) Emit(at r2.Vec) int {
	emitted := 0
	for range s.params.PerCollision {
		if s.count >= s.params.Max {
			break
		}

		angle := s.rng.Float64() * 2 * math.Pi
		speed := s.params.Speed * (0.5 + 0.5*s.rng.Float64())
		life := s.params.Life * (0.75 + 0.5*s.rng.Float64())

		pos := components.Position{X: at.X, Y: at.Y}
		vel := components.Velocity{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed}
		lf := components.Life{Remaining: life, Total: life}
		s.mapper.NewEntity(&pos, &vel, &lf)

		s.count++
		emitted++
	}
	return emitted
}

// Update moves sparks by dt seconds and removes the expired ones.
func (s *Sparks) Update(dt float64) {
	s.expired = s.expired[:0]

	query := s.filter.Query()
	for query.Next() {
		pos, vel, life := query.Get()

		life.Remaining -= dt
		if life.Remaining <= 0 {
			s.expired = append(s.expired, query.Entity())
			continue
		}

		pos.X += vel.X * dt
		pos.Y += vel.Y * dt
	}

	// Remove after the query has finished
	s.removeAll(s.expired)
}

// Each visits every live spark with its position and remaining life ratio.
func (s *Sparks) Each(fn func(pos r2.Vec, lifeRatio float64)) {
	query := s.filter.Query()
	for query.Next() {
		pos, _, life := query.Get()
		fn(r2.Vec{X: pos.X, Y: pos.Y}, life.Ratio())
	}
}

// Count returns the number of live sparks.
func (s *Sparks) Count() int {
	return s.count
}

// Clear removes every spark.
func (s *Sparks) Clear() {
	s.expired = s.expired[:0]
	query := s.filter.Query()
	for query.Next() {
		s.expired = append(s.expired, query.Entity())
	}
	s.removeAll(s.expired)
}

func (s *Sparks) removeAll(entities []ecs.Entity) {
	for _, e := range entities {
		s.world.RemoveEntity(e)
		s.count--
	}
}
