package systems

import (
	"log/slog"

	"github.com/pthm-cable/collide/components"
)

// State is the run state of a Simulation.
type State uint8

const (
	StateStopped State = iota // population empty, ticks do nothing
	StateRunning              // population live, ticks integrate
)

func (s State) String() string {
	if s == StateRunning {
		return "running"
	}
	return "stopped"
}

// Transition is the state change a call to Apply produced.
type Transition uint8

const (
	TransitionNone Transition = iota
	TransitionStarted
	TransitionStopped
)

// TickStats summarizes one tick.
type TickStats struct {
	Transition  Transition
	Population  int
	Collisions  int
	Degenerate  int
	Reflections int // axis flips, a corner counts twice
}

// Simulation runs the start/stop state machine and the per-tick update.
type Simulation struct {
	store    *ParticleStore
	resolver *CollisionResolver
	state    State
	tick     int64
}

// NewSimulation creates a stopped simulation around store.
func NewSimulation(store *ParticleStore, resolver *CollisionResolver) *Simulation {
	if resolver == nil {
		resolver = NewCollisionResolver()
	}
	return &Simulation{
		store:    store,
		resolver: resolver,
	}
}

// State returns the current run state.
func (s *Simulation) State() State {
	return s.state
}

// Ticks returns the number of ticks that ran physics.
func (s *Simulation) Ticks() int64 {
	return s.tick
}

// Particles returns the live population in store order, valid until the next tick.
func (s *Simulation) Particles() []components.Particle {
	return s.store.Particles()
}

// Resolver returns the collision resolver used by Tick.
func (s *Simulation) Resolver() *CollisionResolver {
	return s.resolver
}

// Apply handles the run/stop signal. A start creates a population only
// when the store is empty; a stop clears it. Repeating either signal is a
// no-op. TargetCount is read only at creation, so changing it mid-run has
// no effect until the next start.
func (s *Simulation) Apply(c components.Controls, bounds components.Bounds) Transition {
	switch {
	case c.Running && s.store.Len() == 0:
		s.store.Create(c.TargetCount, bounds)
		if s.store.Len() == 0 {
			return TransitionNone
		}
		s.state = StateRunning
		slog.Debug("population created", "count", s.store.Len())
		return TransitionStarted
	case !c.Running && s.state == StateRunning:
		s.store.Clear()
		s.state = StateStopped
		slog.Debug("population cleared")
		return TransitionStopped
	}
	return TransitionNone
}

// Tick applies the controls and advances every particle by delta seconds.
// For each slot in order: copy, resolve collisions against the live store,
// apply force, reflect at the bounds, integrate, write back.
// With empty bounds or delta <= 0 only the controls apply: collisions are
// not resolved and nothing moves.
func (s *Simulation) Tick(c components.Controls, bounds components.Bounds, delta float64) TickStats {
	stats := TickStats{Transition: s.Apply(c, bounds)}
	stats.Population = s.store.Len()

	if s.state != StateRunning || delta <= 0 || bounds.Empty() {
		return stats
	}

	acc := c.Acceleration * delta
	res := c.Resistance * delta
	live := s.store.Particles()

	for i := range live {
		p := live[i]

		cr := s.resolver.ResolveCollisions(&p, live)
		stats.Collisions += cr.Collisions
		stats.Degenerate += cr.Degenerate

		p.Velocity = ApplyForce(p.Velocity, acc, res)

		stats.Reflections += ReflectBoundary(&p, bounds).Count()

		p.Position = IntegratePosition(p.Position, p.Velocity, delta)

		live[i] = p
	}

	s.tick++
	return stats
}
