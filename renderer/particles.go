// Package renderer draws the simulation state with raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/collide/camera"
	"github.com/pthm-cable/collide/components"
)

// ParticleRenderer renders simulated particles and collision sparks.
type ParticleRenderer struct {
	cam        *camera.Camera
	background rl.Color
	sparkColor rl.Color
	sparkSize  float32
}

// NewParticleRenderer creates a new particle renderer.
func NewParticleRenderer(cam *camera.Camera) *ParticleRenderer {
	return &ParticleRenderer{
		cam:        cam,
		background: rl.Color{R: 15, G: 18, B: 22, A: 255},
		sparkColor: rl.Color{R: 255, G: 200, B: 90, A: 255},
		sparkSize:  1.5,
	}
}

// Clear fills the frame with the background color.
func (r *ParticleRenderer) Clear() {
	rl.ClearBackground(r.background)
}

// Draw renders all particles as filled circles.
func (r *ParticleRenderer) Draw(particles []components.Particle) {
	for i := range particles {
		p := &particles[i]
		if !r.cam.IsVisible(p.Position, p.Radius) {
			continue
		}
		sx, sy := r.cam.WorldToScreen(p.Position)
		cr, cg, cb, ca := p.Color.RGBA8()
		rl.DrawCircleV(rl.Vector2{X: sx, Y: sy}, r.cam.ScaleLength(p.Radius), rl.Color{R: cr, G: cg, B: cb, A: ca})
	}
}

// SparkSource visits live sparks with their position and remaining life ratio.
type SparkSource interface {
	Each(fn func(pos r2.Vec, lifeRatio float64))
}

// DrawSparks renders sparks, fading and shrinking them as their life runs out.
func (r *ParticleRenderer) DrawSparks(sparks SparkSource) {
	sparks.Each(func(pos r2.Vec, lifeRatio float64) {
		ratio := float32(lifeRatio)
		sx, sy := r.cam.WorldToScreen(pos)

		color := r.sparkColor
		color.A = uint8(ratio * 220)

		size := r.sparkSize * ratio
		if size < 0.5 {
			size = 0.5
		}
		rl.DrawCircleV(rl.Vector2{X: sx, Y: sy}, size, color)
	})
}
