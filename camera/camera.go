// Package camera maps world coordinates to screen pixels.
package camera

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/collide/components"
)

// Camera converts between the world frame (origin at the viewport center,
// y up) and the screen frame (origin top-left, y down).
type Camera struct {
	// Viewport dimensions (screen size in pixels)
	ViewportW, ViewportH float32

	// Zoom level (1.0 = one world unit per pixel)
	Zoom float32
}

// New creates a camera for a viewport with 1:1 zoom.
func New(viewportW, viewportH float32) *Camera {
	return &Camera{
		ViewportW: viewportW,
		ViewportH: viewportH,
		Zoom:      1.0,
	}
}

// Resize updates the viewport dimensions.
func (c *Camera) Resize(viewportW, viewportH float32) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
}

// WorldToScreen converts a world position to screen coordinates.
func (c *Camera) WorldToScreen(p r2.Vec) (sx, sy float32) {
	sx = c.ViewportW/2 + float32(p.X)*c.Zoom
	sy = c.ViewportH/2 - float32(p.Y)*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to a world position.
func (c *Camera) ScreenToWorld(sx, sy float32) r2.Vec {
	return r2.Vec{
		X: float64((sx - c.ViewportW/2) / c.Zoom),
		Y: float64((c.ViewportH/2 - sy) / c.Zoom),
	}
}

// ScaleLength converts a world length to pixels.
func (c *Camera) ScaleLength(l float64) float32 {
	return float32(l) * c.Zoom
}

// Bounds returns the visible world rectangle.
func (c *Camera) Bounds() components.Bounds {
	if c.Zoom <= 0 {
		return components.Bounds{}
	}
	return components.CenteredBounds(float64(c.ViewportW/c.Zoom), float64(c.ViewportH/c.Zoom))
}

// IsVisible returns true if a circle at p with the given radius could be
// on screen (conservative check for culling).
func (c *Camera) IsVisible(p r2.Vec, radius float64) bool {
	sx, sy := c.WorldToScreen(p)
	r := c.ScaleLength(radius)
	return sx+r >= 0 && sx-r <= c.ViewportW && sy+r >= 0 && sy-r <= c.ViewportH
}
