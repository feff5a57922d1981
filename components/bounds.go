package components

import "gonum.org/v1/gonum/spatial/r2"

// Bounds is an axis-aligned rectangle in world units.
// Y grows upward, so Min is the bottom-left corner.
type Bounds struct {
	Min, Max r2.Vec
}

// CenteredBounds returns a w x h rectangle centered on the origin.
func CenteredBounds(w, h float64) Bounds {
	return Bounds{
		Min: r2.Vec{X: -w / 2, Y: -h / 2},
		Max: r2.Vec{X: w / 2, Y: h / 2},
	}
}

func (b Bounds) Left() float64   { return b.Min.X }
func (b Bounds) Right() float64  { return b.Max.X }
func (b Bounds) Bottom() float64 { return b.Min.Y }
func (b Bounds) Top() float64    { return b.Max.Y }
func (b Bounds) Width() float64  { return b.Max.X - b.Min.X }
func (b Bounds) Height() float64 { return b.Max.Y - b.Min.Y }

// Empty reports whether the rectangle has no area.
func (b Bounds) Empty() bool {
	return b.Width() <= 0 || b.Height() <= 0
}
