package camera

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestNew(t *testing.T) {
	cam := New(500, 400)
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
}

func TestWorldToScreenOrigin(t *testing.T) {
	cam := New(500, 400)

	// World origin maps to screen center
	sx, sy := cam.WorldToScreen(r2.Vec{})
	if sx != 250 || sy != 200 {
		t.Errorf("expected screen center (250, 200), got (%f, %f)", sx, sy)
	}

	// World y grows upward, screen y grows downward
	_, sy = cam.WorldToScreen(r2.Vec{Y: 100})
	if sy != 100 {
		t.Errorf("expected y=100 above center at screen y 100, got %f", sy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 720)
	cam.Zoom = 2

	testCases := []struct{ sx, sy float32 }{
		{640, 360},
		{100, 100},
		{1200, 600},
	}

	for _, tc := range testCases {
		w := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(w)
		if math.Abs(float64(sx-tc.sx)) > 0.01 || math.Abs(float64(sy-tc.sy)) > 0.01 {
			t.Errorf("roundtrip failed: (%f,%f) -> %v -> (%f,%f)", tc.sx, tc.sy, w, sx, sy)
		}
	}
}

func TestBounds(t *testing.T) {
	cam := New(500, 300)
	b := cam.Bounds()
	if b.Left() != -250 || b.Right() != 250 || b.Bottom() != -150 || b.Top() != 150 {
		t.Errorf("bounds = %+v", b)
	}

	cam.Zoom = 2
	b = cam.Bounds()
	if b.Width() != 250 || b.Height() != 150 {
		t.Errorf("zoomed bounds = %vx%v, want 250x150", b.Width(), b.Height())
	}

	cam.Resize(0, 0)
	if !cam.Bounds().Empty() {
		t.Error("zero viewport should give empty bounds")
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(500, 500)

	if !cam.IsVisible(r2.Vec{}, 5) {
		t.Error("origin should be visible")
	}
	if !cam.IsVisible(r2.Vec{X: 255}, 10) {
		t.Error("circle overlapping the right edge should be visible")
	}
	if cam.IsVisible(r2.Vec{X: 300}, 10) {
		t.Error("circle past the right edge should not be visible")
	}
}
