package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/collide/components"
)

// ControlPanel renders the simulation controls: three sliders and a
// Run/Stop toggle. raygui is immediate mode, so the values read while
// drawing one frame feed the simulation on the next.
type ControlPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool

	limits   components.ControlLimits
	controls components.Controls
}

// NewControlPanel creates a panel at (x, y) starting from the given controls.
func NewControlPanel(x, y, width int32, limits components.ControlLimits, initial components.Controls) *ControlPanel {
	return &ControlPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		visible:  true,
		limits:   limits,
		controls: components.ClampControls(initial, limits),
	}
}

// Controls returns the current control values.
func (c *ControlPanel) Controls() components.Controls {
	return c.controls
}

// Toggle switches panel visibility.
func (c *ControlPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// ToggleRunning flips the run flag, as if the Run/Stop button was pressed.
func (c *ControlPanel) ToggleRunning() {
	c.controls.Running = !c.controls.Running
}

// Height returns the panel height in pixels.
func (c *ControlPanel) Height() int32 {
	t := c.renderer.Theme
	return t.Padding*2 + t.LineHeight*5
}

// Draw renders the panel and reads the widgets. Returns the Y position
// below the panel.
func (c *ControlPanel) Draw() int32 {
	if !c.visible {
		return c.y
	}

	r := c.renderer
	t := r.Theme
	r.DrawPanel(c.x, c.y, c.width, c.Height())

	x := c.x + t.Padding
	y := c.y + t.Padding
	sliderX := float32(x + t.LabelWidth)
	sliderW := float32(c.width - t.LabelWidth - t.Padding*2 - 40)

	rl.DrawText("Controls", x, y, t.TitleFontSize, t.SectionHeader)
	y += t.LineHeight

	slider := func(label string, value, lo, hi float32, format string) float32 {
		r.DrawLabel(x, y+2, label)
		v := gui.SliderBar(
			rl.Rectangle{X: sliderX, Y: float32(y), Width: sliderW, Height: float32(t.SliderHeight)},
			"", "",
			value, lo, hi,
		)
		r.DrawValue(int32(sliderX+sliderW)+6, y+2, fmt.Sprintf(format, v))
		y += t.LineHeight
		return v
	}

	accel := slider("Accel", float32(c.controls.Acceleration), 0, float32(c.limits.AccelerationMax), "%.0f")
	count := slider("Particles", float32(c.controls.TargetCount), float32(c.limits.ParticlesMin), float32(c.limits.ParticlesMax), "%.0f")
	resist := slider("Resistance", float32(c.controls.Resistance), 0, float32(c.limits.ResistanceMax), "%.0f")

	label := toggleText(c.controls.Running, "Stop", "Run")
	toggled := gui.Button(rl.Rectangle{X: float32(x), Y: float32(y), Width: 80, Height: float32(t.SliderHeight + 4)}, label)
	r.DrawStatus(x+90, y+4, toggleText(c.controls.Running, "running", "stopped"), c.controls.Running)
	y += t.LineHeight

	c.apply(accel, count, resist, toggled)
	return y + t.Padding
}

// apply folds widget readings into the control state.
func (c *ControlPanel) apply(accel, count, resist float32, toggled bool) {
	next := components.Controls{
		Acceleration: float64(accel),
		Resistance:   float64(resist),
		TargetCount:  int(count),
		Running:      c.controls.Running,
	}
	if toggled {
		next.Running = !next.Running
	}
	c.controls = components.ClampControls(next, c.limits)
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}
