package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the HUD line.
type HUDData struct {
	Tick       int64
	Population int
	Collisions int
	Sparks     int
	FPS        int32
	State      string
}

// Text formats the HUD line.
func (d HUDData) Text() string {
	return fmt.Sprintf("Tick: %d | Particles: %d | Collisions: %d | Sparks: %d | FPS: %d | %s",
		d.Tick, d.Population, d.Collisions, d.Sparks, d.FPS, d.State)
}

// HUD renders the heads-up display along the bottom of the screen.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData, screenHeight int32) {
	t := h.renderer.Theme
	rl.DrawText(data.Text(), t.Padding, screenHeight-t.FontSize-t.Padding, t.FontSize, t.LabelColor)
}

// DrawHelp renders the key legend in the top-right corner.
func (h *HUD) DrawHelp(screenWidth int32, legend string) {
	t := h.renderer.Theme
	w := rl.MeasureText(legend, t.FontSize)
	rl.DrawText(legend, screenWidth-w-t.Padding, t.Padding, t.FontSize, rl.Gray)
}
