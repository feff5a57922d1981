package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/collide/ui"
)

const helpLegend = "[Space] run/stop  [H] panel  [<>] speed"

// Draw renders the current frame.
func (g *Game) Draw() {
	rl.BeginDrawing()

	g.particleRenderer.Clear()
	g.particleRenderer.Draw(g.sim.Particles())
	if g.sparks != nil {
		g.particleRenderer.DrawSparks(g.sparks)
	}

	g.panel.Draw()
	g.hud.Draw(g.hudData(), int32(g.screenHeight))
	g.hud.DrawHelp(int32(g.screenWidth), helpLegend)

	rl.EndDrawing()
	g.perfCollector.RecordFrame()
}

func (g *Game) hudData() ui.HUDData {
	state := g.sim.State().String()
	if g.stepsPerUpdate > 1 {
		state = fmt.Sprintf("%s %dx", state, g.stepsPerUpdate)
	}
	return ui.HUDData{
		Tick:       g.sim.Ticks(),
		Population: len(g.sim.Particles()),
		Collisions: g.lastStats.Collisions,
		Sparks:     g.SparkCount(),
		FPS:        rl.GetFPS(),
		State:      state,
	}
}
