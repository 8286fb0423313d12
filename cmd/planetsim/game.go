package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/planetsim/sim"
	"github.com/plus3/planetsim/sim/debugui"
	debugui_ebiten "github.com/plus3/planetsim/sim/debugui/ebiten"
	"github.com/plus3/planetsim/sim/render"
)

var launchButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonMiddle,
	ebiten.MouseButtonRight,
}

// Game wires the simulation into ebiten's update/draw loop.
type Game struct {
	cfg       sim.Config
	world     *sim.World
	scheduler *sim.Scheduler
	launcher  *sim.Launcher
	renderer  *render.Renderer
	overlay   *debugui.OverlaySystem
	imgui     *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	return g.imgui.Frame(func() error {
		g.handlePresses()
		g.scheduler.Once(1.0 / float64(g.cfg.FPS))
		return nil
	})
}

// handlePresses feeds every mouse press of this tick into the launcher,
// unless the inspector windows own the mouse.
func (g *Game) handlePresses() {
	if g.overlay.Input.WantCaptureMouse {
		return
	}

	cursor := g.cursor()
	for _, button := range launchButtons {
		if !inpututil.IsMouseButtonJustPressed(button) {
			continue
		}
		if body, ok := g.launcher.Press(cursor); ok {
			g.world.Spawn(body)
		}
	}
}

func (g *Game) cursor() sim.Vec2 {
	x, y := ebiten.CursorPosition()
	return sim.Vec2{X: float64(x), Y: float64(y)}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, render.Scene{
		World:    g.world,
		Launcher: g.launcher,
		Cursor:   g.cursor(),
	})
	g.imgui.Overlay(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imgui.Layout(int(g.cfg.Width), int(g.cfg.Height))
	return int(g.cfg.Width), int(g.cfg.Height)
}
