package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/planetsim/sim"
	"github.com/plus3/planetsim/sim/debugui"
	debugui_ebiten "github.com/plus3/planetsim/sim/debugui/ebiten"
	"github.com/plus3/planetsim/sim/render"
)

const title = "Simulation"

func main() {
	cfg := sim.DefaultConfig()

	world, err := sim.NewWorld(cfg)
	if err != nil {
		log.Fatalf("planetsim: %v", err)
	}

	imguiBackend := debugui_ebiten.NewImguiBackend(title, int(cfg.Width), int(cfg.Height))
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(int(cfg.Width), int(cfg.Height))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(cfg.FPS)

	scheduler := sim.NewDefaultScheduler(world)
	overlay := debugui.NewOverlaySystem(scheduler)
	scheduler.Register(overlay)

	game := &Game{
		cfg:       cfg,
		world:     world,
		scheduler: scheduler,
		launcher:  sim.NewLauncher(cfg),
		renderer:  render.NewRenderer(cfg),
		overlay:   overlay,
		imgui:     imguiBackend,
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("planetsim: %v", err)
	}
}
