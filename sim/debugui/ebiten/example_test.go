package ebiten_test

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/planetsim/sim"
	"github.com/plus3/planetsim/sim/debugui"
	debugui_ebiten "github.com/plus3/planetsim/sim/debugui/ebiten"
)

// Game implements ebiten.Game and draws the inspector windows over a world.
type Game struct {
	scheduler *sim.Scheduler
	imgui     *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	return g.imgui.Frame(func() error {
		g.scheduler.Once(1.0 / 60.0)
		return nil
	})
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw the world here...

	g.imgui.Overlay(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imgui.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	backend := debugui_ebiten.NewImguiBackend("Inspector Example", 1080, 720)

	world, err := sim.NewWorld(sim.DefaultConfig())
	if err != nil {
		panic(err)
	}

	scheduler := sim.NewDefaultScheduler(world)
	scheduler.Register(debugui.NewOverlaySystem(scheduler))

	game := &Game{scheduler: scheduler, imgui: backend}
	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
