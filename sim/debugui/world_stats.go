package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/planetsim/sim"
)

// WorldStatsWindow shows the world's bookkeeping and the attractor.
type WorldStatsWindow struct{}

func NewWorldStatsWindow() *WorldStatsWindow {
	return &WorldStatsWindow{}
}

func (ws *WorldStatsWindow) Render(world *sim.World) {
	imgui.SetNextWindowPosV(imgui.NewVec2(760, 510), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(310, 200), imgui.CondOnce)
	if !imgui.BeginV("World", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := world.CollectStats()
	imgui.Text(fmt.Sprintf("Tick: %d", stats.Tick))
	imgui.Text(fmt.Sprintf("Bodies: %d", stats.Bodies))
	imgui.Text(fmt.Sprintf("Slots: %d (%d free)", stats.Slots, stats.FreeSlots))
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Spawned: %d", stats.Spawned))
	imgui.Text(fmt.Sprintf("Off-screen: %d", stats.OffScreen))
	imgui.Text(fmt.Sprintf("Collided: %d", stats.Collided))
	imgui.Text(fmt.Sprintf("Compactions: %d", stats.Compactions))

	if imgui.TreeNodeStr("Attractor") {
		a := world.Attractor()
		cfg := world.Config()
		imgui.BulletText(fmt.Sprintf("Position: %.0f, %.0f", a.Pos.X, a.Pos.Y))
		imgui.BulletText(fmt.Sprintf("Mass: %.0f", a.Mass))
		imgui.BulletText(fmt.Sprintf("Collision radius: %.0f", a.Radius+cfg.CollisionMargin))
		imgui.BulletText(fmt.Sprintf("G: %.2f", cfg.G))
		imgui.TreePop()
	}

	imgui.End()
}
