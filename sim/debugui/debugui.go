// Package debugui provides Dear ImGui inspector windows for a running simulation.
// Windows are queued by OverlaySystem and drawn when the frame's commands flush,
// which must happen between the ImGui backend's BeginFrame and EndFrame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/planetsim/sim"
)

// Item holds a Dear ImGui render function drawn once per frame.
type Item struct {
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// The game ignores placement clicks while WantCaptureMouse is set.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// OverlaySystem refreshes the input capture state and defers every item's
// render function to the end of the frame.
type OverlaySystem struct {
	Items []Item
	Input *InputState
}

// NewOverlaySystem returns an overlay with the standard inspector windows for
// the given scheduler's world.
func NewOverlaySystem(scheduler *sim.Scheduler) *OverlaySystem {
	o := &OverlaySystem{Input: &InputState{}}
	o.Items = StandardItems(scheduler)
	return o
}

// Execute updates input state and queues all ImGui render functions.
func (o *OverlaySystem) Execute(frame *sim.Frame) {
	io := imgui.CurrentIO()
	o.Input.WantCaptureMouse = io.WantCaptureMouse()
	o.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range o.Items {
		frame.Commands.Defer(item.Render)
	}
}

// StandardItems builds the body browser, world stats and performance windows.
func StandardItems(scheduler *sim.Scheduler) []Item {
	world := scheduler.World()
	browser := NewBodyBrowser(50)
	worldStats := NewWorldStatsWindow()
	perf := NewPerformanceStats(120)
	timer := NewFrameTimer()

	return []Item{
		{Render: func() { browser.Render(world) }},
		{Render: func() { worldStats.Render(world) }},
		{Render: func() { perf.Render(scheduler, timer.DeltaTime()) }},
	}
}
