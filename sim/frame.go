package sim

// Frame is handed to every system during one scheduler tick.
type Frame struct {
	DeltaTime float64
	Tick      uint64
	World     *World
	Commands  *Commands
}

func newFrame(dt float64, tick uint64, world *World, commands *Commands) *Frame {
	return &Frame{
		DeltaTime: dt,
		Tick:      tick,
		World:     world,
		Commands:  commands,
	}
}
