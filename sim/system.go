package sim

// System is one stage of the frame update. Systems may keep state between
// frames and must route spawns and despawns through frame.Commands.
type System interface {
	Execute(frame *Frame)
}
