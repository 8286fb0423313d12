package sim

// TintSystem colours every body by its speed before the physics step, so the
// drawn colour matches the speed label of the same frame.
type TintSystem struct{}

func (s *TintSystem) Execute(frame *Frame) {
	cfg := frame.World.Config()
	for _, b := range frame.World.Bodies() {
		b.Tint = SpeedColor(b.Speed(), cfg)
	}
}

// GravitySystem integrates every active body one tick towards the attractor.
type GravitySystem struct{}

func (s *GravitySystem) Execute(frame *Frame) {
	cfg := frame.World.Config()
	attractor := frame.World.Attractor()
	for _, b := range frame.World.Bodies() {
		Step(b, attractor, cfg)
	}
}

// CullSystem queues the removal of bodies that left the screen or hit the
// attractor during this frame's step.
type CullSystem struct{}

func (s *CullSystem) Execute(frame *Frame) {
	cfg := frame.World.Config()
	attractor := frame.World.Attractor()
	for id, b := range frame.World.Bodies() {
		if reason := Cull(b, attractor, cfg); reason != Keep {
			frame.Commands.Despawn(id, reason)
		}
	}
}

// CompactSystem compacts the body pool after the frame's despawns once the
// share of empty slots passes the configured threshold.
type CompactSystem struct{}

func (s *CompactSystem) Execute(frame *Frame) {
	world := frame.World
	frame.Commands.Defer(func() {
		if world.fragmentation() > world.Config().CompactThreshold {
			world.Compact()
		}
	})
}

// DefaultSystems returns the frame pipeline of the planet toy in order.
func DefaultSystems() []System {
	return []System{
		&TintSystem{},
		&GravitySystem{},
		&CullSystem{},
		&CompactSystem{},
	}
}

// NewDefaultScheduler returns a scheduler with DefaultSystems registered.
func NewDefaultScheduler(world *World) *Scheduler {
	scheduler := NewScheduler(world)
	for _, system := range DefaultSystems() {
		scheduler.Register(system)
	}
	return scheduler
}
