package sim

// Launcher implements the two-press placement gesture. The first press
// records an origin, the second launches a body from that origin with a
// velocity pointing away from the release point.
type Launcher struct {
	cfg     Config
	origin  Vec2
	pending bool
}

func NewLauncher(cfg Config) *Launcher {
	return &Launcher{cfg: cfg}
}

// Press feeds one mouse press at the given cursor position. It returns the
// launched body and true on the second press of a gesture.
func (l *Launcher) Press(at Vec2) (Body, bool) {
	if !l.pending {
		l.origin = at
		l.pending = true
		return Body{}, false
	}

	l.pending = false
	drag := l.origin.Sub(at)
	vel := Vec2{X: drag.X / l.cfg.VelocityScale, Y: drag.Y / l.cfg.VelocityScale}
	return NewBody(l.origin, vel, l.cfg.BodyMass), true
}

// Pending returns the origin of an unfinished gesture.
func (l *Launcher) Pending() (Vec2, bool) {
	return l.origin, l.pending
}
