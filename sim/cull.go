package sim

// CullReason says why a body leaves the active set.
type CullReason int

const (
	Keep CullReason = iota
	OffScreen
	Collided
)

func (r CullReason) String() string {
	switch r {
	case Keep:
		return "keep"
	case OffScreen:
		return "off-screen"
	case Collided:
		return "collided"
	default:
		return "unknown"
	}
}

// Cull tests b against the visible rectangle and the attractor's collision
// radius. Off-screen wins when both hold.
func Cull(b *Body, a Attractor, cfg Config) CullReason {
	if b.Pos.X < 0 || b.Pos.X > cfg.Width || b.Pos.Y < 0 || b.Pos.Y > cfg.Height {
		return OffScreen
	}
	if b.Pos.Dist(a.Pos) <= a.Radius+cfg.CollisionMargin {
		return Collided
	}
	return Keep
}
