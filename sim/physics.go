package sim

import "math"

// distance returns the clamped body-attractor distance the force law uses.
func distance(pos Vec2, a Attractor, cfg Config) float64 {
	return max(pos.Dist(a.Pos), cfg.MinDistance)
}

// ForceMagnitude returns G*m1*m2/d^2 for a body of the given mass at pos.
func ForceMagnitude(pos Vec2, mass float64, a Attractor, cfg Config) float64 {
	d := distance(pos, a, cfg)
	return cfg.G * mass * a.Mass / (d * d)
}

// Acceleration returns the acceleration a body of the given mass feels at pos.
// The vector points from pos to the attractor.
func Acceleration(pos Vec2, mass float64, a Attractor, cfg Config) Vec2 {
	acc := ForceMagnitude(pos, mass, a, cfg) / mass
	angle := math.Atan2(a.Pos.Y-pos.Y, a.Pos.X-pos.X)
	return Vec2{X: acc * math.Cos(angle), Y: acc * math.Sin(angle)}
}

// Step advances b by one frame tick with semi-implicit Euler: velocity first,
// then position from the updated velocity. The new position is appended to
// the trail. It returns the force magnitude, which is also stored on b.
func Step(b *Body, a Attractor, cfg Config) float64 {
	b.Force = ForceMagnitude(b.Pos, b.Mass, a, cfg)
	b.Vel = b.Vel.Add(Acceleration(b.Pos, b.Mass, a, cfg))
	b.Pos = b.Pos.Add(b.Vel)
	b.record(cfg.TrailLimit)
	return b.Force
}
