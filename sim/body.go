package sim

import "image/color"

// Attractor is the single stationary mass every body falls towards.
type Attractor struct {
	Pos    Vec2
	Mass   float64
	Radius float64
}

// TrailPoint is one recorded position of a body. ID is the value of the body's
// sample counter after the step that produced Pos.
type TrailPoint struct {
	Pos Vec2
	ID  uint64
}

// Body is a launched object subject to the attractor's gravity.
type Body struct {
	Pos  Vec2
	Vel  Vec2
	Mass float64

	// Force is the magnitude computed by the most recent step.
	Force float64
	// Samples counts the steps taken so far.
	Samples uint64
	Trail   []TrailPoint

	Tint color.RGBA
}

// NewBody returns a body with an empty trail and no recorded samples.
func NewBody(pos, vel Vec2, mass float64) Body {
	return Body{Pos: pos, Vel: vel, Mass: mass}
}

// Speed returns the magnitude of the body's velocity.
func (b *Body) Speed() float64 {
	return b.Vel.Len()
}

func (b *Body) record(limit int) {
	b.Samples++
	b.Trail = append(b.Trail, TrailPoint{Pos: b.Pos, ID: b.Samples})
	if limit > 0 && len(b.Trail) > limit {
		n := copy(b.Trail, b.Trail[len(b.Trail)-limit:])
		b.Trail = b.Trail[:n]
	}
}
