package render_test

import (
	"slices"
	"testing"

	"github.com/plus3/planetsim/sim"
	"github.com/plus3/planetsim/sim/render"
	"github.com/stretchr/testify/assert"
)

func TestTrailMarksEverySecondSample(t *testing.T) {
	cfg := sim.DefaultConfig()
	attractor := sim.Attractor{Pos: cfg.Center(), Mass: cfg.AttractorMass, Radius: cfg.AttractorRadius}
	body := sim.NewBody(sim.Vec2{X: 100, Y: 100}, sim.Vec2{X: 1}, cfg.BodyMass)
	for range 7 {
		sim.Step(&body, attractor, cfg)
	}

	marks := slices.Collect(render.TrailMarks(&body, cfg.TrailStride))

	assert.Equal(t, []sim.Vec2{body.Trail[1].Pos, body.Trail[3].Pos, body.Trail[5].Pos}, marks)
}

func TestTrailMarksZeroStride(t *testing.T) {
	body := sim.Body{Trail: []sim.TrailPoint{{ID: 1}, {ID: 2}}}

	assert.Empty(t, slices.Collect(render.TrailMarks(&body, 0)))
	assert.Len(t, slices.Collect(render.TrailMarks(&body, 1)), 2)
}

func TestReadings(t *testing.T) {
	tests := []struct {
		vel       sim.Vec2
		force     float64
		wantSpeed string
		wantForce string
	}{
		{sim.Vec2{}, 0, "V: 0.0", "F: 0.0"},
		{sim.Vec2{X: 3, Y: 4}, 0.03125, "V: 5.0", "F: 0.031"},
		{sim.Vec2{X: 1.23456}, 2.5, "V: 1.235", "F: 2.5"},
	}

	for _, tt := range tests {
		body := sim.Body{Vel: tt.vel, Force: tt.force}
		speed, force := render.Readings(&body)
		assert.Equal(t, tt.wantSpeed, speed)
		assert.Equal(t, tt.wantForce, force)
	}
}
