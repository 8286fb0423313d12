package sim_test

import (
	"testing"

	"github.com/plus3/planetsim/sim"
	"github.com/stretchr/testify/assert"
)

func TestLauncherGesture(t *testing.T) {
	cfg := sim.DefaultConfig()
	launcher := sim.NewLauncher(cfg)

	_, pending := launcher.Pending()
	assert.False(t, pending)

	_, launched := launcher.Press(sim.Vec2{X: 100, Y: 100})
	assert.False(t, launched)

	origin, pending := launcher.Pending()
	assert.True(t, pending)
	assert.Equal(t, sim.Vec2{X: 100, Y: 100}, origin)

	body, launched := launcher.Press(sim.Vec2{X: 150, Y: 80})
	assert.True(t, launched)
	assert.Equal(t, sim.Vec2{X: 100, Y: 100}, body.Pos)
	assert.Equal(t, sim.Vec2{X: -50.0 / 100, Y: 20.0 / 100}, body.Vel)
	assert.Equal(t, cfg.BodyMass, body.Mass)
	assert.Empty(t, body.Trail)
	assert.Zero(t, body.Samples)

	_, pending = launcher.Pending()
	assert.False(t, pending)
}

func TestLauncherAlternates(t *testing.T) {
	launcher := sim.NewLauncher(sim.DefaultConfig())

	launches := 0
	for i := range 7 {
		if _, ok := launcher.Press(sim.Vec2{X: float64(i), Y: float64(i)}); ok {
			launches++
		}
	}

	assert.Equal(t, 3, launches)
	_, pending := launcher.Pending()
	assert.True(t, pending)
}

func TestLauncherSamePointLaunchesAtRest(t *testing.T) {
	launcher := sim.NewLauncher(sim.DefaultConfig())

	launcher.Press(sim.Vec2{X: 300, Y: 200})
	body, ok := launcher.Press(sim.Vec2{X: 300, Y: 200})

	assert.True(t, ok)
	assert.Equal(t, sim.Vec2{}, body.Vel)
}
