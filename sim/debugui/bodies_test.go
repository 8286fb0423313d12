package debugui

import (
	"testing"

	"github.com/plus3/planetsim/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodyBrowserSnapshot(t *testing.T) {
	world, err := sim.NewWorld(sim.DefaultConfig())
	require.NoError(t, err)

	slow := world.Spawn(sim.NewBody(sim.Vec2{X: 300, Y: 100}, sim.Vec2{X: 0.5}, 10))
	fast := world.Spawn(sim.NewBody(sim.Vec2{X: 100, Y: 100}, sim.Vec2{X: 3}, 10))

	browser := NewBodyBrowser(10)

	rows := browser.Snapshot(world)
	require.Len(t, rows, 2)
	assert.Equal(t, slow, rows[0].ID)
	assert.Equal(t, fast, rows[1].ID)

	browser.SetSort(columnSpeed, false)
	rows = browser.Snapshot(world)
	assert.Equal(t, fast, rows[0].ID)
	assert.InDelta(t, 3.0, rows[0].Speed, 1e-12)

	browser.SetSort(columnPos, true)
	rows = browser.Snapshot(world)
	assert.Equal(t, fast, rows[0].ID)
}

func TestBodyBrowserFilter(t *testing.T) {
	world, err := sim.NewWorld(sim.DefaultConfig())
	require.NoError(t, err)
	for range 12 {
		world.Spawn(sim.NewBody(sim.Vec2{X: 100, Y: 100}, sim.Vec2{}, 10))
	}

	browser := NewBodyBrowser(10)
	browser.SetFilter("#1")

	// #1, #10, #11, #12
	assert.Len(t, browser.Snapshot(world), 4)
}

func TestPerformanceStatsRecord(t *testing.T) {
	ps := NewPerformanceStats(4)

	assert.InDelta(t, 4.0, ps.Record(0.016), 1e-4)
	ps.Record(0.016)
	ps.Record(0.016)
	assert.InDelta(t, 16.0, ps.Record(0.016), 1e-4)
	assert.InDelta(t, 16.0, ps.Record(0.016), 1e-4)
}
