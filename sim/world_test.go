package sim_test

import (
	"errors"
	"testing"

	"github.com/plus3/planetsim/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodyIDEncoding(t *testing.T) {
	tests := []struct {
		tick   uint32
		serial uint32
	}{
		{0, 1},
		{1, 0},
		{0xFFFFFFFF, 0xFFFFFFFF},
		{0x12345678, 0x9ABCDEF0},
	}

	for _, tt := range tests {
		id := sim.NewBodyID(tt.tick, tt.serial)
		assert.Equal(t, tt.tick, id.Tick())
		assert.Equal(t, tt.serial, id.Serial())
	}
	assert.Equal(t, "#3@7", sim.NewBodyID(7, 3).String())
}

func TestNewWorldPlacesAttractor(t *testing.T) {
	world, err := sim.NewWorld(sim.DefaultConfig())
	require.NoError(t, err)

	attractor := world.Attractor()
	assert.Equal(t, sim.Vec2{X: 540, Y: 360}, attractor.Pos)
	assert.Equal(t, 250.0, attractor.Mass)
	assert.Equal(t, 75.0, attractor.Radius)
	assert.Equal(t, 0, world.Len())
	assert.Equal(t, uint64(0), world.Tick())
}

func TestNewWorldRejectsInvalidConfig(t *testing.T) {
	cfg := sim.DefaultConfig()
	cfg.BodyMass = 0

	world, err := sim.NewWorld(cfg)

	assert.Nil(t, world)
	assert.True(t, errors.Is(err, sim.ErrInvalidConfig))
}

func TestWorldSpawnDespawn(t *testing.T) {
	world, err := sim.NewWorld(sim.DefaultConfig())
	require.NoError(t, err)

	a := world.Spawn(sim.NewBody(sim.Vec2{X: 1, Y: 2}, sim.Vec2{}, 10))
	b := world.Spawn(sim.NewBody(sim.Vec2{X: 3, Y: 4}, sim.Vec2{}, 10))
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, sim.BodyID(0), a)
	assert.Equal(t, 2, world.Len())

	assert.True(t, world.Despawn(a))
	assert.False(t, world.Despawn(a))
	assert.Nil(t, world.Body(a))
	assert.Equal(t, sim.Vec2{X: 3, Y: 4}, world.Body(b).Pos)

	// a new body reuses the slot but never the ID
	c := world.Spawn(sim.NewBody(sim.Vec2{X: 5, Y: 6}, sim.Vec2{}, 10))
	assert.NotEqual(t, a, c)
	assert.Nil(t, world.Body(a))
	assert.Equal(t, sim.Vec2{X: 5, Y: 6}, world.Body(c).Pos)

	stats := world.CollectStats()
	assert.Equal(t, uint64(3), stats.Spawned)
	assert.Equal(t, uint64(1), stats.Despawned)
	assert.Equal(t, 2, stats.Bodies)
}

func TestWorldCompactKeepsIDs(t *testing.T) {
	world, err := sim.NewWorld(sim.DefaultConfig())
	require.NoError(t, err)

	ids := make([]sim.BodyID, 0, 100)
	for i := range 100 {
		ids = append(ids, world.Spawn(sim.NewBody(sim.Vec2{X: float64(i)}, sim.Vec2{}, 10)))
	}
	for i, id := range ids {
		if i%2 == 1 {
			world.Despawn(id)
		}
	}

	world.Compact()

	stats := world.CollectStats()
	assert.Equal(t, 50, stats.Bodies)
	assert.Equal(t, 50, stats.Slots)
	assert.Equal(t, uint64(1), stats.Compactions)
	for i, id := range ids {
		if i%2 == 1 {
			assert.Nil(t, world.Body(id))
			continue
		}
		require.NotNil(t, world.Body(id))
		assert.Equal(t, float64(i), world.Body(id).Pos.X)
	}

	// compacting a dense pool is a no-op
	world.Compact()
	assert.Equal(t, uint64(1), world.CollectStats().Compactions)
}

func TestWorldBodiesAllowsDespawn(t *testing.T) {
	world, err := sim.NewWorld(sim.DefaultConfig())
	require.NoError(t, err)
	for i := range 5 {
		world.Spawn(sim.NewBody(sim.Vec2{X: float64(i)}, sim.Vec2{}, 10))
	}

	visited := 0
	for id := range world.Bodies() {
		visited++
		world.Despawn(id)
	}

	assert.Equal(t, 5, visited)
	assert.Equal(t, 0, world.Len())
}
