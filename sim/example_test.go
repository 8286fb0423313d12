package sim_test

import (
	"fmt"

	"github.com/plus3/planetsim/sim"
)

// Example launches one body with the two-press gesture and lets it fall into
// the attractor.
func Example() {
	world, err := sim.NewWorld(sim.DefaultConfig())
	if err != nil {
		panic(err)
	}
	scheduler := sim.NewDefaultScheduler(world)
	launcher := sim.NewLauncher(world.Config())

	// first press picks the origin, second press releases it
	launcher.Press(sim.Vec2{X: 540, Y: 200})
	body, _ := launcher.Press(sim.Vec2{X: 540, Y: 200})
	world.Spawn(body)

	frames := 0
	for world.Len() > 0 {
		scheduler.Once(1.0 / 60.0)
		frames++
	}

	stats := world.CollectStats()
	fmt.Printf("collided after %d frames\n", frames)
	fmt.Printf("off-screen: %d, collided: %d\n", stats.OffScreen, stats.Collided)
	// Output:
	// collided after 52 frames
	// off-screen: 0, collided: 1
}

// ExampleLauncher shows how the drag offset becomes the launch velocity.
func ExampleLauncher() {
	launcher := sim.NewLauncher(sim.DefaultConfig())

	_, launched := launcher.Press(sim.Vec2{X: 200, Y: 300})
	fmt.Println("first press launched:", launched)

	body, launched := launcher.Press(sim.Vec2{X: 100, Y: 350})
	fmt.Println("second press launched:", launched)
	fmt.Printf("velocity: (%.2f, %.2f)\n", body.Vel.X, body.Vel.Y)
	// Output:
	// first press launched: false
	// second press launched: true
	// velocity: (1.00, -0.50)
}

// ExampleSpeedColor prints the outline colour at a few speeds.
func ExampleSpeedColor() {
	cfg := sim.DefaultConfig()
	for _, speed := range []float64{0, 1.75, 3.5, 9} {
		c := sim.SpeedColor(speed, cfg)
		fmt.Printf("%.2f -> (%d, %d, %d)\n", speed, c.R, c.G, c.B)
	}
	// Output:
	// 0.00 -> (0, 0, 255)
	// 1.75 -> (128, 0, 128)
	// 3.50 -> (255, 0, 0)
	// 9.00 -> (255, 0, 0)
}
