package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/plus3/planetsim/sim"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the benchmark should run for.")
	bodyCount := flag.Int("bodies", 5000, "The number of bodies kept in flight.")
	seed := flag.Int64("seed", 1, "Seed for the random launch gestures.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting planetsim benchmark...")

	cfg := sim.DefaultConfig()
	world, err := sim.NewWorld(cfg)
	if err != nil {
		log.Fatalf("Failed to create world: %v", err)
	}
	scheduler := sim.NewDefaultScheduler(world)
	gestures := newGestures(cfg, world.Attractor(), *seed)

	log.Printf("Launching %d bodies...\n", *bodyCount)
	gestures.fill(world, *bodyCount)
	log.Println("Launch complete.")

	report := &Report{
		Duration:       *duration,
		Bodies:         *bodyCount,
		Seed:           *seed,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	dt := 1.0 / float64(cfg.FPS)

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			scheduler.Once(dt)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			report.TotalUpdates++

			report.Relaunched += gestures.fill(world, *bodyCount)
		}
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	report.World = *world.CollectStats()
	report.Scheduler = *scheduler.GetStats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Benchmark Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// gestures produces random two-press launches around the attractor.
type gestures struct {
	rng      *rand.Rand
	launcher *sim.Launcher
	center   sim.Vec2
	minR     float64
	maxR     float64
	maxPull  float64
}

func newGestures(cfg sim.Config, a sim.Attractor, seed int64) *gestures {
	return &gestures{
		rng:      rand.New(rand.NewSource(seed)),
		launcher: sim.NewLauncher(cfg),
		center:   a.Pos,
		minR:     a.Radius + cfg.CollisionMargin + cfg.BodyRadius,
		maxR:     min(cfg.Width, cfg.Height) / 2,
		maxPull:  2 * cfg.VelocityScale,
	}
}

// fill launches bodies until the world holds n of them and returns how many
// were launched.
func (g *gestures) fill(world *sim.World, n int) int {
	launched := 0
	for world.Len() < n {
		if body, ok := g.launch(); ok {
			world.Spawn(body)
			launched++
		}
	}
	return launched
}

func (g *gestures) launch() (sim.Body, bool) {
	angle := g.rng.Float64() * 2 * math.Pi
	r := g.minR + g.rng.Float64()*(g.maxR-g.minR)
	origin := sim.Vec2{X: g.center.X + r*math.Cos(angle), Y: g.center.Y + r*math.Sin(angle)}
	release := sim.Vec2{
		X: origin.X + (g.rng.Float64()*2-1)*g.maxPull,
		Y: origin.Y + (g.rng.Float64()*2-1)*g.maxPull,
	}

	g.launcher.Press(origin)
	return g.launcher.Press(release)
}
