package sim

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config gathers the constants of a simulation. The interactive program always
// runs with DefaultConfig; other values exist for tests and the bench harness.
type Config struct {
	Width, Height float64

	G               float64
	AttractorMass   float64
	AttractorRadius float64
	BodyMass        float64
	BodyRadius      float64
	CollisionMargin float64

	// VelocityScale divides the drag offset of a placement gesture.
	VelocityScale float64
	// SpeedCeiling is the speed at which a body is drawn in FastColor.
	SpeedCeiling float64
	// MinDistance clamps the attractor distance used in the force law.
	MinDistance float64

	FPS int

	// TrailLimit caps the recorded trail of a body, 0 keeps every sample.
	TrailLimit int
	// TrailStride draws every n-th trail sample.
	TrailStride uint64

	// CompactThreshold is the free/total slot ratio above which the body pool
	// is compacted at the end of a frame.
	CompactThreshold float64

	SlowColor color.RGBA
	FastColor color.RGBA
}

// DefaultConfig returns the constants of the classic planet toy.
func DefaultConfig() Config {
	return Config{
		Width:            1080,
		Height:           720,
		G:                5,
		AttractorMass:    250,
		AttractorRadius:  75,
		BodyMass:         10,
		BodyRadius:       10,
		CollisionMargin:  5,
		VelocityScale:    100,
		SpeedCeiling:     3.5,
		MinDistance:      1,
		FPS:              60,
		TrailLimit:       0,
		TrailStride:      2,
		CompactThreshold: 0.5,
		SlowColor:        color.RGBA{0, 0, 255, 255},
		FastColor:        color.RGBA{255, 0, 0, 255},
	}
}

// Validate reports the first constant that would make the physics step or
// culling undefined.
func (c Config) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"width", c.Width},
		{"height", c.Height},
		{"G", c.G},
		{"attractor mass", c.AttractorMass},
		{"body mass", c.BodyMass},
		{"velocity scale", c.VelocityScale},
		{"speed ceiling", c.SpeedCeiling},
		{"min distance", c.MinDistance},
	}
	for _, p := range positive {
		if !(p.value > 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, p.name, p.value)
		}
	}

	if c.AttractorRadius < 0 || c.CollisionMargin < 0 || c.BodyRadius < 0 {
		return fmt.Errorf("%w: radii and margins must not be negative", ErrInvalidConfig)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.FPS)
	}
	if c.TrailLimit < 0 {
		return fmt.Errorf("%w: trail limit must not be negative, got %d", ErrInvalidConfig, c.TrailLimit)
	}
	if c.TrailStride == 0 {
		return fmt.Errorf("%w: trail stride must be at least 1", ErrInvalidConfig)
	}
	if c.CompactThreshold < 0 || c.CompactThreshold > 1 {
		return fmt.Errorf("%w: compact threshold must be within [0, 1], got %v", ErrInvalidConfig, c.CompactThreshold)
	}
	return nil
}

// Center returns the middle of the visible rectangle.
func (c Config) Center() Vec2 {
	return Vec2{X: float64(int(c.Width) / 2), Y: float64(int(c.Height) / 2)}
}
