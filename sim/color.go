package sim

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// SpeedColor maps speed to a colour between cfg.SlowColor and cfg.FastColor.
// The blend fraction is speed/cfg.SpeedCeiling clamped to [0, 1].
func SpeedColor(speed float64, cfg Config) color.RGBA {
	fac := min(max(speed/cfg.SpeedCeiling, 0), 1)
	switch fac {
	case 0:
		return cfg.SlowColor
	case 1:
		return cfg.FastColor
	}

	slow, _ := colorful.MakeColor(cfg.SlowColor)
	fast, _ := colorful.MakeColor(cfg.FastColor)
	r, g, b := slow.BlendRgb(fast, fac).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
