package render

import (
	"iter"
	"math"
	"strconv"
	"strings"

	"github.com/plus3/planetsim/sim"
)

// TrailMarks yields the trail positions whose sample ID is a multiple of
// stride.
func TrailMarks(b *sim.Body, stride uint64) iter.Seq[sim.Vec2] {
	return func(yield func(sim.Vec2) bool) {
		if stride == 0 {
			return
		}
		for _, p := range b.Trail {
			if p.ID%stride != 0 {
				continue
			}
			if !yield(p.Pos) {
				return
			}
		}
	}
}

// Readings returns the speed and force labels drawn next to a body, rounded
// to three decimals without trailing zeros.
func Readings(b *sim.Body) (speed, force string) {
	return "V: " + round3(b.Speed()), "F: " + round3(b.Force)
}

func round3(v float64) string {
	r := math.Round(v*1000) / 1000
	s := strconv.FormatFloat(r, 'f', -1, 64)
	if !math.IsInf(r, 0) && !math.IsNaN(r) && !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
