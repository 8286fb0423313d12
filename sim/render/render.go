// Package render draws a sim.World onto an ebiten screen.
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/planetsim/sim"
	"golang.org/x/image/font/basicfont"
)

var (
	White = color.RGBA{255, 255, 255, 255}
	Red   = color.RGBA{255, 0, 0, 255}
	Blue  = color.RGBA{0, 0, 255, 255}
	Black = color.RGBA{0, 0, 0, 255}
	Gray  = color.RGBA{128, 128, 128, 255}
)

const (
	ringWidth     = 5
	aimLineWidth  = 3
	labelOffsetX  = 25
	labelOffsetY  = 20
	hudX, hudY    = 75, 75
	hudScale      = 3
	trailDotSize  = 1
	labelFontSize = 1.5
)

// Renderer owns everything needed to draw a frame. The game creates one and
// hands it the screen every Draw.
type Renderer struct {
	cfg  sim.Config
	face text.Face
}

func NewRenderer(cfg sim.Config) *Renderer {
	return &Renderer{
		cfg:  cfg,
		face: text.NewGoXFace(basicfont.Face7x13),
	}
}

// Scene is the read-only state drawn for one frame.
type Scene struct {
	World    *sim.World
	Launcher *sim.Launcher
	Cursor   sim.Vec2
}

// Draw renders the scene back to front: aiming line, trails, bodies,
// attractor and the object counter.
func (r *Renderer) Draw(screen *ebiten.Image, scene Scene) {
	screen.Fill(Black)

	if origin, ok := scene.Launcher.Pending(); ok {
		vector.StrokeLine(screen,
			float32(origin.X), float32(origin.Y),
			float32(scene.Cursor.X), float32(scene.Cursor.Y),
			aimLineWidth, Red, true)
		r.drawRing(screen, origin, Blue)
	}

	for _, b := range scene.World.Bodies() {
		for p := range TrailMarks(b, r.cfg.TrailStride) {
			vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), trailDotSize, Gray, false)
		}
	}

	for _, b := range scene.World.Bodies() {
		r.drawRing(screen, b.Pos, b.Tint)
		speed, force := Readings(b)
		r.drawText(screen, speed, b.Pos.X+labelOffsetX, b.Pos.Y, labelFontSize)
		r.drawText(screen, force, b.Pos.X+labelOffsetX, b.Pos.Y-labelOffsetY, labelFontSize)
	}

	attractor := scene.World.Attractor()
	vector.DrawFilledCircle(screen,
		float32(attractor.Pos.X), float32(attractor.Pos.Y), float32(attractor.Radius), Blue, true)

	r.drawText(screen, fmt.Sprintf("Objects: %d", scene.World.Len()), hudX, hudY, hudScale)
}

// drawRing draws a body outline: a coloured band with a black core.
func (r *Renderer) drawRing(screen *ebiten.Image, pos sim.Vec2, c color.Color) {
	radius := float32(r.cfg.BodyRadius)
	x, y := float32(pos.X), float32(pos.Y)
	vector.DrawFilledCircle(screen, x, y, radius, c, true)
	vector.DrawFilledCircle(screen, x, y, radius-ringWidth, Black, true)
}

func (r *Renderer) drawText(screen *ebiten.Image, s string, x, y, scale float64) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(White)
	text.Draw(screen, s, r.face, op)
}
