// Package gfx adapts ebiten to the widget drawing and input contracts.
package gfx

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/llehouerou/spectra/internal/ui/widget"
)

// Canvas draws widget primitives onto an ebiten image.
type Canvas struct {
	dst       *ebiten.Image
	antialias bool
}

var _ widget.Canvas = (*Canvas)(nil)

// NewCanvas returns a canvas drawing onto dst. Rectangles are pixel aligned
// and drawn without antialiasing.
func NewCanvas(dst *ebiten.Image) *Canvas {
	return &Canvas{dst: dst, antialias: true}
}

// Target switches the image the canvas draws onto.
func (c *Canvas) Target(dst *ebiten.Image) { c.dst = dst }

func (c *Canvas) FillRect(r widget.Rect, col color.Color) {
	vector.DrawFilledRect(c.dst, r.Pos.X, r.Pos.Y, r.Size.X, r.Size.Y, col, false)
}

func (c *Canvas) StrokeRect(r widget.Rect, thickness float32, col color.Color) {
	// vector strokes are centered on the path; keep them inside r
	h := thickness / 2
	vector.StrokeRect(c.dst, r.Pos.X+h, r.Pos.Y+h, r.Size.X-thickness, r.Size.Y-thickness, thickness, col, false)
}

func (c *Canvas) FillCircle(center widget.Vec, radius float32, col color.Color) {
	vector.DrawFilledCircle(c.dst, center.X, center.Y, radius, col, c.antialias)
}

func (c *Canvas) StrokeCircle(center widget.Vec, radius, thickness float32, col color.Color) {
	vector.StrokeCircle(c.dst, center.X, center.Y, radius, thickness, col, c.antialias)
}

func (c *Canvas) StrokeLine(from, to widget.Vec, thickness float32, col color.Color) {
	vector.StrokeLine(c.dst, from.X, from.Y, to.X, to.Y, thickness, col, c.antialias)
}

// DrawText draws s with its top-left corner at pos. Faces not loaded by
// LoadFont are ignored.
func (c *Canvas) DrawText(s string, pos widget.Vec, face widget.Face, col color.Color) {
	f, ok := face.(*Face)
	if !ok {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(pos.X), float64(pos.Y))
	op.ColorScale.ScaleWithColor(col)
	op.LineSpacing = float64(f.lineHeight)
	text.Draw(c.dst, s, f.face, op)
}
