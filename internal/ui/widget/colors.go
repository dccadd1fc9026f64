package widget

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	colorBackground = color.RGBA{0, 0, 0, 255}
	colorOutline    = color.RGBA{255, 255, 255, 255}
	colorText       = color.RGBA{255, 255, 255, 255}
	colorButtonIdle = color.RGBA{10, 10, 10, 255}
	colorCross      = color.RGBA{255, 50, 50, 255}
)

// lighten blends c toward white by t in HCL space.
func lighten(c color.Color, t float64) color.Color {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return c
	}
	white := colorful.Color{R: 1, G: 1, B: 1}
	return cf.BlendHcl(white, t).Clamped()
}
