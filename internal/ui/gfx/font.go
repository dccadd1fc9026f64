package gfx

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"github.com/llehouerou/spectra/internal/ui/widget"
)

// Face is a TrueType/OpenType font loaded at a fixed size.
type Face struct {
	face       *text.GoXFace
	lineHeight float32
}

var _ widget.Face = (*Face)(nil)

// LoadFont reads the font file at path and prepares it at size points.
func LoadFont(path string, size float64) (*Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	xf, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("face %s: %w", path, err)
	}

	f := text.NewGoXFace(xf)
	m := f.Metrics()
	return &Face{
		face:       f,
		lineHeight: float32(m.HAscent + m.HDescent + m.HLineGap),
	}, nil
}

// Measure returns the advance width and line height of s.
func (f *Face) Measure(s string) (width, height float32) {
	w, h := text.Measure(s, f.face, float64(f.lineHeight))
	return float32(w), float32(h)
}

// LineHeight is the distance between two baselines.
func (f *Face) LineHeight() float32 { return f.lineHeight }
