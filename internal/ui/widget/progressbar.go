package widget

import "image/color"

// ProgressBar shows a domain value (milliseconds, volume percent...) as a
// filled track. value is the filled width in pixels; realValue is the last
// domain value that changed it.
type ProgressBar struct {
	base
	bounds    Rect
	fill      color.Color
	maximum   int
	value     int
	realValue int
}

var _ Widget = (*ProgressBar)(nil)

// NewProgressBar creates an empty bar with a maximum of 1.
func NewProgressBar(size, position Vec, fill color.Color, _ Face) *ProgressBar {
	return &ProgressBar{
		base:    base{dirty: true},
		bounds:  Rect{Pos: position, Size: size},
		fill:    fill,
		maximum: 1,
	}
}

// Maximum returns the domain value of a full track.
func (p *ProgressBar) Maximum() int { return p.maximum }

// SetMaximum changes the domain range and re-derives the filled width.
func (p *ProgressBar) SetMaximum(maximum int) {
	if maximum < 0 {
		maximum = 0
	}
	p.maximum = maximum
	p.value = -1
	p.SetProgress(p.realValue)
}

// Value returns the domain value currently displayed.
func (p *ProgressBar) Value() int { return p.realValue }

// PixelValue returns the filled width in pixels.
func (p *ProgressBar) PixelValue() int { return max(p.value, 0) }

// SetProgress clamps v to [0, maximum] and updates the fill. Nothing changes
// when the filled width would stay the same or when the maximum is zero.
func (p *ProgressBar) SetProgress(v int) {
	if p.maximum == 0 {
		return
	}
	v = min(max(v, 0), p.maximum)
	pixels := v * int(p.bounds.Size.X) / p.maximum
	if pixels == p.value {
		return
	}
	p.value = pixels
	p.realValue = v
	p.dirty = true
}

func (p *ProgressBar) Draw(c Canvas) {
	if !p.dirty {
		return
	}
	border := Rect{
		Pos:  p.bounds.Pos.Sub(Vec{1, 1}),
		Size: p.bounds.Size.Add(Vec{1, 1}),
	}
	c.FillRect(border, colorBackground)
	c.StrokeRect(border, 1, colorOutline)
	if v := p.PixelValue(); v > 0 {
		c.FillRect(Rect{Pos: p.bounds.Pos, Size: Vec{float32(v), p.bounds.Size.Y}}, p.fill)
	}
	p.drawn()
}

func (p *ProgressBar) Contains(pt Vec) bool { return p.bounds.Contains(pt) }

// Click converts the horizontal offset into the track to a domain value.
func (p *ProgressBar) Click(pt Vec) {
	width := p.bounds.Size.X
	if p.maximum == 0 || width <= 0 {
		return
	}
	fraction := (pt.X - p.bounds.Pos.X) / width
	p.SetProgress(int(fraction * float32(p.maximum)))
}

func (p *ProgressBar) Position() Vec { return p.bounds.Pos }

func (p *ProgressBar) SetPosition(pt Vec) {
	if pt == p.bounds.Pos {
		return
	}
	p.bounds.Pos = pt
	p.dirty = true
}

func (p *ProgressBar) Size() Vec { return p.bounds.Size }

func (p *ProgressBar) SetSize(size Vec) {
	if size == p.bounds.Size || !fitsBounds(size, p.MinSize(), Vec{}, false) {
		return
	}
	p.bounds.Size = size
	p.value = -1
	p.SetProgress(p.realValue)
	p.dirty = true
}

func (p *ProgressBar) MinSize() Vec { return Vec{1, 1} }
