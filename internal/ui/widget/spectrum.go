package widget

import "image/color"

const (
	// SpectrumBars is the number of one-pixel bars in a Spectrum.
	SpectrumBars = 512
	// DefaultSpectrumScale maps backend magnitudes to bar heights.
	DefaultSpectrumScale = -15
)

// Spectrum draws frequency magnitudes as thin vertical bars growing up from
// the bottom edge. The left channel fills bars from the left, the right
// channel fills them from the right, so a stereo signal shows as two mirrored
// halves meeting in the middle.
type Spectrum struct {
	base
	bounds  Rect
	color   color.Color
	scale   float32
	heights [SpectrumBars]float32
}

var _ Widget = (*Spectrum)(nil)

func NewSpectrum(size, position Vec, col color.Color, _ Face) *Spectrum {
	return &Spectrum{
		base:   base{dirty: true},
		bounds: Rect{Pos: position, Size: size},
		color:  col,
		scale:  DefaultSpectrumScale,
	}
}

// SetScale changes the factor applied to magnitudes before clamping.
func (s *Spectrum) SetScale(scale float32) { s.scale = scale }

// BarHeight returns the signed height of bar i. Bars grow upward, so heights
// are zero or negative.
func (s *Spectrum) BarHeight(i int) float32 {
	if i < 0 || i >= SpectrumBars {
		return 0
	}
	return s.heights[i]
}

// Update maps magnitudes to bar heights. left[i] drives bar i, right[i] drives
// bar SpectrumBars-1-i; extra bins are ignored.
func (s *Spectrum) Update(left, right []float32) {
	track := s.bounds.Size.Y
	for i, m := range left {
		if i >= SpectrumBars {
			break
		}
		s.heights[i] = track * s.level(m)
	}
	for i, m := range right {
		if i >= SpectrumBars {
			break
		}
		s.heights[SpectrumBars-1-i] = track * s.level(m)
	}
	s.dirty = true
}

func (s *Spectrum) level(m float32) float32 {
	return min(max(m*s.scale, -1), 0)
}

func (s *Spectrum) Draw(c Canvas) {
	if !s.dirty {
		return
	}
	c.FillRect(s.bounds, colorBackground)
	baseline := s.bounds.Pos.Y + s.bounds.Size.Y
	limit := min(SpectrumBars, int(s.bounds.Size.X))
	for i := range limit {
		h := s.heights[i]
		if h == 0 {
			continue
		}
		c.FillRect(Rect{
			Pos:  Vec{s.bounds.Pos.X + float32(i), baseline + h},
			Size: Vec{1, -h},
		}, s.color)
	}
	s.drawn()
}

func (s *Spectrum) Contains(p Vec) bool { return s.bounds.Contains(p) }
func (s *Spectrum) Click(_ Vec) {}
func (s *Spectrum) Position() Vec { return s.bounds.Pos }

func (s *Spectrum) SetPosition(p Vec) {
	if p == s.bounds.Pos {
		return
	}
	s.bounds.Pos = p
	s.dirty = true
}

func (s *Spectrum) Size() Vec { return s.bounds.Size }

func (s *Spectrum) SetSize(size Vec) {
	if size == s.bounds.Size || !fitsBounds(size, s.MinSize(), Vec{}, false) {
		return
	}
	if size.Y != s.bounds.Size.Y && s.bounds.Size.Y > 0 {
		ratio := size.Y / s.bounds.Size.Y
		for i := range s.heights {
			s.heights[i] *= ratio
		}
	}
	s.bounds.Size = size
	s.dirty = true
}

func (s *Spectrum) MinSize() Vec { return Vec{1, 1} }
