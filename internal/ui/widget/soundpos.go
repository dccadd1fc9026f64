package widget

import (
	"fmt"
	"image/color"
	"math"
)

const (
	// DefaultSoundLimit is the coordinate reached on the edge of the pad.
	DefaultSoundLimit = 30

	soundCenterRadius = 6
	soundCrossArm     = 4.5
	soundCrossWidth   = 2
	soundLabelGap     = 21
)

// SoundPosition is a top-down view of the listening plane. A click inside the
// circle moves the cross there and maps the offset from the center into
// [-limit, limit] on both axes: x grows to the right and y grows upward,
// against the screen axis. The coordinates place the listener, so the sound
// itself is heard from the mirrored side.
type SoundPosition struct {
	base
	face   Face
	bounds Rect
	color  color.Color
	radius float32
	limit  float32

	x, y   float32
	cross  Vec
	labelX string
	labelY string
}

var _ Widget = (*SoundPosition)(nil)

func NewSoundPosition(size, position Vec, col color.Color, face Face) *SoundPosition {
	requireFace(face, "sound position")
	s := &SoundPosition{
		face:   face,
		bounds: Rect{Pos: position, Size: size},
		color:  col,
		limit:  DefaultSoundLimit,
	}
	s.layout()
	s.setLabels()
	return s
}

// X returns the horizontal listener coordinate.
func (s *SoundPosition) X() float32 { return s.x }

// Y returns the depth listener coordinate.
func (s *SoundPosition) Y() float32 { return s.y }

// Limit returns the coordinate reached on the circle edge.
func (s *SoundPosition) Limit() float32 { return s.limit }

// SetLimit changes the coordinate range. The cross stays where it is on
// screen and the coordinates are rescaled.
func (s *SoundPosition) SetLimit(limit float32) {
	if limit <= 0 || limit == s.limit {
		return
	}
	s.x = s.x * limit / s.limit
	s.y = s.y * limit / s.limit
	s.limit = limit
	s.setLabels()
}

// Cross returns the screen position of the cross marker.
func (s *SoundPosition) Cross() Vec { return s.cross }

// Radius returns the radius of the pad circle.
func (s *SoundPosition) Radius() float32 { return s.radius }

// Labels returns the two coordinate captions.
func (s *SoundPosition) Labels() (string, string) { return s.labelX, s.labelY }

// Reset puts the cross back in the center.
func (s *SoundPosition) Reset() {
	s.x, s.y = 0, 0
	s.cross = s.bounds.Center()
	s.setLabels()
}

func (s *SoundPosition) setLabels() {
	s.labelX = fmt.Sprintf("x: %v", s.x)
	s.labelY = fmt.Sprintf("y: %v", s.y)
	s.dirty = true
}

// layout derives the radius from the bounds and places the cross from the
// current coordinates.
func (s *SoundPosition) layout() {
	s.radius = min(s.bounds.Size.X, s.bounds.Size.Y)/2 - 2
	c := s.bounds.Center()
	s.cross = Vec{
		X: c.X + s.x*s.radius/s.limit,
		Y: c.Y - s.y*s.radius/s.limit,
	}
	s.dirty = true
}

func (s *SoundPosition) Draw(c Canvas) {
	if !s.dirty {
		return
	}
	center := s.bounds.Center()
	c.FillRect(s.bounds, colorBackground)
	c.FillCircle(center, s.radius, colorBackground)
	c.StrokeCircle(center, s.radius, 1, colorOutline)
	c.DrawText(s.labelX, s.bounds.Pos.Add(Vec{1, 0}), s.face, colorText)
	c.DrawText(s.labelY, s.bounds.Pos.Add(Vec{1, soundLabelGap}), s.face, colorText)
	c.FillCircle(center, soundCenterRadius, s.color)
	arm := Vec{soundCrossArm, soundCrossArm}
	c.StrokeLine(s.cross.Sub(arm), s.cross.Add(arm), soundCrossWidth, colorCross)
	arm.Y = -arm.Y
	c.StrokeLine(s.cross.Sub(arm), s.cross.Add(arm), soundCrossWidth, colorCross)
	s.drawn()
}

func (s *SoundPosition) Contains(p Vec) bool { return s.bounds.Contains(p) }

// Click moves the cross to p when p lies within the circle.
func (s *SoundPosition) Click(p Vec) {
	c := s.bounds.Center()
	dx := c.X - p.X
	dy := c.Y - p.Y
	if s.radius <= 0 || math.Hypot(float64(dx), float64(dy)) > float64(s.radius) {
		return
	}
	s.x = (p.X - c.X) * s.limit / s.radius
	s.y = dy * s.limit / s.radius
	s.cross = p
	s.setLabels()
}

func (s *SoundPosition) Position() Vec { return s.bounds.Pos }

func (s *SoundPosition) SetPosition(p Vec) {
	if p == s.bounds.Pos {
		return
	}
	s.bounds.Pos = p
	s.layout()
}

func (s *SoundPosition) Size() Vec { return s.bounds.Size }

func (s *SoundPosition) SetSize(size Vec) {
	if size == s.bounds.Size || !fitsBounds(size, s.MinSize(), Vec{}, false) {
		return
	}
	s.bounds.Size = size
	s.layout()
}

func (s *SoundPosition) MinSize() Vec { return Vec{20, 20} }
