package widget

import (
	"fmt"
	"image/color"
	"time"
)

// Timer displays "MM:SS / MM:SS" centered in its box.
type Timer struct {
	base
	face    Face
	bounds  Rect
	color   color.Color
	text    string
	textPos Vec
}

var _ Widget = (*Timer)(nil)

func NewTimer(size, position Vec, col color.Color, face Face) *Timer {
	requireFace(face, "timer")
	t := &Timer{
		face:   face,
		bounds: Rect{Pos: position, Size: size},
		color:  col,
		text:   FormatClock(0, 0),
	}
	t.place()
	return t
}

// FormatClock renders a position and a length, both in milliseconds.
func FormatClock(position, length int64) string {
	return fmt.Sprintf("%02d:%02d / %02d:%02d",
		position/1000/60, position/1000%60, length/1000/60, length/1000%60)
}

// Text returns the string currently displayed.
func (t *Timer) Text() string { return t.text }

// Update sets the displayed position and length. The text is measured again
// only when the formatted string differs from the previous one.
func (t *Timer) Update(position, length time.Duration) {
	s := FormatClock(position.Milliseconds(), length.Milliseconds())
	if s == t.text {
		return
	}
	t.text = s
	t.place()
}

func (t *Timer) place() {
	w, h := t.face.Measure(t.text)
	t.textPos = Vec{
		X: t.bounds.Pos.X + (t.bounds.Size.X-1-w)/2,
		Y: t.bounds.Pos.Y + (t.bounds.Size.Y-h)/2,
	}
	t.dirty = true
}

func (t *Timer) Draw(c Canvas) {
	if !t.dirty {
		return
	}
	c.FillRect(t.bounds, colorBackground)
	c.StrokeRect(t.bounds, 1, colorOutline)
	c.DrawText(t.text, t.textPos, t.face, t.color)
	t.drawn()
}

func (t *Timer) Contains(p Vec) bool { return t.bounds.Contains(p) }
func (t *Timer) Click(_ Vec) {}
func (t *Timer) Position() Vec { return t.bounds.Pos }

func (t *Timer) SetPosition(p Vec) {
	if p == t.bounds.Pos {
		return
	}
	t.bounds.Pos = p
	t.place()
}

func (t *Timer) Size() Vec { return t.bounds.Size }

func (t *Timer) SetSize(size Vec) {
	if size == t.bounds.Size || !fitsBounds(size, t.MinSize(), Vec{}, false) {
		return
	}
	t.bounds.Size = size
	t.place()
}

func (t *Timer) MinSize() Vec {
	w, h := t.face.Measure("00:00 / 00:00")
	return Vec{w, h}
}
