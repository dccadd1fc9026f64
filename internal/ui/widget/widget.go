// Package widget implements the retained-mode widgets that make up the player
// window: buttons, progress bars, the timer, the spectrum display, the 3D
// sound position pad, the playlist view and the tab container.
//
// Widgets keep their own geometry in absolute screen coordinates and a dirty
// flag. Every mutation that changes what is on screen marks the widget dirty;
// Draw emits primitives only when the flag is set and then clears it, so an
// unchanged widget costs nothing per frame.
package widget

import "image/color"

// Canvas is the drawing surface widgets render onto.
type Canvas interface {
	FillRect(r Rect, c color.Color)
	StrokeRect(r Rect, thickness float32, c color.Color)
	FillCircle(center Vec, radius float32, c color.Color)
	StrokeCircle(center Vec, radius, thickness float32, c color.Color)
	StrokeLine(from, to Vec, thickness float32, c color.Color)
	DrawText(s string, pos Vec, face Face, c color.Color)
}

// Face is a loaded font at a fixed size. A single Face is shared by every
// text-bearing widget and owned by the application.
type Face interface {
	// Measure returns the rendered width and height of s.
	Measure(s string) (width, height float32)
	// LineHeight is the distance between two baselines.
	LineHeight() float32
}

// Widget is the capability contract every visual element implements.
type Widget interface {
	// Draw renders the widget if it needs a redraw and clears the flag.
	Draw(c Canvas)
	// Contains reports whether p is within the widget bounds, edges included.
	Contains(p Vec) bool
	Click(p Vec)
	CursorMoved(p Vec)
	MouseLeave()

	Position() Vec
	SetPosition(p Vec)
	Size() Vec
	// SetSize is a no-op when size falls outside [MinSize, MaxSize].
	SetSize(size Vec)
	MinSize() Vec
	// MaxSize returns false when the widget can grow without limit.
	MaxSize() (Vec, bool)

	Name() string
	SetName(name string)

	NeedsRedraw() bool
	// Invalidate forces the next Draw to render.
	Invalidate()
}

// base holds the state shared by all widgets.
type base struct {
	name  string
	dirty bool
}

func (b *base) Name() string { return b.name }
func (b *base) SetName(name string) { b.name = name }
func (b *base) NeedsRedraw() bool { return b.dirty }
func (b *base) Invalidate() { b.dirty = true }
func (b *base) MaxSize() (Vec, bool) { return Vec{}, false }
func (b *base) CursorMoved(_ Vec) {}
func (b *base) MouseLeave() {}
func (b *base) drawn() { b.dirty = false }

func requireFace(f Face, kind string) {
	if f == nil {
		panic("widget: " + kind + " requires a font face")
	}
}
