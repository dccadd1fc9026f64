package widget

import "image/color"

const (
	buttonOutline    = 1
	buttonHoverDelta = 1
)

// Button is a labelled rectangle that toggles between pushed and released
// when clicked. Hovering thickens the outline and shrinks the fill by the
// same amount so the outer bounds never move.
type Button struct {
	base
	face   Face
	bounds Rect
	label  string
	accent color.Color

	fill      Rect
	thickness float32
	labelPos  Vec

	pushed  bool
	hovered bool
}

var _ Widget = (*Button)(nil)

// NewButton creates a released button. accent is the fill color used while
// the button is pushed.
func NewButton(size, position Vec, accent color.Color, face Face) *Button {
	requireFace(face, "button")
	b := &Button{
		face:   face,
		bounds: Rect{Pos: position, Size: size},
		accent: accent,
	}
	b.layout()
	return b
}

// layout derives the fill rectangle, the outline and the label position from
// the outer bounds and the hover state.
func (b *Button) layout() {
	inset := float32(buttonOutline)
	b.thickness = buttonOutline
	if b.hovered {
		inset += buttonHoverDelta
		b.thickness += buttonHoverDelta
	}
	b.fill = b.bounds.Inset(inset)
	b.placeLabel()
	b.dirty = true
}

func (b *Button) placeLabel() {
	w, h := b.face.Measure(b.label)
	b.labelPos = Vec{
		X: b.bounds.Pos.X + (b.bounds.Size.X-w)/2,
		Y: b.bounds.Pos.Y + (b.bounds.Size.Y-h)/2,
	}
}

// Label returns the button text.
func (b *Button) Label() string { return b.label }

// SetLabel changes the text. An unchanged label is not measured again.
func (b *Button) SetLabel(label string) {
	if label == b.label {
		return
	}
	b.label = label
	b.placeLabel()
	b.dirty = true
}

// Pushed reports whether the button is in its pushed state.
func (b *Button) Pushed() bool { return b.pushed }

// SetPushed forces the pushed state.
func (b *Button) SetPushed(pushed bool) {
	if b.pushed == pushed {
		return
	}
	b.pushed = pushed
	b.dirty = true
}

// Hovered reports whether the cursor is over the button.
func (b *Button) Hovered() bool { return b.hovered }

// FillRect returns the rectangle painted inside the outline.
func (b *Button) FillRect() Rect { return b.fill }

// OutlineThickness returns the current outline width.
func (b *Button) OutlineThickness() float32 { return b.thickness }

func (b *Button) Draw(c Canvas) {
	if !b.dirty {
		return
	}
	fill := color.Color(colorButtonIdle)
	if b.pushed {
		fill = b.accent
	}
	c.FillRect(b.bounds, colorBackground)
	c.FillRect(b.fill, fill)
	c.StrokeRect(b.fill, b.thickness, colorOutline)
	c.DrawText(b.label, b.labelPos, b.face, colorText)
	b.drawn()
}

func (b *Button) Contains(p Vec) bool { return b.bounds.Contains(p) }

func (b *Button) Click(p Vec) {
	if !b.Contains(p) {
		return
	}
	b.pushed = !b.pushed
	b.dirty = true
}

func (b *Button) CursorMoved(p Vec) {
	if !b.Contains(p) {
		b.MouseLeave()
		return
	}
	if b.hovered {
		return
	}
	b.hovered = true
	b.layout()
}

func (b *Button) MouseLeave() {
	if !b.hovered {
		return
	}
	b.hovered = false
	b.layout()
}

func (b *Button) Position() Vec { return b.bounds.Pos }

func (b *Button) SetPosition(p Vec) {
	if p == b.bounds.Pos {
		return
	}
	b.bounds.Pos = p
	b.layout()
}

func (b *Button) Size() Vec { return b.bounds.Size }

func (b *Button) SetSize(size Vec) {
	if size == b.bounds.Size || !fitsBounds(size, b.MinSize(), Vec{}, false) {
		return
	}
	b.bounds.Size = size
	b.layout()
}

func (b *Button) MinSize() Vec {
	m := float32(2 * (buttonOutline + buttonHoverDelta))
	return Vec{m, m}
}
