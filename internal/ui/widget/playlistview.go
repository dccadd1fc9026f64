package widget

import (
	"image/color"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/llehouerou/spectra/internal/ui/render"
)

const (
	// PlaylistRowHeight is the vertical distance between two rows.
	PlaylistRowHeight = 22

	playlistTextInset = 4
	playlistHoverMix  = 0.4
	ellipsis          = "…"
)

// PlaylistView shows the track labels as a scrolling list. The current row
// is painted with the accent color and the row under the cursor with a
// lighter shade of it. The view does not own the playlist: callers keep the
// current row in sync with their model.
type PlaylistView struct {
	base
	face   Face
	bounds Rect

	labels []string
	shown  []string

	current int
	scroll  int
	toDraw  int
	hover   int

	normal  color.Color
	accent  color.Color
	hovered color.Color
}

var _ Widget = (*PlaylistView)(nil)

// NewPlaylistView creates an empty view. accent colors the current row.
func NewPlaylistView(size, position Vec, accent color.Color, face Face) *PlaylistView {
	requireFace(face, "playlist")
	return &PlaylistView{
		base:    base{dirty: true},
		face:    face,
		bounds:  Rect{Pos: position, Size: size},
		hover:   -1,
		normal:  colorText,
		accent:  accent,
		hovered: lighten(accent, playlistHoverMix),
	}
}

// SetRows replaces every label and selects the first row.
func (v *PlaylistView) SetRows(labels []string) {
	v.labels = append(v.labels[:0], labels...)
	v.current = 0
	v.scroll = 0
	v.hover = -1
	v.layout()
}

// layout recomputes the visible row count and the displayed labels, which
// are stripped of characters the font cannot draw.
func (v *PlaylistView) layout() {
	v.toDraw = min(len(v.labels), int(v.bounds.Size.Y/PlaylistRowHeight))
	v.shown = v.shown[:0]
	avail := v.bounds.Size.X - 2*playlistTextInset
	for _, l := range v.labels {
		v.shown = append(v.shown, v.fit(render.Sanitize(l), avail))
	}
	v.scroll = min(v.scroll, v.maxScroll())
	v.dirty = true
}

// fit shortens s on grapheme cluster boundaries until it fits in width.
func (v *PlaylistView) fit(s string, width float32) string {
	if w, _ := v.face.Measure(s); w <= width {
		return s
	}
	var b strings.Builder
	out := ellipsis
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		b.WriteString(g.Str())
		candidate := b.String() + ellipsis
		if w, _ := v.face.Measure(candidate); w > width {
			break
		}
		out = candidate
	}
	return out
}

func (v *PlaylistView) maxScroll() int {
	return max(0, len(v.labels)-v.toDraw)
}

// Len returns the number of rows.
func (v *PlaylistView) Len() int { return len(v.labels) }

// Label returns the text displayed for row i.
func (v *PlaylistView) Label(i int) string {
	if i < 0 || i >= len(v.shown) {
		return ""
	}
	return v.shown[i]
}

// Current returns the highlighted row.
func (v *PlaylistView) Current() int { return v.current }

// ScrollOffset returns the index of the first visible row.
func (v *PlaylistView) ScrollOffset() int { return v.scroll }

// VisibleRows returns how many rows fit in the view.
func (v *PlaylistView) VisibleRows() int { return v.toDraw }

// HoverIndex returns the hovered row, or -1.
func (v *PlaylistView) HoverIndex() int { return v.hover }

// RowColor returns the color row i is drawn with.
func (v *PlaylistView) RowColor(i int) color.Color {
	switch i {
	case v.current:
		return v.accent
	case v.hover:
		return v.hovered
	default:
		return v.normal
	}
}

// SetCurrent highlights row i and scrolls so that it stays two rows away
// from the bottom edge, or at the top when it is above the window.
func (v *PlaylistView) SetCurrent(i int) {
	if !v.setCurrent(i) {
		return
	}
	switch {
	case v.current+2 >= v.toDraw+v.scroll:
		v.SetScroll(v.current + 2 - v.toDraw)
	case v.current < v.scroll:
		v.SetScroll(v.current)
	}
}

func (v *PlaylistView) setCurrent(i int) bool {
	if i < 0 || i >= len(v.labels) || i == v.current {
		return false
	}
	v.current = i
	if v.hover == i {
		v.hover = -1
	}
	v.dirty = true
	return true
}

// SetScroll makes row n the first visible one, clamped so the window never
// runs past the content.
func (v *PlaylistView) SetScroll(n int) {
	n = min(max(n, 0), v.maxScroll())
	if n == v.scroll {
		return
	}
	v.scroll = n
	v.dirty = true
}

// Scroll moves the window by delta rows.
func (v *PlaylistView) Scroll(delta int) { v.SetScroll(v.scroll + delta) }

// RowAt returns the row displayed at p, or false when p is above the view
// or below the last visible row.
func (v *PlaylistView) RowAt(p Vec) (int, bool) {
	if p.Y < v.bounds.Pos.Y {
		return 0, false
	}
	offset := int((p.Y - v.bounds.Pos.Y) / PlaylistRowHeight)
	row := offset + v.scroll
	if offset >= v.toDraw || row >= len(v.labels) {
		return 0, false
	}
	return row, true
}

// Select makes the row under p current without scrolling. It reports
// whether p hit a row.
func (v *PlaylistView) Select(p Vec) bool {
	row, ok := v.RowAt(p)
	if !ok {
		return false
	}
	v.clearHover()
	v.setCurrent(row)
	return true
}

// RemoveRow deletes row i. The current row keeps pointing at the same label
// when possible and is otherwise clamped to the new last row.
func (v *PlaylistView) RemoveRow(i int) {
	if i < 0 || i >= len(v.labels) {
		return
	}
	v.labels = append(v.labels[:i], v.labels[i+1:]...)
	switch {
	case len(v.labels) == 0:
		v.current = 0
	case i < v.current:
		v.current--
	case v.current >= len(v.labels):
		v.current = len(v.labels) - 1
	}
	v.hover = -1
	v.layout()
}

func (v *PlaylistView) clearHover() {
	if v.hover < 0 {
		return
	}
	v.hover = -1
	v.dirty = true
}

func (v *PlaylistView) Draw(c Canvas) {
	if !v.dirty {
		return
	}
	border := Rect{Pos: v.bounds.Pos.Add(Vec{1, 0}), Size: v.bounds.Size}
	c.FillRect(border, colorBackground)
	c.StrokeRect(border, 1, colorOutline)
	end := min(v.scroll+v.toDraw, len(v.shown))
	for i := v.scroll; i < end; i++ {
		pos := Vec{
			X: v.bounds.Pos.X + playlistTextInset,
			Y: v.bounds.Pos.Y + float32((i-v.scroll)*PlaylistRowHeight),
		}
		c.DrawText(v.shown[i], pos, v.face, v.RowColor(i))
	}
	v.drawn()
}

func (v *PlaylistView) Contains(p Vec) bool { return v.bounds.Contains(p) }
func (v *PlaylistView) Click(p Vec) { v.Select(p) }

// CursorMoved highlights the row under p. The current row is never drawn
// with the hover color.
func (v *PlaylistView) CursorMoved(p Vec) {
	if !v.Contains(p) {
		v.MouseLeave()
		return
	}
	row, ok := v.RowAt(p)
	if !ok || row == v.current {
		v.clearHover()
		return
	}
	if row == v.hover {
		return
	}
	v.hover = row
	v.dirty = true
}

func (v *PlaylistView) MouseLeave() { v.clearHover() }
func (v *PlaylistView) Position() Vec { return v.bounds.Pos }

func (v *PlaylistView) SetPosition(p Vec) {
	if p == v.bounds.Pos {
		return
	}
	v.bounds.Pos = p
	v.dirty = true
}

func (v *PlaylistView) Size() Vec { return v.bounds.Size }

func (v *PlaylistView) SetSize(size Vec) {
	if size == v.bounds.Size || !fitsBounds(size, v.MinSize(), Vec{}, false) {
		return
	}
	v.bounds.Size = size
	v.layout()
}

func (v *PlaylistView) MinSize() Vec {
	return Vec{2*playlistTextInset + 1, PlaylistRowHeight}
}
