package widget

import "image/color"

// TabHeight is the height of the tab button strip.
const TabHeight = 25

type tab struct {
	button  *Button
	content Widget
}

// Container stacks several widgets behind a row of tab buttons. Exactly one
// tab is active: its button is pushed and only its content is drawn and
// receives clicks. Every tab content shares the same size.
type Container struct {
	base
	face    Face
	bounds  Rect
	accent  color.Color
	tabs    []tab
	current int
}

var _ Widget = (*Container)(nil)

// NewContainer creates a container without tabs. accent fills the button of
// the active tab.
func NewContainer(size, position Vec, accent color.Color, face Face) *Container {
	requireFace(face, "container")
	return &Container{
		face:   face,
		bounds: Rect{Pos: position, Size: size},
		accent: accent,
	}
}

// AddTab appends a tab. The container grows when content is larger than the
// current content area on either axis, and the resulting content size is
// applied to every tab.
func (c *Container) AddTab(label string, content Widget) {
	area := c.contentSize()
	want := content.Size()
	if want.X > area.X {
		area.X = want.X
	}
	if want.Y > area.Y {
		area.Y = want.Y
	}
	c.bounds.Size = Vec{area.X, area.Y + TabHeight}

	b := NewButton(Vec{area.X, TabHeight}, c.bounds.Pos, c.accent, c.face)
	b.SetLabel(label)
	if len(c.tabs) == 0 {
		b.SetPushed(true)
		c.current = 0
	}
	c.tabs = append(c.tabs, tab{button: b, content: content})
	c.layout()
}

func (c *Container) contentSize() Vec {
	return Vec{c.bounds.Size.X, max(c.bounds.Size.Y-TabHeight, 0)}
}

// layout spreads the buttons evenly along the strip and places every
// content below it.
func (c *Container) layout() {
	if len(c.tabs) == 0 {
		return
	}
	width := c.bounds.Size.X / float32(len(c.tabs))
	area := c.contentSize()
	origin := c.bounds.Pos.Add(Vec{0, TabHeight})
	for i, t := range c.tabs {
		t.button.SetSize(Vec{width, TabHeight})
		t.button.SetPosition(Vec{c.bounds.Pos.X + float32(i)*width, c.bounds.Pos.Y})
		t.content.SetPosition(origin)
		t.content.SetSize(area)
	}
	c.Invalidate()
}

// Tabs returns the number of tabs.
func (c *Container) Tabs() int { return len(c.tabs) }

// Current returns the index of the active tab.
func (c *Container) Current() int { return c.current }

// CurrentWidget returns the content of the active tab, or nil without tabs.
func (c *Container) CurrentWidget() Widget {
	if len(c.tabs) == 0 {
		return nil
	}
	return c.tabs[c.current].content
}

// Button returns the tab button at i.
func (c *Container) Button(i int) *Button { return c.tabs[i].button }

// Tab returns the content at i.
func (c *Container) Tab(i int) Widget { return c.tabs[i].content }

// SelectTab activates tab i. Selecting the active tab does nothing.
func (c *Container) SelectTab(i int) {
	if i < 0 || i >= len(c.tabs) || i == c.current {
		return
	}
	c.tabs[c.current].button.SetPushed(false)
	c.tabs[i].button.SetPushed(true)
	c.current = i
	c.tabs[i].content.Invalidate()
}

func (c *Container) NeedsRedraw() bool {
	if len(c.tabs) == 0 {
		return false
	}
	for _, t := range c.tabs {
		if t.button.NeedsRedraw() {
			return true
		}
	}
	return c.tabs[c.current].content.NeedsRedraw()
}

func (c *Container) Invalidate() {
	for _, t := range c.tabs {
		t.button.Invalidate()
		t.content.Invalidate()
	}
}

func (c *Container) Draw(cv Canvas) {
	if len(c.tabs) == 0 {
		return
	}
	for _, t := range c.tabs {
		t.button.Draw(cv)
	}
	c.tabs[c.current].content.Draw(cv)
}

func (c *Container) Contains(p Vec) bool { return c.bounds.Contains(p) }

// Click switches tabs when p is on the strip and forwards it to the active
// content otherwise.
func (c *Container) Click(p Vec) {
	if len(c.tabs) == 0 {
		return
	}
	if p.Y <= c.bounds.Pos.Y+TabHeight {
		for i, t := range c.tabs {
			if t.button.Contains(p) {
				c.SelectTab(i)
				return
			}
		}
		return
	}
	c.tabs[c.current].content.Click(p)
}

func (c *Container) CursorMoved(p Vec) {
	for _, t := range c.tabs {
		t.button.CursorMoved(p)
	}
	if w := c.CurrentWidget(); w != nil {
		if w.Contains(p) {
			w.CursorMoved(p)
		} else {
			w.MouseLeave()
		}
	}
}

func (c *Container) MouseLeave() {
	for _, t := range c.tabs {
		t.button.MouseLeave()
	}
	if w := c.CurrentWidget(); w != nil {
		w.MouseLeave()
	}
}

func (c *Container) Position() Vec { return c.bounds.Pos }

func (c *Container) SetPosition(p Vec) {
	if p == c.bounds.Pos {
		return
	}
	c.bounds.Pos = p
	c.layout()
}

func (c *Container) Size() Vec { return c.bounds.Size }

// SetSize resizes the container and every tab content. The request is
// rejected when any content cannot take the new content size.
func (c *Container) SetSize(size Vec) {
	if size == c.bounds.Size || !fitsBounds(size, c.MinSize(), Vec{}, false) {
		return
	}
	area := Vec{size.X, size.Y - TabHeight}
	for _, t := range c.tabs {
		hi, bounded := t.content.MaxSize()
		if !fitsBounds(area, t.content.MinSize(), hi, bounded) {
			return
		}
	}
	c.bounds.Size = size
	c.layout()
}

func (c *Container) MinSize() Vec { return Vec{40, TabHeight + 1} }
