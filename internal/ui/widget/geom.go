package widget

// Vec is a point or an extent in screen pixels.
type Vec struct {
	X, Y float32
}

// Add returns v+o.
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o.
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	Pos  Vec
	Size Vec
}

// Contains reports whether p lies inside r. Both edges are inclusive.
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.Pos.X && p.X <= r.Pos.X+r.Size.X &&
		p.Y >= r.Pos.Y && p.Y <= r.Pos.Y+r.Size.Y
}

// Inset shrinks r by d on every side.
func (r Rect) Inset(d float32) Rect {
	return Rect{
		Pos:  Vec{r.Pos.X + d, r.Pos.Y + d},
		Size: Vec{r.Size.X - 2*d, r.Size.Y - 2*d},
	}
}

// Center returns the middle point of r.
func (r Rect) Center() Vec {
	return Vec{r.Pos.X + r.Size.X/2, r.Pos.Y + r.Size.Y/2}
}

// fitsBounds reports whether size lies within [lo, hi] on both axes.
// An unbounded maximum only checks the lower bound.
func fitsBounds(size, lo, hi Vec, bounded bool) bool {
	if size.X < lo.X || size.Y < lo.Y {
		return false
	}
	if bounded && (size.X > hi.X || size.Y > hi.Y) {
		return false
	}
	return true
}
