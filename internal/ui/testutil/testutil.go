// Package testutil provides common testing utilities for UI components.
package testutil

import (
	"image/color"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"

	"github.com/llehouerou/spectra/internal/ui/widget"
)

// StripANSI removes ANSI escape codes from a string for easier testing.
// This allows comparing rendered output without style interference.
func StripANSI(s string) string {
	re := regexp.MustCompile(`\x1b\[[0-9;]*m`)
	return re.ReplaceAllString(s, "")
}

// MeasureWidth returns the visual width of a string, accounting for
// wide characters (CJK, emoji) and stripping ANSI codes.
func MeasureWidth(s string) int {
	return lipgloss.Width(StripANSI(s))
}

// ContainsLine checks if any line in the output contains the given substring.
func ContainsLine(output, substr string) bool {
	for line := range strings.SplitSeq(output, "\n") {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

// Op is one primitive recorded by a Canvas.
type Op struct {
	Kind      string // fill_rect, stroke_rect, fill_circle, stroke_circle, line, text
	Rect      widget.Rect
	From, To  widget.Vec
	Radius    float32
	Thickness float32
	Text      string
	Color     color.Color
}

// Canvas records every primitive drawn on it.
type Canvas struct {
	Ops []Op
}

var _ widget.Canvas = (*Canvas)(nil)

// Reset drops the recorded primitives.
func (c *Canvas) Reset() { c.Ops = c.Ops[:0] }

// Count returns the number of recorded primitives of the given kind, or of
// every kind when kind is empty.
func (c *Canvas) Count(kind string) int {
	if kind == "" {
		return len(c.Ops)
	}
	n := 0
	for _, op := range c.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Texts returns the strings drawn, in order.
func (c *Canvas) Texts() []string {
	var out []string
	for _, op := range c.Ops {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

func (c *Canvas) FillRect(r widget.Rect, col color.Color) {
	c.Ops = append(c.Ops, Op{Kind: "fill_rect", Rect: r, Color: col})
}

func (c *Canvas) StrokeRect(r widget.Rect, thickness float32, col color.Color) {
	c.Ops = append(c.Ops, Op{Kind: "stroke_rect", Rect: r, Thickness: thickness, Color: col})
}

func (c *Canvas) FillCircle(center widget.Vec, radius float32, col color.Color) {
	c.Ops = append(c.Ops, Op{Kind: "fill_circle", From: center, Radius: radius, Color: col})
}

func (c *Canvas) StrokeCircle(center widget.Vec, radius, thickness float32, col color.Color) {
	c.Ops = append(c.Ops, Op{Kind: "stroke_circle", From: center, Radius: radius, Thickness: thickness, Color: col})
}

func (c *Canvas) StrokeLine(from, to widget.Vec, thickness float32, col color.Color) {
	c.Ops = append(c.Ops, Op{Kind: "line", From: from, To: to, Thickness: thickness, Color: col})
}

func (c *Canvas) DrawText(s string, pos widget.Vec, _ widget.Face, col color.Color) {
	c.Ops = append(c.Ops, Op{Kind: "text", From: pos, Text: s, Color: col})
}

// Face is a monospace face: every grapheme cluster is CharWidth wide and
// every line is Height tall. It counts Measure calls.
type Face struct {
	CharWidth float32
	Height    float32
	Measured  int
}

var _ widget.Face = (*Face)(nil)

// NewFace returns a face with 8x16 cells.
func NewFace() *Face {
	return &Face{CharWidth: 8, Height: 16}
}

func (f *Face) Measure(s string) (float32, float32) {
	f.Measured++
	return float32(uniseg.GraphemeClusterCount(s)) * f.CharWidth, f.Height
}

func (f *Face) LineHeight() float32 { return f.Height }
