package widget_test

import (
	"testing"

	"github.com/llehouerou/spectra/internal/ui/testutil"
	"github.com/llehouerou/spectra/internal/ui/widget"
)

// newPad returns a 200x200 pad at the origin: center (100, 100), radius 98.
func newPad() *widget.SoundPosition {
	return widget.NewSoundPosition(widget.Vec{X: 200, Y: 200}, widget.Vec{}, accent, testutil.NewFace())
}

func TestSoundPosition_Click(t *testing.T) {
	tests := []struct {
		name  string
		point widget.Vec
		wantX float32
		wantY float32
	}{
		{name: "center", point: widget.Vec{X: 100, Y: 100}, wantX: 0, wantY: 0},
		{name: "right", point: widget.Vec{X: 149, Y: 100}, wantX: 15, wantY: 0},
		{name: "left", point: widget.Vec{X: 51, Y: 100}, wantX: -15, wantY: 0},
		{name: "up", point: widget.Vec{X: 100, Y: 51}, wantX: 0, wantY: 15},
		{name: "down edge", point: widget.Vec{X: 100, Y: 198}, wantX: 0, wantY: -30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newPad()
			s.Click(tt.point)
			if s.X() != tt.wantX || s.Y() != tt.wantY {
				t.Errorf("Click(%+v) = (%v, %v), want (%v, %v)", tt.point, s.X(), s.Y(), tt.wantX, tt.wantY)
			}
			if s.Cross() != tt.point {
				t.Errorf("Cross() = %+v, want %+v", s.Cross(), tt.point)
			}
		})
	}
}

func TestSoundPosition_ClickOutsideCircle(t *testing.T) {
	s := newPad()
	s.Click(widget.Vec{X: 149, Y: 100})
	s.Click(widget.Vec{X: 199, Y: 199})
	if s.X() != 15 || s.Y() != 0 {
		t.Errorf("click outside the circle moved the listener to (%v, %v)", s.X(), s.Y())
	}
}

func TestSoundPosition_Labels(t *testing.T) {
	s := newPad()
	x, y := s.Labels()
	if x != "x: 0" || y != "y: 0" {
		t.Errorf("initial labels = %q, %q", x, y)
	}

	s.Click(widget.Vec{X: 149, Y: 51})
	x, y = s.Labels()
	if x != "x: 15" || y != "y: 15" {
		t.Errorf("labels = %q, %q", x, y)
	}

	var c testutil.Canvas
	s.Draw(&c)
	texts := c.Texts()
	if len(texts) != 2 || texts[0] != "x: 15" || texts[1] != "y: 15" {
		t.Errorf("drawn texts = %v", texts)
	}
}

func TestSoundPosition_Reset(t *testing.T) {
	s := newPad()
	s.Click(widget.Vec{X: 149, Y: 51})
	var c testutil.Canvas
	s.Draw(&c)

	s.Reset()
	if s.X() != 0 || s.Y() != 0 {
		t.Errorf("after Reset = (%v, %v)", s.X(), s.Y())
	}
	if s.Cross() != (widget.Vec{X: 100, Y: 100}) {
		t.Errorf("Cross() = %+v, want center", s.Cross())
	}
	if !s.NeedsRedraw() {
		t.Error("Reset did not mark the pad dirty")
	}
}

func TestSoundPosition_MoveKeepsCoordinates(t *testing.T) {
	s := newPad()
	s.Click(widget.Vec{X: 149, Y: 100})
	s.SetPosition(widget.Vec{X: 10, Y: 10})

	if s.X() != 15 {
		t.Errorf("X() = %v after move, want 15", s.X())
	}
	if s.Cross() != (widget.Vec{X: 159, Y: 110}) {
		t.Errorf("Cross() = %+v, want {159 110}", s.Cross())
	}
}

func TestSoundPosition_SetSizeBelowMinimum(t *testing.T) {
	s := newPad()
	s.SetSize(widget.Vec{X: 10, Y: 300})
	if s.Size() != (widget.Vec{X: 200, Y: 200}) {
		t.Errorf("Size() = %+v, want unchanged", s.Size())
	}
}
