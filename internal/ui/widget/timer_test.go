package widget_test

import (
	"testing"
	"time"

	"github.com/llehouerou/spectra/internal/ui/testutil"
	"github.com/llehouerou/spectra/internal/ui/widget"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		position int64
		length   int64
		want     string
	}{
		{0, 0, "00:00 / 00:00"},
		{999, 1000, "00:00 / 00:01"},
		{61_000, 3_723_000, "01:01 / 62:03"},
		{59_999, 60_000, "00:59 / 01:00"},
	}

	for _, tt := range tests {
		if got := widget.FormatClock(tt.position, tt.length); got != tt.want {
			t.Errorf("FormatClock(%d, %d) = %q, want %q", tt.position, tt.length, got, tt.want)
		}
	}
}

func TestTimer_UpdateOnlyWhenTextChanges(t *testing.T) {
	f := testutil.NewFace()
	tm := widget.NewTimer(widget.Vec{X: 166, Y: 27}, widget.Vec{X: 634, Y: 566}, accent, f)
	tm.Update(1500*time.Millisecond, 3*time.Minute)
	var c testutil.Canvas
	tm.Draw(&c)
	measured := f.Measured

	tm.Update(1900*time.Millisecond, 3*time.Minute)
	if f.Measured != measured {
		t.Errorf("same text measured again: %d calls, want %d", f.Measured, measured)
	}
	if tm.NeedsRedraw() {
		t.Error("same text marked the timer dirty")
	}

	tm.Update(2*time.Second, 3*time.Minute)
	if tm.Text() != "00:02 / 03:00" {
		t.Errorf("Text() = %q", tm.Text())
	}
	if !tm.NeedsRedraw() {
		t.Error("new text did not mark the timer dirty")
	}
}

func TestTimer_CentersText(t *testing.T) {
	f := testutil.NewFace()
	tm := widget.NewTimer(widget.Vec{X: 201, Y: 30}, widget.Vec{X: 100, Y: 10}, accent, f)
	tm.Update(0, time.Minute)

	var c testutil.Canvas
	tm.Draw(&c)
	var text *testutil.Op
	for i := range c.Ops {
		if c.Ops[i].Kind == "text" {
			text = &c.Ops[i]
		}
	}
	if text == nil {
		t.Fatal("timer drew no text")
	}
	// 13 cells of 8px centered in 200 usable pixels.
	if text.From.X != 100+(200-104)/2 {
		t.Errorf("text x = %v, want %v", text.From.X, 100+(200-104)/2)
	}
	if text.Text != "00:00 / 01:00" {
		t.Errorf("text = %q", text.Text)
	}
}
