// internal/app/layout.go
package app

import "github.com/llehouerou/spectra/internal/ui/widget"

// Fixed extents of the window layout.
const (
	VisualizerWidth = 512
	SeekBarHeight   = 8
	VolumeBarWidth  = 120
	VolumeBarHeight = 20
	TimerHeight     = 27
)

// Layout holds the screen rectangle of every widget. The visualizer pane
// fills the left side above the seek bar, the playlist fills the right side,
// and the volume bar and timer share the strip below the playlist.
type Layout struct {
	Visualizer widget.Rect // tab strip and its content
	Playlist   widget.Rect
	Timer      widget.Rect
	Volume     widget.Rect
	Seek       widget.Rect // one pixel past both window edges, hiding the side borders
}

// NewLayout places the widgets in a window of the given size.
func NewLayout(width, height int) Layout {
	w, h := float32(width), float32(height)
	return Layout{
		Visualizer: rect(0, 0, VisualizerWidth, h-SeekBarHeight),
		Playlist:   rect(VisualizerWidth+1, 0, w-VisualizerWidth+1, h-32),
		Timer:      rect(VisualizerWidth+VolumeBarWidth+2, h-SeekBarHeight-TimerHeight, w-VisualizerWidth-VolumeBarWidth-1, TimerHeight),
		Volume:     rect(VisualizerWidth, h-30, VolumeBarWidth, VolumeBarHeight),
		Seek:       rect(-1, h-SeekBarHeight, w+2, SeekBarHeight),
	}
}

// Content returns the area below the visualizer tab strip.
func (l Layout) Content() widget.Rect {
	return widget.Rect{
		Pos:  l.Visualizer.Pos.Add(widget.Vec{Y: widget.TabHeight}),
		Size: l.Visualizer.Size.Sub(widget.Vec{Y: widget.TabHeight}),
	}
}

func rect(x, y, w, h float32) widget.Rect {
	return widget.Rect{Pos: widget.Vec{X: x, Y: y}, Size: widget.Vec{X: w, Y: h}}
}
