// internal/app/handler.go
package app

import (
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/llehouerou/spectra/internal/config"
	"github.com/llehouerou/spectra/internal/input"
	"github.com/llehouerou/spectra/internal/keymap"
	"github.com/llehouerou/spectra/internal/player"
	"github.com/llehouerou/spectra/internal/playlist"
	"github.com/llehouerou/spectra/internal/ui/styles"
	"github.com/llehouerou/spectra/internal/ui/widget"
)

// ErrNoMoreMusic is returned once every track of the playlist failed to open
// or was removed.
var ErrNoMoreMusic = errors.New("no more music")

// Tab indices of the visualizer pane.
const (
	TabSpectrum = iota
	TabPosition
)

// positionUnknown forces the next Tick to refresh the displays.
const positionUnknown = time.Duration(-1)

// Handler owns the widgets and routes window events to them and to the
// player. It is not safe for concurrent use: every method runs on the window
// loop.
type Handler struct {
	Playback PlaybackManager

	keys   *keymap.Resolver
	layout Layout

	playlist *widget.PlaylistView
	timer    *widget.Timer
	seek     *widget.ProgressBar
	volume   *widget.ProgressBar
	tabs     *widget.Container
	spectrum *widget.Spectrum
	pad      *widget.SoundPosition

	volumeStep   int
	bins         int
	lastPosition time.Duration
	quit         bool
}

// New builds the widget tree for a window of cfg.Window size. The queue must
// not be empty; call Start to open its current track.
func New(cfg *config.Config, theme *styles.Theme, face widget.Face, p player.Interface, q *playlist.PlayingQueue) *Handler {
	l := NewLayout(cfg.Window.Width, cfg.Window.Height)
	content := l.Content()

	h := &Handler{
		Playback:     NewPlaybackManager(p, q),
		keys:         keymap.NewResolver(keymap.Bindings),
		layout:       l,
		playlist:     widget.NewPlaylistView(l.Playlist.Size, l.Playlist.Pos, theme.Current, face),
		timer:        widget.NewTimer(l.Timer.Size, l.Timer.Pos, theme.Seek, face),
		seek:         widget.NewProgressBar(l.Seek.Size, l.Seek.Pos, theme.Seek, nil),
		volume:       widget.NewProgressBar(l.Volume.Size, l.Volume.Pos, theme.Volume, nil),
		tabs:         widget.NewContainer(l.Visualizer.Size, l.Visualizer.Pos, theme.Accent, face),
		spectrum:     widget.NewSpectrum(content.Size, content.Pos, theme.Spectrum, nil),
		pad:          widget.NewSoundPosition(content.Size, content.Pos, theme.Pad, face),
		volumeStep:   cfg.Volume.Step,
		bins:         cfg.Spectrum.Bins,
		lastPosition: positionUnknown,
	}

	h.playlist.SetName("playlist")
	h.timer.SetName("timer")
	h.seek.SetName("seek")
	h.volume.SetName("volume")
	h.tabs.SetName("visualizer")

	h.playlist.SetRows(q.Labels())
	h.volume.SetMaximum(100)
	h.volume.SetProgress(cfg.Volume.Initial)
	h.spectrum.SetScale(float32(cfg.Spectrum.Scale))
	h.pad.SetLimit(float32(cfg.SoundPosition.Limit))
	h.tabs.AddTab("Spectrum", h.spectrum)
	h.tabs.AddTab("3D position", h.pad)
	return h
}

// Start opens the current track of the queue.
func (h *Handler) Start() error {
	t := h.Playback.CurrentTrack()
	if t == nil {
		return ErrNoMoreMusic
	}
	return h.SetMusic(t.Path)
}

// SetMusic opens path and starts it. A track that fails to open is logged,
// removed from the queue and the view, and the track taking its place is
// tried instead. Once the queue is empty ErrNoMoreMusic is returned.
func (h *Handler) SetMusic(path string) error {
	if err := h.Playback.Play(path); err != nil {
		slog.Warn("open track failed", "path", path, "err", err)
		h.removeCurrent()
		t := h.Playback.CurrentTrack()
		if t == nil {
			return ErrNoMoreMusic
		}
		return h.SetMusic(t.Path)
	}

	h.playlist.SetCurrent(h.Playback.Queue().CurrentIndex())
	h.seek.SetMaximum(int(h.Playback.Duration().Milliseconds()))
	h.seek.SetProgress(0)
	h.timer.Update(0, h.Playback.Duration())
	h.Playback.SetVolumePercent(h.volume.Value())
	h.syncListener()
	h.lastPosition = positionUnknown
	slog.Debug("playing", "path", path, "index", h.Playback.Queue().CurrentIndex())
	return nil
}

// removeCurrent drops the current track from the queue and the view.
func (h *Handler) removeCurrent() {
	q := h.Playback.Queue()
	i := q.CurrentIndex()
	if q.RemoveCurrent() {
		h.playlist.RemoveRow(i)
	}
}

// Done reports whether the user asked to quit.
func (h *Handler) Done() bool { return h.quit }

// HandleEvent applies a single input event. The returned error is
// ErrNoMoreMusic when the event emptied the playlist.
func (h *Handler) HandleEvent(e input.Event) error {
	switch e.Kind {
	case input.KeyPress:
		if a := h.keys.Resolve(e.Key); a != "" && h.keys.Repeats(a) {
			return h.do(a)
		}
	case input.KeyRelease:
		if a := h.keys.Resolve(e.Key); a != "" && !h.keys.Repeats(a) {
			return h.do(a)
		}
	case input.MouseRelease:
		if e.Button == input.ButtonLeft {
			return h.click(widget.Vec{X: e.X, Y: e.Y})
		}
	case input.MouseMove:
		h.cursorMoved(widget.Vec{X: e.X, Y: e.Y})
	case input.Wheel:
		if h.playlist.Contains(widget.Vec{X: e.X, Y: e.Y}) {
			h.playlist.Scroll(-wheelRows(e.Delta))
		}
	}
	return nil
}

// wheelRows converts a wheel delta to whole rows, rounding away from zero
// so that small trackpad deltas still move the list.
func wheelRows(delta float64) int {
	switch {
	case delta > 0:
		return int(math.Ceil(delta))
	case delta < 0:
		return int(math.Floor(delta))
	default:
		return 0
	}
}

func (h *Handler) do(a keymap.Action) error {
	q := h.Playback.Queue()
	switch a {
	case keymap.ActionQuit:
		h.quit = true
	case keymap.ActionPrevTrack:
		return h.play(q.Prev())
	case keymap.ActionNextTrack:
		return h.play(q.Next())
	case keymap.ActionPlayPause:
		h.Playback.Toggle()
	case keymap.ActionVolumeUp:
		h.setVolume(h.volume.Value() + h.volumeStep)
	case keymap.ActionVolumeDown:
		h.setVolume(h.volume.Value() - h.volumeStep)
	case keymap.ActionToggleRepeat:
		slog.Debug("repeat toggled", "repeat", q.ToggleRepeat())
	case keymap.ActionRemoveTrack:
		h.removeCurrent()
		return h.play(q.Current())
	case keymap.ActionResetPosition:
		h.pad.Reset()
		h.syncListener()
	}
	return nil
}

func (h *Handler) play(t *playlist.Track) error {
	if t == nil {
		return ErrNoMoreMusic
	}
	return h.SetMusic(t.Path)
}

func (h *Handler) setVolume(percent int) {
	h.volume.SetProgress(percent)
	h.Playback.SetVolumePercent(h.volume.Value())
}

func (h *Handler) syncListener() {
	h.Playback.SetListener(h.pad.X(), h.pad.Y())
}

// click dispatches a left click to the first widget containing p: seek bar,
// volume bar, playlist, then the visualizer pane.
func (h *Handler) click(p widget.Vec) error {
	switch {
	case h.seek.Contains(p):
		h.seek.Click(p)
		h.Playback.SeekTo(time.Duration(h.seek.Value()) * time.Millisecond)
	case h.volume.Contains(p):
		h.volume.Click(p)
		h.Playback.SetVolumePercent(h.volume.Value())
	case h.playlist.Contains(p):
		before := h.playlist.Current()
		h.playlist.Click(p)
		if after := h.playlist.Current(); after != before {
			return h.play(h.Playback.Queue().JumpTo(after))
		}
	case h.tabs.Contains(p):
		h.tabs.Click(p)
		if h.tabs.Current() == TabPosition {
			h.syncListener()
		}
	}
	return nil
}

func (h *Handler) cursorMoved(p widget.Vec) {
	for _, w := range []widget.Widget{h.playlist, h.tabs} {
		if w.Contains(p) {
			w.CursorMoved(p)
		} else {
			w.MouseLeave()
		}
	}
}

// Tick polls the player once per frame. A track that reached its end is
// followed by the next one, or by itself when repeat is on. Otherwise the
// spectrum, timer and seek bar are refreshed whenever the position moved.
func (h *Handler) Tick() error {
	if !h.Playback.IsPlaying() {
		return h.play(h.Playback.Queue().Following())
	}

	pos := h.Playback.Position()
	if pos == h.lastPosition {
		return nil
	}
	h.lastPosition = pos

	if left, right, ok := h.Playback.Spectrum(h.bins); ok {
		h.spectrum.Update(left, right)
	}
	h.timer.Update(pos, h.Playback.Duration())
	h.seek.SetProgress(int(pos.Milliseconds()))
	return nil
}

// Render draws the widgets that changed since the previous call.
func (h *Handler) Render(c widget.Canvas) {
	h.playlist.Draw(c)
	h.volume.Draw(c)
	h.timer.Draw(c)
	h.tabs.Draw(c)
	h.seek.Draw(c)
}

// Invalidate forces every widget to be drawn by the next Render.
func (h *Handler) Invalidate() {
	for _, w := range []widget.Widget{h.playlist, h.volume, h.timer, h.tabs, h.seek} {
		w.Invalidate()
	}
}
