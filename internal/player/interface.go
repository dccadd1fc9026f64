// internal/player/interface.go
package player

import (
	"errors"
	"time"
)

var (
	// ErrNoTrack is returned by Spectrum when nothing is loaded.
	ErrNoTrack = errors.New("no track loaded")
	// ErrNoChannel is returned by Spectrum for a channel the track lacks.
	ErrNoChannel = errors.New("channel not present in track")
)

// Interface defines the player contract for dependency injection and testing.
type Interface interface {
	Play(path string) error
	Stop()
	Pause()
	Resume()
	Toggle()
	State() State
	// IsPlaying reports whether a track is loaded and has not reached its
	// end. A paused track is still playing.
	IsPlaying() bool
	Position() time.Duration
	Duration() time.Duration
	SeekTo(pos time.Duration)
	SetVolume(level float64)
	Volume() float64
	SetListenerPosition(x, y float32)
	// Spectrum returns bins magnitudes for channel (0 left, 1 right) of the
	// audio played most recently.
	Spectrum(channel, bins int) ([]float32, error)
	Channels() int
}

// Verify Player implements Interface at compile time.
var _ Interface = (*Player)(nil)
