// internal/app/playback_manager.go
package app

import (
	"time"

	"github.com/llehouerou/spectra/internal/player"
	"github.com/llehouerou/spectra/internal/playlist"
)

// PlaybackManager pairs the audio backend with the playing queue.
type PlaybackManager struct {
	player player.Interface
	queue  *playlist.PlayingQueue
}

// NewPlaybackManager creates a new PlaybackManager.
func NewPlaybackManager(p player.Interface, q *playlist.PlayingQueue) PlaybackManager {
	return PlaybackManager{player: p, queue: q}
}

// --- Player Access ---

// Player returns the player interface for direct access.
func (p *PlaybackManager) Player() player.Interface {
	return p.player
}

// Queue returns the playing queue for direct access.
func (p *PlaybackManager) Queue() *playlist.PlayingQueue {
	return p.queue
}

// --- Player State ---

// IsPlaying reports whether a track is loaded and has not reached its end.
// A paused track counts as playing.
func (p *PlaybackManager) IsPlaying() bool {
	return p.player.IsPlaying()
}

// IsPaused returns true if currently paused.
func (p *PlaybackManager) IsPaused() bool {
	return p.player.State() == player.Paused
}

// --- Player Controls ---

// Play starts playback of a track by path.
func (p *PlaybackManager) Play(path string) error {
	return p.player.Play(path)
}

// Toggle toggles between play and pause.
func (p *PlaybackManager) Toggle() {
	p.player.Toggle()
}

// Stop stops playback.
func (p *PlaybackManager) Stop() {
	p.player.Stop()
}

// SeekTo moves playback to an absolute position.
func (p *PlaybackManager) SeekTo(pos time.Duration) {
	p.player.SeekTo(pos)
}

// SetVolumePercent applies a volume bar value in [0, 100].
func (p *PlaybackManager) SetVolumePercent(percent int) {
	p.player.SetVolume(float64(percent) / 100)
}

// SetListener moves the 3D listener.
func (p *PlaybackManager) SetListener(x, y float32) {
	p.player.SetListenerPosition(x, y)
}

// --- Position and Duration ---

// Position returns the current playback position.
func (p *PlaybackManager) Position() time.Duration {
	return p.player.Position()
}

// Duration returns the total duration of the current track.
func (p *PlaybackManager) Duration() time.Duration {
	return p.player.Duration()
}

// --- Spectrum ---

// Spectrum returns the left and right bars for the spectrum display. Stereo
// tracks yield bins per channel, and a failed left read is replaced by
// silence. Tracks without a right channel yield twice as many left bins and
// no right bins. ok is false when nothing could be read.
func (p *PlaybackManager) Spectrum(bins int) (left, right []float32, ok bool) {
	right, err := p.player.Spectrum(1, bins)
	if err == nil {
		left, err = p.player.Spectrum(0, bins)
		if err != nil {
			left = make([]float32, bins)
		}
		return left, right, true
	}

	left, err = p.player.Spectrum(0, 2*bins)
	if err != nil {
		return nil, nil, false
	}
	return left, nil, true
}

// --- Current Track ---

// CurrentTrack returns the currently playing track, or nil if none.
func (p *PlaybackManager) CurrentTrack() *playlist.Track {
	return p.queue.Current()
}
