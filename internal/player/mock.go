// internal/player/mock.go
package player

import "time"

// Mock is a test double for Player.
type Mock struct {
	state     State
	finished  bool
	position  time.Duration
	duration  time.Duration
	volume    float64
	channels  int
	listener  [2]float32
	spectrum  map[int][]float32
	playErrs  map[string]error
	playCalls []string
	seekCalls []time.Duration
}

// NewMock creates a new mock player for testing. It reports stereo tracks
// and a flat spectrum.
func NewMock() *Mock {
	return &Mock{
		state:    Stopped,
		volume:   1,
		channels: 2,
		spectrum: make(map[int][]float32),
		playErrs: make(map[string]error),
	}
}

func (m *Mock) Play(path string) error {
	m.playCalls = append(m.playCalls, path)
	if err := m.playErrs[path]; err != nil {
		return err
	}
	m.state = Playing
	m.finished = false
	m.position = 0
	return nil
}

func (m *Mock) Stop() {
	m.state = Stopped
	m.finished = false
}

func (m *Mock) Pause() {
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Resume() {
	if m.state == Paused {
		m.state = Playing
	}
}

func (m *Mock) Toggle() {
	switch m.state {
	case Playing:
		m.Pause()
	case Paused:
		m.Resume()
	case Stopped:
		// Nothing to toggle when stopped
	}
}

func (m *Mock) State() State { return m.state }

func (m *Mock) IsPlaying() bool { return m.state.IsActive() && !m.finished }

func (m *Mock) Position() time.Duration { return m.position }

func (m *Mock) Duration() time.Duration { return m.duration }

func (m *Mock) SeekTo(d time.Duration) {
	m.seekCalls = append(m.seekCalls, d)
	m.position = d
}

func (m *Mock) SetVolume(level float64) { m.volume = min(max(level, 0), 1) }

func (m *Mock) Volume() float64 { return m.volume }

func (m *Mock) SetListenerPosition(x, y float32) { m.listener = [2]float32{x, y} }

func (m *Mock) Channels() int { return m.channels }

func (m *Mock) Spectrum(channel, bins int) ([]float32, error) {
	if m.state == Stopped {
		return nil, ErrNoTrack
	}
	if channel < 0 || channel >= m.channels {
		return nil, ErrNoChannel
	}
	if s, ok := m.spectrum[channel]; ok {
		return s, nil
	}
	return make([]float32, bins), nil
}

// Test helpers

func (m *Mock) SetState(s State) { m.state = s }

// SetPlayError makes Play fail for path.
func (m *Mock) SetPlayError(path string, err error) { m.playErrs[path] = err }

func (m *Mock) PlayCalls() []string { return m.playCalls }

func (m *Mock) SeekCalls() []time.Duration { return m.seekCalls }

func (m *Mock) SetDuration(d time.Duration) { m.duration = d }

func (m *Mock) SetPosition(d time.Duration) { m.position = d }

func (m *Mock) SetChannels(n int) { m.channels = n }

// SetSpectrum fixes the magnitudes returned for channel.
func (m *Mock) SetSpectrum(channel int, mags []float32) { m.spectrum[channel] = mags }

func (m *Mock) Listener() (x, y float32) { return m.listener[0], m.listener[1] }

// SimulateFinished makes the current track report that it reached its end.
func (m *Mock) SimulateFinished() { m.finished = true }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
