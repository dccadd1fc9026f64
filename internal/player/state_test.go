package player

import (
	"errors"
	"testing"
)

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Stopped, "Stopped"},
		{Playing, "Playing"},
		{Paused, "Paused"},
		{State(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.state.String(); got != tt.want {
				t.Errorf("State.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestState_Predicates(t *testing.T) {
	tests := []struct {
		state     State
		active    bool
		canPause  bool
		canResume bool
	}{
		{Stopped, false, false, false},
		{Playing, true, true, false},
		{Paused, true, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := tt.state.IsActive(); got != tt.active {
				t.Errorf("IsActive() = %v, want %v", got, tt.active)
			}
			if got := tt.state.CanPause(); got != tt.canPause {
				t.Errorf("CanPause() = %v, want %v", got, tt.canPause)
			}
			if got := tt.state.CanResume(); got != tt.canResume {
				t.Errorf("CanResume() = %v, want %v", got, tt.canResume)
			}
		})
	}
}

// TestMock_StateTransitions validates the state machine using the Mock player.
func TestMock_StateTransitions(t *testing.T) {
	steps := []struct {
		name        string
		do          func(m *Mock)
		wantState   State
		wantPlaying bool
	}{
		{"Play", func(m *Mock) { _ = m.Play("/a.mp3") }, Playing, true},
		{"Pause", (*Mock).Pause, Paused, true},
		{"Pause again", (*Mock).Pause, Paused, true},
		{"Toggle resumes", (*Mock).Toggle, Playing, true},
		{"Resume while playing", (*Mock).Resume, Playing, true},
		{"Track ends", (*Mock).SimulateFinished, Playing, false},
		{"Play restarts", func(m *Mock) { _ = m.Play("/b.mp3") }, Playing, true},
		{"Stop", (*Mock).Stop, Stopped, false},
		{"Toggle when stopped", (*Mock).Toggle, Stopped, false},
	}

	m := NewMock()
	for _, s := range steps {
		s.do(m)
		if m.State() != s.wantState {
			t.Errorf("%s: State() = %v, want %v", s.name, m.State(), s.wantState)
		}
		if m.IsPlaying() != s.wantPlaying {
			t.Errorf("%s: IsPlaying() = %v, want %v", s.name, m.IsPlaying(), s.wantPlaying)
		}
	}
}

func TestMock_PlayError(t *testing.T) {
	m := NewMock()
	errBad := errors.New("bad file")
	m.SetPlayError("/bad.mp3", errBad)

	if err := m.Play("/bad.mp3"); !errors.Is(err, errBad) {
		t.Errorf("Play() error = %v, want %v", err, errBad)
	}
	if m.IsPlaying() {
		t.Error("failed Play should not start playback")
	}
	if err := m.Play("/good.mp3"); err != nil {
		t.Errorf("Play() error = %v", err)
	}

	calls := m.PlayCalls()
	if len(calls) != 2 || calls[0] != "/bad.mp3" || calls[1] != "/good.mp3" {
		t.Errorf("PlayCalls() = %v", calls)
	}
}

func TestMock_Spectrum(t *testing.T) {
	m := NewMock()
	if _, err := m.Spectrum(0, 8); !errors.Is(err, ErrNoTrack) {
		t.Errorf("stopped Spectrum() error = %v, want ErrNoTrack", err)
	}

	_ = m.Play("/a.mp3")
	m.SetChannels(1)
	if _, err := m.Spectrum(1, 8); !errors.Is(err, ErrNoChannel) {
		t.Errorf("mono right channel error = %v, want ErrNoChannel", err)
	}
	got, err := m.Spectrum(0, 8)
	if err != nil || len(got) != 8 {
		t.Errorf("Spectrum(0, 8) = %v, %v", got, err)
	}
}
