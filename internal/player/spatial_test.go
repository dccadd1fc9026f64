package player

import (
	"math"
	"testing"

	"github.com/gopxl/beep/v2"
)

func TestSpatialize(t *testing.T) {
	tests := []struct {
		name       string
		x, y       float64
		wantPan    float64
		wantVolume float64
	}{
		{"at source", 0, 0, 0, 0},
		{"inside min distance right", 3, 0, -0.6, 0},
		{"inside min distance left", -5, 0, 1, 0},
		{"far right", 20, 0, -1, -2},
		{"far left", -10, 0, 1, -1},
		{"straight ahead", 0, 30, 0, math.Log2(5.0 / 30)},
		{"diagonal", 30, 40, -0.6, math.Log2(5.0 / 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pan, vol := Spatialize(tt.x, tt.y, DefaultMinDistance)
			if math.Abs(pan-tt.wantPan) > 1e-9 {
				t.Errorf("pan = %v, want %v", pan, tt.wantPan)
			}
			if math.Abs(vol-tt.wantVolume) > 1e-9 {
				t.Errorf("volume = %v, want %v", vol, tt.wantVolume)
			}
		})
	}
}

func TestSpatialize_NonPositiveMinDistance(t *testing.T) {
	pan, vol := Spatialize(10, 0, 0)
	wantPan, wantVol := Spatialize(10, 0, DefaultMinDistance)
	if pan != wantPan || vol != wantVol {
		t.Errorf("Spatialize(10, 0, 0) = (%v, %v), want (%v, %v)", pan, vol, wantPan, wantVol)
	}
}

func TestPlayer_ListenerWithoutTrack(t *testing.T) {
	p := New()
	p.SetListenerPosition(12, -3)
	p.SetMinDistance(-1)

	x, y := p.ListenerPosition()
	if x != 12 || y != -3 {
		t.Errorf("ListenerPosition() = (%v, %v)", x, y)
	}
	if p.minDistance != DefaultMinDistance {
		t.Errorf("minDistance = %v, want default", p.minDistance)
	}
}

// ramp streams n stereo frames whose left sample is the frame index and
// right sample its negation.
type ramp struct{ pos, n int }

func (r *ramp) Stream(samples [][2]float64) (int, bool) {
	if r.pos >= r.n {
		return 0, false
	}
	k := min(len(samples), r.n-r.pos)
	for i := range k {
		samples[i][0] = float64(r.pos + i)
		samples[i][1] = -float64(r.pos + i)
	}
	r.pos += k
	return k, true
}

func (r *ramp) Err() error { return nil }

var _ beep.Streamer = (*ramp)(nil)

func TestTap_Samples(t *testing.T) {
	tap := NewTap(&ramp{n: 10}, 4)
	buf := make([][2]float64, 3)

	for range 3 {
		tap.Stream(buf)
	}

	left := tap.Samples(0, 3)
	right := tap.Samples(1, 3)
	for i, want := range []float64{6, 7, 8} {
		if left[i] != want || right[i] != -want {
			t.Errorf("sample %d = (%v, %v), want (%v, %v)", i, left[i], right[i], want, -want)
		}
	}

	if got := len(tap.Samples(0, 100)); got != 4 {
		t.Errorf("oversized request returned %d samples, want 4", got)
	}

	tap.Reset()
	for _, s := range tap.Samples(0, 4) {
		if s != 0 {
			t.Fatalf("Reset left sample %v", s)
		}
	}
}

func TestTap_PassesThrough(t *testing.T) {
	tap := NewTap(&ramp{n: 2}, 8)
	buf := make([][2]float64, 4)

	n, ok := tap.Stream(buf)
	if n != 2 || !ok {
		t.Errorf("Stream() = %d, %v, want 2, true", n, ok)
	}
	if buf[1][0] != 1 {
		t.Errorf("buf[1][0] = %v, want 1", buf[1][0])
	}
	if _, ok := tap.Stream(buf); ok {
		t.Error("Stream() after end should report false")
	}
	if tap.Err() != nil {
		t.Errorf("Err() = %v", tap.Err())
	}
}

func TestLevelToVolume(t *testing.T) {
	tests := []struct {
		level float64
		want  float64
	}{
		{0, -10},
		{-0.5, -10},
		{1, 0},
		{2, 0},
		{0.5, -1},
		{0.25, -2},
	}

	for _, tt := range tests {
		if got := levelToVolume(tt.level); got != tt.want {
			t.Errorf("levelToVolume(%v) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestPlayer_VolumeWithoutTrack(t *testing.T) {
	p := New()
	if p.Volume() != 1 {
		t.Errorf("initial Volume() = %v, want 1", p.Volume())
	}
	p.SetVolume(1.5)
	if p.Volume() != 1 {
		t.Errorf("Volume() = %v after SetVolume(1.5), want 1", p.Volume())
	}
	p.SetVolume(0.3)
	if p.Volume() != 0.3 {
		t.Errorf("Volume() = %v, want 0.3", p.Volume())
	}
}

func TestPlayer_Idle(t *testing.T) {
	p := New()
	if p.IsPlaying() || p.Position() != 0 || p.Duration() != 0 || p.Channels() != 0 {
		t.Error("idle player reports a track")
	}
	if _, err := p.Spectrum(0, 256); err != ErrNoTrack {
		t.Errorf("Spectrum() error = %v, want ErrNoTrack", err)
	}
	p.SeekTo(0)
	p.Toggle()
	if p.State() != Stopped {
		t.Errorf("State() = %v, want Stopped", p.State())
	}
}

func TestPlayer_PlayUnsupported(t *testing.T) {
	p := New()
	if err := p.Play("/tmp/nothing.xyz"); err == nil {
		t.Error("Play() on an unsupported extension should fail")
	}
	if p.State() != Stopped {
		t.Errorf("State() = %v after failed Play", p.State())
	}
}
