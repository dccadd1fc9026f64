package player

import (
	"sync"

	"github.com/gopxl/beep/v2"
)

// tapSize is the number of stereo frames kept for spectrum analysis. It
// covers the largest block the visualizer asks for.
const tapSize = 4096

// Tap is a streamer wrapper that copies the samples passing through it into
// a per-channel ring buffer. It runs on the speaker goroutine while readers
// call Samples from the UI goroutine.
type Tap struct {
	s   beep.Streamer
	mu  sync.Mutex
	buf [2][]float64
	pos int
}

// NewTap wraps a streamer with a ring buffer of size frames.
func NewTap(s beep.Streamer, size int) *Tap {
	return &Tap{
		s:   s,
		buf: [2][]float64{make([]float64, size), make([]float64, size)},
	}
}

// Stream passes audio through while recording both channels.
func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.s.Stream(samples)
	size := len(t.buf[0])
	t.mu.Lock()
	for i := range n {
		t.buf[0][t.pos] = samples[i][0]
		t.buf[1][t.pos] = samples[i][1]
		t.pos = (t.pos + 1) % size
	}
	t.mu.Unlock()
	return n, ok
}

// Err returns the underlying streamer's error.
func (t *Tap) Err() error {
	return t.s.Err()
}

// Samples returns the last n samples of channel (0 left, 1 right) in
// chronological order.
func (t *Tap) Samples(channel, n int) []float64 {
	size := len(t.buf[0])
	n = min(n, size)
	out := make([]float64, n)
	t.mu.Lock()
	start := (t.pos - n + size) % size
	for i := range n {
		out[i] = t.buf[channel][(start+i)%size]
	}
	t.mu.Unlock()
	return out
}

// Reset zeroes the buffer.
func (t *Tap) Reset() {
	t.mu.Lock()
	clear(t.buf[0])
	clear(t.buf[1])
	t.pos = 0
	t.mu.Unlock()
}
