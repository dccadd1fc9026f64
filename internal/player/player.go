package player

import (
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/llehouerou/spectra/internal/spectrum"
)

// Player plays one track at a time through the beep speaker. The signal
// chain is decoder → resampler → pause control → tap → pan → distance
// attenuation → user volume → speaker.
//
// Player methods are called from a single goroutine. Fields shared with the
// speaker goroutine are only written under speaker.Lock.
type Player struct {
	state    State
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	tap      *Tap
	pan      *effects.Pan
	distance *effects.Volume
	volume   *effects.Volume

	volumeLevel          float64
	minDistance          float64
	listenerX, listenerY float32

	finished  atomic.Bool
	analyzers map[int]*spectrum.Analyzer
}

var (
	speakerInitialized bool
	speakerSampleRate  beep.SampleRate
)

// New creates a stopped player at full volume.
func New() *Player {
	return &Player{
		state:       Stopped,
		volumeLevel: 1,
		minDistance: DefaultMinDistance,
		analyzers:   make(map[int]*spectrum.Analyzer),
	}
}

// Play stops the current track and starts the file at path.
func (p *Player) Play(path string) error {
	p.Stop()

	streamer, format, err := decodeFile(path)
	if err != nil {
		return err
	}

	if !speakerInitialized {
		speakerSampleRate = format.SampleRate
		err = speaker.Init(speakerSampleRate, speakerSampleRate.N(time.Second/10))
		if err != nil {
			streamer.Close()
			return err
		}
		speakerInitialized = true
	}

	p.streamer = streamer
	p.format = format

	// Resample if the track's sample rate differs from the speaker's
	var source beep.Streamer = streamer
	if format.SampleRate != speakerSampleRate {
		source = beep.Resample(4, format.SampleRate, speakerSampleRate, streamer)
	}
	p.ctrl = &beep.Ctrl{Streamer: source}
	p.tap = NewTap(p.ctrl, tapSize)
	p.pan = &effects.Pan{Streamer: p.tap}
	p.distance = &effects.Volume{Streamer: p.pan, Base: 2}
	p.volume = &effects.Volume{
		Streamer: p.distance,
		Base:     2,
		Volume:   levelToVolume(p.volumeLevel),
		Silent:   p.volumeLevel == 0,
	}
	p.applyListener()

	p.finished.Store(false)
	p.state = Playing
	speaker.Play(beep.Seq(p.volume, beep.Callback(func() {
		p.finished.Store(true)
	})))

	return nil
}

// Channels returns the channel count of the loaded track, or 0.
func (p *Player) Channels() int {
	if p.streamer == nil {
		return 0
	}
	return p.format.NumChannels
}

// Spectrum analyzes the most recent 2*bins samples of channel.
func (p *Player) Spectrum(channel, bins int) ([]float32, error) {
	if p.tap == nil {
		return nil, ErrNoTrack
	}
	if channel < 0 || channel >= p.Channels() {
		return nil, ErrNoChannel
	}
	a, ok := p.analyzers[bins]
	if !ok {
		a = spectrum.New(bins, spectrum.Rectangular)
		p.analyzers[bins] = a
	}
	return a.Magnitudes(p.tap.Samples(channel, a.BlockSize())), nil
}
