package player

import (
	"math"

	"github.com/gopxl/beep/v2/speaker"
)

// DefaultMinDistance is the radius around the source inside which the sound
// plays at full level.
const DefaultMinDistance = 5.0

// Spatialize places the sound source at the origin and the listener at
// (x, y) on a top-down plane, x to the right and y forward. It returns the
// stereo pan in [-1, 1] (negative is left) and the attenuation in beep's
// base-2 volume units (0 is unchanged).
//
// The level falls off as minDistance/distance once the listener is farther
// than minDistance. The pan is the horizontal direction to the source,
// shrunk inside that radius so crossing the center does not jump.
func Spatialize(x, y, minDistance float64) (pan, volume float64) {
	if minDistance <= 0 {
		minDistance = DefaultMinDistance
	}
	ref := max(math.Hypot(x, y), minDistance)
	pan = -x / ref
	volume = math.Log2(minDistance / ref)
	return pan, volume
}

// SetMinDistance sets the radius of full-level playback. Nonpositive values
// restore DefaultMinDistance.
func (p *Player) SetMinDistance(d float64) {
	if d <= 0 {
		d = DefaultMinDistance
	}
	p.minDistance = d
	p.applyListener()
}

// SetListenerPosition moves the listener relative to the sound source.
func (p *Player) SetListenerPosition(x, y float32) {
	p.listenerX, p.listenerY = x, y
	p.applyListener()
}

// ListenerPosition returns the listener coordinates last set.
func (p *Player) ListenerPosition() (x, y float32) {
	return p.listenerX, p.listenerY
}

func (p *Player) applyListener() {
	if p.pan == nil || p.distance == nil {
		return
	}
	pan, volume := Spatialize(float64(p.listenerX), float64(p.listenerY), p.minDistance)
	speaker.Lock()
	p.pan.Pan = pan
	p.distance.Volume = volume
	speaker.Unlock()
}
