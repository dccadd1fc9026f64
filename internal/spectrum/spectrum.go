// Package spectrum turns blocks of audio samples into magnitude spectra for
// the visualizer.
package spectrum

import (
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/dsp/window"
)

// Window shapes a block of samples in place before the transform.
type Window func(seq []float64) []float64

// Windows available to callers.
var (
	Rectangular Window = window.Rectangular
	Hann        Window = window.Hann
	Blackman    Window = window.Blackman
)

// Analyzer computes the magnitude spectrum of sample blocks of a fixed size.
// It reuses its buffers and is not safe for concurrent use.
type Analyzer struct {
	fft    *fourier.FFT
	window Window
	bins   int
	buf    []float64
	coeff  []complex128
}

// New returns an analyzer producing bins magnitudes from blocks of 2*bins
// samples. A nil window means rectangular.
func New(bins int, w Window) *Analyzer {
	bins = max(bins, 1)
	if w == nil {
		w = Rectangular
	}
	n := 2 * bins
	return &Analyzer{
		fft:    fourier.NewFFT(n),
		window: w,
		bins:   bins,
		buf:    make([]float64, n),
		coeff:  make([]complex128, n/2+1),
	}
}

// Bins returns the number of magnitudes Magnitudes produces.
func (a *Analyzer) Bins() int { return a.bins }

// BlockSize returns the number of samples consumed per block.
func (a *Analyzer) BlockSize() int { return len(a.buf) }

// Magnitudes returns the normalized magnitude of the first Bins frequency
// bins of samples. Only the most recent BlockSize samples are used; shorter
// input is zero-padded at the front. A full-scale sine centered on a bin
// yields a magnitude close to 1 in that bin.
func (a *Analyzer) Magnitudes(samples []float64) []float32 {
	n := len(a.buf)
	if len(samples) > n {
		samples = samples[len(samples)-n:]
	}
	pad := n - len(samples)
	clear(a.buf[:pad])
	copy(a.buf[pad:], samples)

	a.window(a.buf)
	a.coeff = a.fft.Coefficients(a.coeff, a.buf)

	out := make([]float32, a.bins)
	scale := 2 / float64(n)
	for i := range out {
		out[i] = float32(cmplx.Abs(a.coeff[i]) * scale)
	}
	return out
}
