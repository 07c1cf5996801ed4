/*
NAME
  resample.go

DESCRIPTION
  resample.go provides a windowed-sinc fractional resampler used by the
  demodulator to pull pixel-rate samples back out of the oversampled
  composite line. It follows the same build-a-FIR-kernel-from-a-window-
  table idiom as codec/pcm's SelectiveFrequencyFilter, but windows a sinc
  kernel at a single fractional read position instead of convolving a
  whole buffer.

LICENSE
  Copyright (C) 2026 the VHSCore Authors. All Rights Reserved.
*/

package dsp

import (
	"math"

	"github.com/mjibson/go-dsp/window"
)

// minTaps is the smallest tap count the resampler will honor; below this
// the windowed-sinc kernel degenerates.
const minTaps = 4

// sincEpsilon is the small-x threshold below which sinc(pi*x) is taken
// to be 1 rather than evaluated (it is numerically 1 there anyway, but
// the direct formula divides by a near-zero denominator).
const sincEpsilon = 1e-3

// SincResampler reads fractional-sample positions out of a source buffer
// using a windowed-sinc kernel. The Hann window table is precomputed once
// at construction (rather than per tap per sample, as a naive transcription
// of the reference formula would do) since it depends only on the tap
// count.
type SincResampler struct {
	taps   int
	half   int
	window []float64
}

// NewSincResampler returns a SincResampler with the given tap count.
// Tap counts below 4 are forced to 4, per spec.
func NewSincResampler(taps int) *SincResampler {
	if taps < minTaps {
		taps = minTaps
	}
	half := taps / 2
	// window.Hann(n) implements 0.5 - 0.5*cos(2*pi*k/(n-1)) for k in
	// [0, n-1]; with n = taps+1 that is exactly spec's
	// 0.5 - 0.5*cos(2*pi*(i+half)/taps) for i in [-half, half].
	return &SincResampler{
		taps:   taps,
		half:   half,
		window: window.Hann(taps + 1),
	}
}

// Sample returns the interpolated value of data at fractional position p,
// clamped against the buffer's bounds. An empty buffer returns 0.
func (s *SincResampler) Sample(data []float64, p float64) float64 {
	n := len(data)
	if n == 0 {
		return 0
	}
	center := int(math.Floor(p))
	var sum, weightSum float64
	for i := -s.half; i <= s.half; i++ {
		idx := clampInt(center+i, 0, n-1)
		x := p - float64(center+i)
		w := s.weight(i, x)
		sum += data[idx] * w
		weightSum += w
	}
	if math.Abs(weightSum) > 1e-6 {
		return sum / weightSum
	}
	return data[clampInt(center, 0, n-1)]
}

// weight returns the windowed-sinc weight for tap offset i at fractional
// distance x from the tap's integer sample.
func (s *SincResampler) weight(i int, x float64) float64 {
	return sinc(x) * s.window[i+s.half]
}

func sinc(x float64) float64 {
	if math.Abs(x) < sincEpsilon {
		return 1
	}
	px := math.Pi * x
	return math.Sin(px) / px
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
