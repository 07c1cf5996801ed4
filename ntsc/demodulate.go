/*
NAME
  demodulate.go

DESCRIPTION
  demodulate.go recovers Y, I and Q from a resampled composite sample
  using one of five filter strategies (lowpass, box, notch, 1D comb, 2D
  comb), then applies dynamic Y/C crosstalk and chroma-phase drift
  compensation. The five strategies are a closed enum dispatched once per
  pixel via a single switch, rather than per-pixel virtual dispatch.

LICENSE
  Copyright (C) 2026 the VHSCore Authors. All Rights Reserved.
*/

package ntsc

import (
	"math"

	"github.com/kelpline/vhscore/config"
	"github.com/kelpline/vhscore/dsp"
)

// decoderState bundles the demodulator's cross-sample and cross-line
// state: the Y/I/Q lowpass filters, the I/Q box filters (Box strategy
// only), the two comb previous-line buffers, and the scalar luma
// high-pass and chroma-delay accumulators used by crosstalk and drift
// compensation.
type decoderState struct {
	yFilter, iFilter, qFilter *dsp.LowpassFilter
	iBox, qBox                *dsp.BoxFilter
	previousLine              []float64
	previousLine2             []float64
	lumaHighpass              float64
	chromaDelay               float64
}

// newDecoderState constructs fresh per-frame decoder state for a frame
// of the given width.
func newDecoderState(width int, effectiveSampleRate float64, cfg config.Config, cutoffs lineCutoffs) *decoderState {
	return &decoderState{
		yFilter:       dsp.NewLowpassFilter(cutoffs.lumaHz, effectiveSampleRate),
		iFilter:       dsp.NewLowpassFilter(cutoffs.iHz, effectiveSampleRate),
		qFilter:       dsp.NewLowpassFilter(cutoffs.qHz, effectiveSampleRate),
		iBox:          dsp.NewBoxFilter(cfg.Demodulation.BoxKernel),
		qBox:          dsp.NewBoxFilter(cfg.Demodulation.BoxKernel),
		previousLine:  make([]float64, width),
		previousLine2: make([]float64, width),
	}
}

// decodeComposite recovers a YIQ sample at pixel x on the current line
// from the resampled voltage and carrier cos/sin, dispatching on the
// configured demodulation strategy.
func decodeComposite(voltage, cosPhase, sinPhase float64, x int, state *decoderState, cfg config.Config) dsp.YIQ {
	rawI := voltage * cosPhase
	rawQ := voltage * sinPhase

	var chromaI, chromaQ, y float64
	switch cfg.Demodulation.Filter {
	case config.FilterBox:
		chromaI = state.iBox.Process(rawI)
		chromaQ = state.qBox.Process(rawQ)
		y = state.yFilter.Process(voltage)

	case config.FilterNotch:
		chromaI = state.iFilter.Process(rawI)
		chromaQ = state.qFilter.Process(rawQ)
		chromaSignal := chromaI*cosPhase + chromaQ*sinPhase
		notchScale := clamp(cfg.Demodulation.NotchBandwidthMHz/1.5, 0.1, 1.0)
		y = state.yFilter.Process(voltage) - cfg.Demodulation.NotchDepth*notchScale*chromaSignal

	case config.FilterComb1D:
		prev := state.previousLine[x]
		combY := 0.5 * (voltage + prev)
		combC := 0.5 * (voltage - prev) * cfg.Demodulation.CombStrength
		state.previousLine[x] = voltage
		chromaI = state.iFilter.Process(combC * cosPhase)
		chromaQ = state.qFilter.Process(combC * sinPhase)
		y = state.yFilter.Process(combY)

	case config.FilterComb2D:
		prev := state.previousLine[x]
		prev2 := state.previousLine2[x]
		combY := (voltage + prev + prev2) / 3.0
		combC := (voltage - prev2) * 0.5 * cfg.Demodulation.CombStrength
		state.previousLine2[x] = prev
		state.previousLine[x] = voltage
		chromaI = state.iFilter.Process(combC * cosPhase)
		chromaQ = state.qFilter.Process(combC * sinPhase)
		y = state.yFilter.Process(combY)

	default: // config.FilterLowpass
		chromaI = state.iFilter.Process(rawI)
		chromaQ = state.qFilter.Process(rawQ)
		y = state.yFilter.Process(voltage)
	}

	if cfg.Artifacts.CrosstalkDynamic {
		chromaSignal := chromaI*cosPhase + chromaQ*sinPhase
		y += 0.03 * chromaSignal
		high := voltage - state.lumaHighpass
		state.lumaHighpass = voltage
		chromaI += 0.02 * high
		chromaQ += 0.02 * high
	}

	if cfg.Artifacts.ChromaPhaseDriftEnabled {
		state.chromaDelay = wrapPi(state.chromaDelay + cfg.Precision.ChromaDelayVariation)
		driftCos := math.Cos(state.chromaDelay)
		driftSin := math.Sin(state.chromaDelay)
		chromaI, chromaQ = chromaI*driftCos-chromaQ*driftSin, chromaI*driftSin+chromaQ*driftCos
	}

	return dsp.YIQ{Y: y, I: chromaI, Q: chromaQ}
}

// applyChromaBlur applies a one-tap-per-side [0.25, 0.5, 0.25] blur to
// the pixel-rate I and Q arrays, mixed against the unblurred arrays by a
// strength derived from the chroma bandwidth.
func applyChromaBlur(iLine, qLine []float64, chromaBandwidthMHz float64) {
	strength := clamp(1.5-chromaBandwidthMHz, 0, 1.5) / 1.5
	if strength <= 0 {
		return
	}
	n := len(iLine)
	iBlur := make([]float64, n)
	qBlur := make([]float64, n)
	for x := 0; x < n; x++ {
		prev, next := x, x
		if x > 0 {
			prev = x - 1
		}
		if x+1 < n {
			next = x + 1
		}
		iBlur[x] = 0.25*iLine[prev] + 0.5*iLine[x] + 0.25*iLine[next]
		qBlur[x] = 0.25*qLine[prev] + 0.5*qLine[x] + 0.25*qLine[next]
	}
	for x := 0; x < n; x++ {
		iLine[x] = iLine[x]*(1-strength) + iBlur[x]*strength
		qLine[x] = qLine[x]*(1-strength) + qBlur[x]*strength
	}
}

// wrapPi wraps phase into [-pi, pi], preventing catastrophic cancellation
// in the chroma-delay accumulator over very wide frames.
func wrapPi(phase float64) float64 {
	for phase > math.Pi {
		phase -= 2 * math.Pi
	}
	for phase < -math.Pi {
		phase += 2 * math.Pi
	}
	return phase
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
