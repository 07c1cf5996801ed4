/*
NAME
  driver.go

DESCRIPTION
  driver.go drives the per-line pipeline: color conversion, modulation,
  channel/tape/head-switch/dropout/saturation degradation, demodulation,
  and reverse color conversion, in that strict order. Evaluation order
  within a frame is always line y=0..H-1, and within each line s=0..W*
  oversample-1 for modulation then x=0..W-1 for demodulation; this
  ordering is semantically significant because filter and PLL state carry
  between samples.

LICENSE
  Copyright (C) 2026 the VHSCore Authors. All Rights Reserved.
*/

package ntsc

import (
	"math"

	"github.com/kelpline/vhscore/config"
	"github.com/kelpline/vhscore/dsp"
)

// subcarrierHz is the NTSC color subcarrier frequency, f_sc.
const subcarrierHz = 3_579_545.0

// lineCutoffs bundles the three derived lowpass cutoff frequencies
// (luma, chroma-I, chroma-Q) used by both the encoder and decoder
// filters.
type lineCutoffs struct {
	lumaHz, iHz, qHz float64
}

// computeCutoffs derives the luma and I/Q chroma cutoff frequencies from
// the channel and precision config groups, applying the vhs_chroma_
// bandwidth_mhz cap described in spec.md's precision group.
func computeCutoffs(cfg config.Config) lineCutoffs {
	lumaHz := math.Max(cfg.Channel.LumaBandwidthMHz, 0.1) * 1e6
	chromaHz := math.Max(cfg.Channel.ChromaBandwidthMHz, 0.1) * 1e6
	vhsChromaHz := math.Max(cfg.Precision.VHSChromaBandwidthMHz, 0.1) * 1e6
	return lineCutoffs{
		lumaHz: lumaHz,
		iHz:    math.Min(math.Min(chromaHz, 1_300_000.0), vhsChromaHz),
		qHz:    math.Min(math.Min(chromaHz, 500_000.0), vhsChromaHz),
	}
}

// frameState bundles all the per-frame mutable DSP state: it is
// constructed fresh for every render call and never outlives it, per
// spec.md's invariant that no filter/PLL/RNG state leaks across frames.
type frameState struct {
	encoderI, encoderQ *dsp.LowpassFilter
	pll                *dsp.PhasePLL
	rng                *dsp.RNG
	dropout            dropoutState
	decoder            *decoderState
	resampler          *dsp.SincResampler
	oversample         int
	phaseOffset        float64
	phaseStep          float64
}

// newFrameState constructs fresh per-frame DSP state for the given frame
// width/height, config and sample rate.
func newFrameState(width int, cfg config.Config, sampleRateHz float64, seed uint32) *frameState {
	oversample := cfg.Precision.OversampleFactor
	if oversample < 1 {
		oversample = 1
	}
	effectiveSampleRate := math.Max(sampleRateHz, 1) * float64(oversample)
	phaseOffset := cfg.Composite.SubcarrierPhaseDeg * math.Pi / 180
	phaseStep := 2 * math.Pi * subcarrierHz / effectiveSampleRate

	cutoffs := computeCutoffs(cfg)

	resampleTaps := cfg.Precision.ResampleTaps
	if !cfg.Precision.FixVerticalStripes {
		resampleTaps = 4
	}

	return &frameState{
		encoderI:    dsp.NewLowpassFilter(cutoffs.iHz, effectiveSampleRate),
		encoderQ:    dsp.NewLowpassFilter(cutoffs.qHz, effectiveSampleRate),
		pll:         dsp.NewPhasePLL(phaseOffset, cfg.Precision.PLLLockSlew),
		rng:         dsp.NewRNG(seed),
		decoder:     newDecoderState(width, effectiveSampleRate, cfg, cutoffs),
		resampler:   dsp.NewSincResampler(resampleTaps),
		oversample:  oversample,
		phaseOffset: phaseOffset,
		phaseStep:   phaseStep,
	}
}

// renderLine processes one scanline of the input frame into the
// corresponding scanline of out, advancing all cross-sample/cross-line
// state in fs.
func renderLine(in, out *Frame, y int, fs *frameState, cfg config.Config) {
	width := in.Width

	yiqLine := make([]dsp.YIQ, width)
	for x := 0; x < width; x++ {
		r, g, b := in.clampedRGB(x, y)
		yiq := dsp.RGBToYIQ(dsp.SRGBToLinear(r), dsp.SRGBToLinear(g), dsp.SRGBToLinear(b))
		yiq.I = fs.encoderI.Process(yiq.I)
		yiq.Q = fs.encoderQ.Process(yiq.Q)
		yiqLine[x] = yiq
	}

	samplesPerLine := width * fs.oversample
	compositeLine := make([]float64, samplesPerLine)
	cosLine := make([]float64, samplesPerLine)
	sinLine := make([]float64, samplesPerLine)

	for s := 0; s < samplesPerLine; s++ {
		pixel := s / fs.oversample
		yiq := yiqLine[pixel]
		sampleIndex := float64(y*samplesPerLine + s)
		basePhase := fs.phaseOffset + fs.phaseStep*sampleIndex
		jitterPhase := applyTimebaseJitter(y, in.Height, basePhase, fs.rng, cfg.Artifacts)
		driftPhase := applyChromaPhaseDrift(sampleIndex, jitterPhase, cfg.Artifacts)
		pllPhase := fs.pll.Update(driftPhase, cfg.Precision.PLLPhaseNoise, fs.rng.NextSigned())

		comp := encodeComposite(yiq, pllPhase)
		comp = applyChannel(comp, cfg.Channel)
		comp = applyTape(comp, cfg.Tape)
		applyHeadSwitching(&comp, y, in.Height, fs.rng, cfg.Artifacts)
		if cfg.Artifacts.DropoutEnabled {
			applyDropout(&comp, fs.rng, &fs.dropout, cfg.Artifacts)
		}
		comp.voltage = applySaturation(comp.voltage, cfg.Artifacts)

		compositeLine[s] = comp.voltage
		cosLine[s] = math.Cos(pllPhase)
		sinLine[s] = math.Sin(pllPhase)
	}

	iLine := make([]float64, width)
	qLine := make([]float64, width)

	for x := 0; x < width; x++ {
		samplePos := (float64(x) + 0.5) * float64(fs.oversample)
		voltage := fs.resampler.Sample(compositeLine, samplePos)
		cosPhase := fs.resampler.Sample(cosLine, samplePos)
		sinPhase := fs.resampler.Sample(sinLine, samplePos)

		decoded := decodeComposite(voltage, cosPhase, sinPhase, x, fs.decoder, cfg)
		iLine[x] = decoded.I
		qLine[x] = decoded.Q

		outR, outG, outB := dsp.YIQToRGB(decoded)
		out.setRGB(x, y, dsp.LinearToSRGB(outR), dsp.LinearToSRGB(outG), dsp.LinearToSRGB(outB))
	}

	applyChromaBlur(iLine, qLine, cfg.Channel.ChromaBandwidthMHz)

	if cfg.Debug.DiagnosticMode {
		applyDiagnostics(out, y, compositeLine, iLine, qLine, fs.resampler, fs.oversample, cfg)
	}
}
