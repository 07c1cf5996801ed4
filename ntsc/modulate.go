/*
NAME
  modulate.go

DESCRIPTION
  modulate.go computes the carrier phase for each oversampled sample
  (subject to jitter, chroma drift, and PLL noise) and forms the
  composite voltage from a YIQ sample and that phase.

LICENSE
  Copyright (C) 2026 the VHSCore Authors. All Rights Reserved.
*/

package ntsc

import (
	"math"

	"github.com/kelpline/vhscore/config"
	"github.com/kelpline/vhscore/dsp"
)

// composite is a scalar voltage plus the carrier phase (radians,
// unwrapped) at which it was modulated.
type composite struct {
	voltage  float64
	phaseRad float64
}

// encodeComposite forms the composite voltage V = Y + I*cos(phi) +
// Q*sin(phi) at the given carrier phase.
func encodeComposite(yiq dsp.YIQ, phaseRad float64) composite {
	chroma := yiq.I*math.Cos(phaseRad) + yiq.Q*math.Sin(phaseRad)
	return composite{voltage: yiq.Y + chroma, phaseRad: phaseRad}
}

// applyTimebaseJitter adds the vertical-jitter and horizontal-TBC terms
// to phaseRad, each gated by its own enable flag. noise is drawn fresh
// from rng only when the TBC term is enabled.
func applyTimebaseJitter(y, height int, phaseRad float64, rng *dsp.RNG, artifacts config.ArtifactConfig) float64 {
	if !artifacts.HorizontalTBCEnabled && !artifacts.VerticalJitterEnabled {
		return phaseRad
	}
	lineNorm := 0.0
	if height > 0 {
		lineNorm = float64(y) / float64(height)
	}
	jitter := 0.0
	if artifacts.VerticalJitterEnabled {
		jitter = math.Sin(lineNorm*2*math.Pi*artifacts.VerticalJitterFrequency) * artifacts.VerticalJitterAmplitude
	}
	tbc := 0.0
	if artifacts.HorizontalTBCEnabled {
		noise := rng.NextSigned() * 0.5
		tbc = math.Sin(lineNorm*2*math.Pi*artifacts.HorizontalTBCFrequency+noise) * artifacts.HorizontalTBCAmplitude
	}
	return phaseRad + jitter + tbc
}

// applyChromaPhaseDrift adds the slow chroma phase drift term, a
// deterministic function of the absolute sample index.
func applyChromaPhaseDrift(sampleIndex float64, phaseRad float64, artifacts config.ArtifactConfig) float64 {
	if !artifacts.ChromaPhaseDriftEnabled {
		return phaseRad
	}
	drift := math.Sin(sampleIndex*artifacts.ChromaPhaseDriftRate*1e-4) * artifacts.ChromaPhaseDriftDepth
	return phaseRad + drift
}
