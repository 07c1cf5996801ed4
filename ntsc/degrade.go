/*
NAME
  degrade.go

DESCRIPTION
  degrade.go implements the channel, tape, head-switching, dropout and
  saturation degradation operators, applied in that fixed order after
  modulation. All but dropout and head-switch noise are deterministic
  functions of phase; dropout is the one stateful run-length process
  that persists across lines within a frame.

LICENSE
  Copyright (C) 2026 the VHSCore Authors. All Rights Reserved.
*/

package ntsc

import (
	"math"

	"github.com/kelpline/vhscore/config"
	"github.com/kelpline/vhscore/dsp"
)

// applyChannel adds phase-locked ringing and noise terms. These are
// deterministic functions of phase, not RNG draws: they produce stable
// patterns whose frequency scales with the carrier.
func applyChannel(s composite, cfg config.ChannelConfig) composite {
	ringing := cfg.LumaRinging * math.Sin(s.phaseRad*0.5)
	noise := cfg.LumaNoise * math.Cos(s.phaseRad*13.37)
	return composite{voltage: s.voltage + ringing + noise, phaseRad: s.phaseRad}
}

// applyTape applies tracking-error attenuation, flutter, and a
// phase-gated dropout spike, then advances phase by the head-switch
// jitter term.
func applyTape(s composite, cfg config.TapeConfig) composite {
	flutter := cfg.FlutterDepth * math.Sin(s.phaseRad*cfg.FlutterRateHz)
	dropoutSpike := 0.0
	if math.Sin(s.phaseRad*0.1) > 0.995 {
		dropoutSpike = -0.2
	}
	voltage := s.voltage*(1-cfg.TrackingError) + flutter + dropoutSpike
	return composite{voltage: voltage, phaseRad: s.phaseRad + cfg.HeadSwitchJitter*0.01}
}

// applyHeadSwitching adds the bottom-of-frame disturbance band
// characteristic of a VHS head crossing between tracks.
func applyHeadSwitching(s *composite, y, height int, rng *dsp.RNG, artifacts config.ArtifactConfig) {
	if !artifacts.HeadSwitchEnabled || height == 0 {
		return
	}
	clampedHeight := artifacts.HeadSwitchHeight
	if clampedHeight < 0 {
		clampedHeight = 0
	}
	if clampedHeight > 1 {
		clampedHeight = 1
	}
	bandStart := int((1 - clampedHeight) * float64(height))
	if y < bandStart {
		return
	}
	noise := rng.NextSigned() * artifacts.HeadSwitchRandomness
	s.voltage += artifacts.HeadSwitchIntensity * (0.1 + noise)
	s.phaseRad += artifacts.HeadSwitchPhaseDistortion * noise
}

// dropoutState is the stateful run-length model backing applyDropout: an
// idle state (remaining == 0) and an active state (remaining > 0). It
// transitions idle->active with probability dropout_rate per sample, and
// active->idle by decrementing to zero; no other transitions exist, and
// it has no terminal state.
type dropoutState struct {
	remaining int
}

// applyDropout advances the dropout run-length state and, while active,
// injects signed noise into the voltage.
func applyDropout(s *composite, rng *dsp.RNG, state *dropoutState, artifacts config.ArtifactConfig) {
	if state.remaining == 0 && rng.NextF32() < artifacts.DropoutRate {
		state.remaining = int(math.Max(artifacts.DropoutLength, 0)*100) + 1
	}
	if state.remaining > 0 {
		s.voltage += rng.NextSigned() * 0.4
		state.remaining--
	}
}

// applySaturation soft-clips the voltage when saturation is enabled.
func applySaturation(voltage float64, artifacts config.ArtifactConfig) float64 {
	if !artifacts.SaturationEnabled {
		return voltage
	}
	return dsp.SoftClip(voltage, artifacts.SaturationStrength)
}
