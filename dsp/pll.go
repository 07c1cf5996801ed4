/*
NAME
  pll.go

DESCRIPTION
  pll.go provides a first-order phase-locked-loop model used by the
  modulator to track the carrier phase reference with configurable lock
  speed and injected phase noise. It deliberately has no frequency
  integration term; it is a phase lowpass, not a true PLL.

LICENSE
  Copyright (C) 2026 the VHSCore Authors. All Rights Reserved.
*/

package dsp

// PhasePLL holds a running phase estimate that slews toward a target
// phase each update, with an additive noise term.
type PhasePLL struct {
	Phase    float64
	LockSlew float64
}

// NewPhasePLL returns a PhasePLL starting at phase with the given
// lock-slew constant. A lock-slew of 0 freezes the phase; 1 tracks the
// target instantly; values in between behave like a lowpass on the phase
// reference.
func NewPhasePLL(phase, lockSlew float64) *PhasePLL {
	return &PhasePLL{Phase: phase, LockSlew: lockSlew}
}

// Update advances the PLL toward targetPhase, injecting noise*phaseNoise,
// and returns the new phase.
func (p *PhasePLL) Update(targetPhase, phaseNoise, noise float64) float64 {
	delta := targetPhase - p.Phase
	p.Phase += delta*p.LockSlew + noise*phaseNoise
	return p.Phase
}
