/*
NAME
  rng.go

DESCRIPTION
  rng.go provides the 32-bit linear-congruential generator used for every
  stochastic artifact in the pipeline (timebase noise, head-switch noise,
  dropout triggering and amplitude, PLL phase noise). It is deterministic
  given a seed, by design: the renderer has no true randomness anywhere.

LICENSE
  Copyright (C) 2026 the VHSCore Authors. All Rights Reserved.
*/

package dsp

import "math"

// LCG multiplier and increment, matching the source generator exactly.
const (
	lcgMultiplier = 1664525
	lcgIncrement  = 1013904223
)

// RNG is a 32-bit linear-congruential generator: state = state*a + c.
type RNG struct {
	state uint32
}

// NewRNG returns an RNG seeded with seed.
func NewRNG(seed uint32) *RNG {
	return &RNG{state: seed}
}

// NextF32 advances the generator and returns a value in [0, 1), built by
// reinterpreting the top 23 state bits as an IEEE-754 mantissa in [1, 2)
// and subtracting 1.
func (r *RNG) NextF32() float64 {
	r.state = r.state*lcgMultiplier + lcgIncrement
	bits := (r.state >> 9) | 0x3F800000
	return float64(math.Float32frombits(bits)) - 1.0
}

// NextSigned returns a value in [-1, 1).
func (r *RNG) NextSigned() float64 {
	return r.NextF32()*2.0 - 1.0
}
