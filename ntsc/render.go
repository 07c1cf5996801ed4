/*
NAME
  render.go

DESCRIPTION
  render.go exposes the package's public entry points: Render and
  RenderWithProgress take an input Frame, a Config and a sample rate and
  return a new degraded Frame, never mutating the input. Both take an
  explicit seed so callers control determinism; RenderDefault and
  RenderDefaultWithProgress preserve the two historical seed constants for
  callers that do not care.

LICENSE
  Copyright (C) 2026 the VHSCore Authors. All Rights Reserved.
*/

package ntsc

import (
	"github.com/kelpline/vhscore/config"
)

// Historical seed constants, preserved for callers migrating off the
// hard-coded values that Render and RenderWithProgress used before seed
// became an explicit parameter.
const (
	DefaultSeed         uint32 = 0x1a2b3c4d
	DefaultProgressSeed uint32 = 0x1234abcd
)

// Render runs the full pipeline over in and returns a new Frame of the
// same dimensions. in is never modified.
func Render(in *Frame, cfg config.Config, sampleRateHz float64, seed uint32) *Frame {
	return RenderWithProgress(in, cfg, sampleRateHz, seed, nil)
}

// RenderWithProgress runs the full pipeline over in, invoking onProgress
// exactly once per completed scanline with a value in (0, 1], in
// ascending order, reaching exactly 1.0 on the last line. onProgress may
// be nil.
func RenderWithProgress(in *Frame, cfg config.Config, sampleRateHz float64, seed uint32, onProgress func(float64)) *Frame {
	cfg.Validate()

	out := NewFrame(in.Width, in.Height)
	if in.Width == 0 || in.Height == 0 {
		return out
	}

	fs := newFrameState(in.Width, cfg, sampleRateHz, seed)

	for y := 0; y < in.Height; y++ {
		renderLine(in, out, y, fs, cfg)
		if onProgress != nil {
			onProgress(float64(y+1) / float64(in.Height))
		}
	}

	return out
}

// RenderDefault runs Render with the historical default seed.
func RenderDefault(in *Frame, cfg config.Config, sampleRateHz float64) *Frame {
	return Render(in, cfg, sampleRateHz, DefaultSeed)
}

// RenderDefaultWithProgress runs RenderWithProgress with the historical
// default progress-callback seed.
func RenderDefaultWithProgress(in *Frame, cfg config.Config, sampleRateHz float64, onProgress func(float64)) *Frame {
	return RenderWithProgress(in, cfg, sampleRateHz, DefaultProgressSeed, onProgress)
}
