/*
NAME
  diagnostics.go

DESCRIPTION
  diagnostics.go implements the debug overlay: after each line, if
  diagnostic mode is on, output pixels are overwritten with the resampled
  composite as grayscale, raw I/Q mapped to red/green, and/or grid
  markers, combining by later-writer-wins in the order composite, I/Q,
  grid.

LICENSE
  Copyright (C) 2026 the VHSCore Authors. All Rights Reserved.
*/

package ntsc

import (
	"github.com/kelpline/vhscore/config"
	"github.com/kelpline/vhscore/dsp"
)

const gridSpacing = 16

// applyDiagnostics overwrites line y of out with whichever debug overlays
// are enabled, later-writer-wins in the order composite, I/Q, grid.
func applyDiagnostics(out *Frame, y int, compositeLine, iLine, qLine []float64, resampler *dsp.SincResampler, oversample int, cfg config.Config) {
	for x := 0; x < out.Width; x++ {
		if cfg.Debug.ShowComposite {
			samplePos := (float64(x) + 0.5) * float64(oversample)
			v := resampler.Sample(compositeLine, samplePos)
			value := dsp.Clamp01(v*0.5 + 0.5)
			out.setRGB(x, y, value, value, value)
		}
		if cfg.Debug.ShowIQ {
			out.setRGB(x, y, iLine[x]*0.5+0.5, qLine[x]*0.5+0.5, 0.5)
		}
		if cfg.Debug.ShowGrid && (x%gridSpacing == 0 || y%gridSpacing == 0) {
			out.setRGB(x, y, 1.0, 0.1, 0.1)
		}
	}
}
