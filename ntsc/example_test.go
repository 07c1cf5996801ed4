/*
NAME
  example_test.go

DESCRIPTION
  example_test.go demonstrates the package's boundary contract: a Frame
  in, a Config, and a Frame out, with an optional progress callback. This
  is the full extent of what an external caller (UI, CLI, batch job) is
  expected to know about this package.

LICENSE
  Copyright (C) 2026 the VHSCore Authors. All Rights Reserved.
*/

package ntsc_test

import (
	"fmt"

	"github.com/kelpline/vhscore/config"
	"github.com/kelpline/vhscore/ntsc"
)

// ExampleRender builds a small uniform frame, runs it through the default
// preset, and reports its output dimensions.
func ExampleRender() {
	in := ntsc.NewFrame(4, 2)
	for i := range in.Data {
		in.Data[i] = 0.5
	}

	out := ntsc.RenderDefault(in, config.DefaultConfig(), 14_318_180)

	fmt.Println(out.Width, out.Height, len(out.Data))
	// Output: 4 2 24
}

// ExampleRenderWithProgress shows the optional per-line progress callback,
// which fires exactly once per scanline in ascending order.
func ExampleRenderWithProgress() {
	in := ntsc.NewFrame(8, 4)

	lines := 0
	ntsc.RenderWithProgress(in, config.DefaultConfig(), 14_318_180, ntsc.DefaultProgressSeed, func(p float64) {
		lines++
	})

	fmt.Println(lines)
	// Output: 4
}
