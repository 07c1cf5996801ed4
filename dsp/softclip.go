/*
NAME
  softclip.go

DESCRIPTION
  softclip.go provides the odd-symmetric soft-clip saturation curve
  applied as the final stage of tape degradation.

LICENSE
  Copyright (C) 2026 the VHSCore Authors. All Rights Reserved.
*/

package dsp

import "math"

// SoftClip applies x*(1+k)/(1+k*|x|) with k = max(strength, 0). It is
// odd-symmetric, passes through the origin, and is monotone
// non-decreasing for any k >= 0. At k=0 it is the identity function.
func SoftClip(x, strength float64) float64 {
	k := math.Max(strength, 0)
	return (x * (1 + k)) / (1 + k*math.Abs(x))
}
