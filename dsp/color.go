/*
NAME
  color.go

DESCRIPTION
  color.go provides sRGB<->linear conversion and the FCC NTSC YIQ matrix
  and its inverse.

LICENSE
  Copyright (C) 2026 the VHSCore Authors. All Rights Reserved.
*/

package dsp

import "math"

// sRGB piecewise breakpoints.
const (
	srgbForwardBreak = 0.04045
	srgbInverseBreak = 0.0031308
)

// SRGBToLinear converts a single sRGB-encoded channel value to linear
// light. Callers are expected to clamp to [0,1] before calling this; the
// pipeline does so on read.
func SRGBToLinear(v float64) float64 {
	if v <= srgbForwardBreak {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// LinearToSRGB is the inverse of SRGBToLinear.
func LinearToSRGB(v float64) float64 {
	if v <= srgbInverseBreak {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}

// YIQ is a luma/chroma sample in NTSC's YIQ color space.
type YIQ struct {
	Y, I, Q float64
}

// RGBToYIQ converts linear RGB to YIQ using the standard FCC NTSC matrix.
func RGBToYIQ(r, g, b float64) YIQ {
	return YIQ{
		Y: 0.299*r + 0.587*g + 0.114*b,
		I: 0.596*r - 0.274*g - 0.322*b,
		Q: 0.211*r - 0.523*g + 0.312*b,
	}
}

// YIQToRGB converts YIQ back to linear RGB using the inverse FCC matrix.
func YIQToRGB(yiq YIQ) (r, g, b float64) {
	r = yiq.Y + 0.956*yiq.I + 0.621*yiq.Q
	g = yiq.Y - 0.272*yiq.I - 0.647*yiq.Q
	b = yiq.Y - 1.106*yiq.I + 1.703*yiq.Q
	return r, g, b
}

// Clamp01 clamps v to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
