/*
NAME
  frame.go

DESCRIPTION
  frame.go defines the Frame type the pipeline reads from and writes to:
  a flat, scanline-major, interleaved RGB float buffer. WrapFrame is the
  one real boundary-validation point in this package; once a Frame
  exists, Render cannot fail.

LICENSE
  Copyright (C) 2026 the VHSCore Authors. All Rights Reserved.
*/

// Package ntsc implements the per-frame NTSC composite-video / VHS
// degradation pipeline: color conversion, composite modulation, channel
// and tape degradation, and demodulation back to RGB.
package ntsc

import (
	"github.com/pkg/errors"

	"github.com/kelpline/vhscore/dsp"
)

// PixelFormat tags the layout of a Frame's data buffer. RGBF32 is the
// only format this pipeline understands.
type PixelFormat int

const (
	// FormatRGBF32 is scanline-major, interleaved RGB, one float32-range
	// value per channel, nominally in [0,1].
	FormatRGBF32 PixelFormat = iota
)

// channelsPerPixel is fixed by FormatRGBF32; there is no other format.
const channelsPerPixel = 3

// ErrBadFormat is returned by NewFrame when given an unsupported pixel
// format.
var ErrBadFormat = errors.New("ntsc: unsupported pixel format")

// ErrBadBufferLength is returned by NewFrame when the data buffer's
// length doesn't match width*height*3.
var ErrBadBufferLength = errors.New("ntsc: data buffer length does not match width*height*3")

// Frame is a width x height image in FormatRGBF32: a flat buffer of
// width*height*3 floats, scanline-major, interleaved RGB. Values are
// nominally in [0,1]; the pipeline clamps on read and write.
type Frame struct {
	Width, Height int
	Format        PixelFormat
	Data          []float64
}

// NewFrame allocates a zeroed Frame of the given dimensions. Zero
// dimensions are legal and produce a zero-length buffer.
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Format: FormatRGBF32,
		Data:   make([]float64, width*height*channelsPerPixel),
	}
}

// WrapFrame validates an existing data buffer against width, height and
// format and wraps it in a Frame without copying. This is the boundary
// where a caller's raw buffer becomes something the pipeline trusts; once
// wrapped, the pipeline performs no further validation.
func WrapFrame(width, height int, format PixelFormat, data []float64) (*Frame, error) {
	if format != FormatRGBF32 {
		return nil, errors.Wrapf(ErrBadFormat, "format %v", format)
	}
	want := width * height * channelsPerPixel
	if len(data) != want {
		return nil, errors.Wrapf(ErrBadBufferLength, "got %d floats, want %d", len(data), want)
	}
	return &Frame{Width: width, Height: height, Format: format, Data: data}, nil
}

// clampedRGB returns the clamped RGB triple at pixel (x, y).
func (f *Frame) clampedRGB(x, y int) (r, g, b float64) {
	idx := (y*f.Width + x) * channelsPerPixel
	return dsp.Clamp01(f.Data[idx]), dsp.Clamp01(f.Data[idx+1]), dsp.Clamp01(f.Data[idx+2])
}

// setRGB writes a clamped RGB triple at pixel (x, y).
func (f *Frame) setRGB(x, y int, r, g, b float64) {
	idx := (y*f.Width + x) * channelsPerPixel
	f.Data[idx] = dsp.Clamp01(r)
	f.Data[idx+1] = dsp.Clamp01(g)
	f.Data[idx+2] = dsp.Clamp01(b)
}
