/*
NAME
  presets.go

DESCRIPTION
  presets.go provides named configuration presets and demodulation-filter
  name parsing, both lifted from the original CLI prototype's
  preset_config/parse_demod functions (see SPEC_FULL.md §5). They are
  pure data/parsing helpers: no file I/O, which stays the responsibility
  of an external preset loader.

LICENSE
  Copyright (C) 2026 the VHSCore Authors. All Rights Reserved.
*/

package config

import "strings"

// Preset names.
const (
	PresetCleanBroadcast   = "clean-broadcast"
	PresetDamagedTape      = "damaged-tape"
	PresetSevereTracking   = "severe-tracking"
	PresetVintageCamcorder = "vintage-camcorder"
	PresetWellWornVHS      = "well-worn-vhs"
)

// Preset returns a DefaultConfig with the named preset's overrides
// applied. An unrecognized name returns the well-worn-VHS preset, the
// same fallback behavior as the original CLI's default arm.
func Preset(name string) Config {
	c := DefaultConfig()
	switch strings.ToLower(name) {
	case PresetCleanBroadcast:
		c.Channel.LumaNoise = 0
		c.Tape.FlutterDepth = 0.02
		c.Artifacts.HeadSwitchIntensity = 0.1
		c.Artifacts.DropoutRate = 0
		c.Demodulation.Filter = FilterComb2D
	case PresetDamagedTape:
		c.Tape.DropoutRate = 0.08
		c.Artifacts.DropoutRate = 0.08
		c.Artifacts.HeadSwitchIntensity = 0.6
		c.Artifacts.SaturationStrength = 0.5
	case PresetSevereTracking:
		c.Tape.TrackingError = 0.4
		c.Artifacts.HorizontalTBCAmplitude = 0.008
		c.Artifacts.VerticalJitterAmplitude = 0.006
		c.Demodulation.Filter = FilterBox
	case PresetVintageCamcorder:
		c.Channel.ChromaBandwidthMHz = 0.8
		c.Precision.VHSChromaBandwidthMHz = 0.6
		c.Artifacts.ChromaPhaseDriftDepth = 0.4
		c.Demodulation.Filter = FilterNotch
	default:
		c.Tape.FlutterDepth = 0.2
		c.Artifacts.ChromaPhaseDriftDepth = 0.3
		c.Demodulation.Filter = FilterComb1D
	}
	return c
}

// ParseDemodulationFilter maps a case-insensitive filter name to a
// DemodulationFilter, defaulting to FilterLowpass for anything
// unrecognized.
func ParseDemodulationFilter(name string) DemodulationFilter {
	switch strings.ToLower(name) {
	case "box":
		return FilterBox
	case "notch":
		return FilterNotch
	case "comb1d":
		return FilterComb1D
	case "comb2d":
		return FilterComb2D
	default:
		return FilterLowpass
	}
}
