/*
NAME
  variables.go

DESCRIPTION
  variables.go provides the Variables table driving Config.Update: a list
  of name/parse/validate triples, the same shape as revid/config's
  Variables table, letting an external caller apply string-keyed
  overrides (as would arrive from a preset file or a UI control) onto a
  Config without that caller needing to know Go's reflection API.

AUTHORS
  (adapted from the revid/config package)

LICENSE
  Copyright (C) 2026 the VHSCore Authors. All Rights Reserved.
*/

package config

import (
	"strconv"
)

// Variable names, dotted by group to match the Config field path.
const (
	KeySubcarrierPhaseDeg       = "Composite.SubcarrierPhaseDeg"
	KeyLumaBandwidthMHz         = "Channel.LumaBandwidthMHz"
	KeyChromaBandwidthMHz       = "Channel.ChromaBandwidthMHz"
	KeyLumaRinging              = "Channel.LumaRinging"
	KeyLumaNoise                = "Channel.LumaNoise"
	KeyFlutterRateHz            = "Tape.FlutterRateHz"
	KeyFlutterDepth             = "Tape.FlutterDepth"
	KeyTrackingError            = "Tape.TrackingError"
	KeyTapeDropoutRate          = "Tape.DropoutRate"
	KeyHeadSwitchJitter         = "Tape.HeadSwitchJitter"
	KeyHeadSwitchEnabled        = "Artifacts.HeadSwitchEnabled"
	KeyHeadSwitchHeight         = "Artifacts.HeadSwitchHeight"
	KeyHeadSwitchIntensity      = "Artifacts.HeadSwitchIntensity"
	KeyDropoutEnabled           = "Artifacts.DropoutEnabled"
	KeyArtifactDropoutRate      = "Artifacts.DropoutRate"
	KeySaturationEnabled        = "Artifacts.SaturationEnabled"
	KeySaturationStrength       = "Artifacts.SaturationStrength"
	KeyDemodulationFilter       = "Demodulation.Filter"
	KeyBoxKernel                = "Demodulation.BoxKernel"
	KeyOversampleFactor         = "Precision.OversampleFactor"
	KeyResampleTaps             = "Precision.ResampleTaps"
	KeyFixVerticalStripes       = "Precision.FixVerticalStripes"
	KeyDiagnosticMode           = "Debug.DiagnosticMode"
)

// Variables describes every dynamically-settable field in Config: its
// name, a function updating that field in a Config from a string, and an
// optional function validating/clamping the field afterward.
var Variables = []struct {
	Name     string
	Update   func(*Config, string)
	Validate func(*Config)
}{
	{
		Name:   KeySubcarrierPhaseDeg,
		Update: func(c *Config, v string) { c.Composite.SubcarrierPhaseDeg = parseFloat(KeySubcarrierPhaseDeg, v, c) },
	},
	{
		Name:   KeyLumaBandwidthMHz,
		Update: func(c *Config, v string) { c.Channel.LumaBandwidthMHz = parseFloat(KeyLumaBandwidthMHz, v, c) },
	},
	{
		Name:   KeyChromaBandwidthMHz,
		Update: func(c *Config, v string) { c.Channel.ChromaBandwidthMHz = parseFloat(KeyChromaBandwidthMHz, v, c) },
	},
	{
		Name:   KeyLumaRinging,
		Update: func(c *Config, v string) { c.Channel.LumaRinging = parseFloat(KeyLumaRinging, v, c) },
	},
	{
		Name:   KeyLumaNoise,
		Update: func(c *Config, v string) { c.Channel.LumaNoise = parseFloat(KeyLumaNoise, v, c) },
	},
	{
		Name:   KeyFlutterRateHz,
		Update: func(c *Config, v string) { c.Tape.FlutterRateHz = parseFloat(KeyFlutterRateHz, v, c) },
	},
	{
		Name:   KeyFlutterDepth,
		Update: func(c *Config, v string) { c.Tape.FlutterDepth = parseFloat(KeyFlutterDepth, v, c) },
	},
	{
		Name:   KeyTrackingError,
		Update: func(c *Config, v string) { c.Tape.TrackingError = parseFloat(KeyTrackingError, v, c) },
	},
	{
		Name:   KeyTapeDropoutRate,
		Update: func(c *Config, v string) { c.Tape.DropoutRate = parseFloat(KeyTapeDropoutRate, v, c) },
	},
	{
		Name:   KeyHeadSwitchJitter,
		Update: func(c *Config, v string) { c.Tape.HeadSwitchJitter = parseFloat(KeyHeadSwitchJitter, v, c) },
	},
	{
		Name:   KeyHeadSwitchEnabled,
		Update: func(c *Config, v string) { c.Artifacts.HeadSwitchEnabled = parseBool(KeyHeadSwitchEnabled, v, c) },
	},
	{
		Name:   KeyHeadSwitchHeight,
		Update: func(c *Config, v string) { c.Artifacts.HeadSwitchHeight = parseFloat(KeyHeadSwitchHeight, v, c) },
	},
	{
		Name:   KeyHeadSwitchIntensity,
		Update: func(c *Config, v string) { c.Artifacts.HeadSwitchIntensity = parseFloat(KeyHeadSwitchIntensity, v, c) },
	},
	{
		Name:   KeyDropoutEnabled,
		Update: func(c *Config, v string) { c.Artifacts.DropoutEnabled = parseBool(KeyDropoutEnabled, v, c) },
	},
	{
		Name:   KeyArtifactDropoutRate,
		Update: func(c *Config, v string) { c.Artifacts.DropoutRate = parseFloat(KeyArtifactDropoutRate, v, c) },
	},
	{
		Name:   KeySaturationEnabled,
		Update: func(c *Config, v string) { c.Artifacts.SaturationEnabled = parseBool(KeySaturationEnabled, v, c) },
	},
	{
		Name:   KeySaturationStrength,
		Update: func(c *Config, v string) { c.Artifacts.SaturationStrength = parseFloat(KeySaturationStrength, v, c) },
	},
	{
		Name: KeyDemodulationFilter,
		Update: func(c *Config, v string) {
			c.Demodulation.Filter = ParseDemodulationFilter(v)
		},
	},
	{
		Name:   KeyBoxKernel,
		Update: func(c *Config, v string) { c.Demodulation.BoxKernel = parseInt(KeyBoxKernel, v, c) },
		Validate: func(c *Config) {
			if c.Demodulation.BoxKernel < 1 {
				c.LogInvalidField(KeyBoxKernel, 1)
				c.Demodulation.BoxKernel = 1
			}
		},
	},
	{
		Name:   KeyOversampleFactor,
		Update: func(c *Config, v string) { c.Precision.OversampleFactor = parseInt(KeyOversampleFactor, v, c) },
		Validate: func(c *Config) {
			if c.Precision.OversampleFactor < 1 {
				c.LogInvalidField(KeyOversampleFactor, 1)
				c.Precision.OversampleFactor = 1
			}
		},
	},
	{
		Name:   KeyResampleTaps,
		Update: func(c *Config, v string) { c.Precision.ResampleTaps = parseInt(KeyResampleTaps, v, c) },
		Validate: func(c *Config) {
			if c.Precision.ResampleTaps < 4 {
				c.LogInvalidField(KeyResampleTaps, 4)
				c.Precision.ResampleTaps = 4
			}
		},
	},
	{
		Name:   KeyFixVerticalStripes,
		Update: func(c *Config, v string) { c.Precision.FixVerticalStripes = parseBool(KeyFixVerticalStripes, v, c) },
	},
	{
		Name:   KeyDiagnosticMode,
		Update: func(c *Config, v string) { c.Debug.DiagnosticMode = parseBool(KeyDiagnosticMode, v, c) },
	},
}

// Update takes a map of variable names to string values and applies each
// recognized entry to c, then re-validates. Unrecognized keys are
// ignored, the same way revid/config.Config.Update behaves.
func (c *Config) Update(vars map[string]string) {
	for _, variable := range Variables {
		if v, ok := vars[variable.Name]; ok {
			variable.Update(c, v)
			if variable.Validate != nil {
				variable.Validate(c)
			}
		}
	}
}

func parseFloat(name, v string, c *Config) float64 {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		c.LogInvalidField(name, 0.0)
		return 0
	}
	return f
}

func parseInt(name, v string, c *Config) int {
	i, err := strconv.Atoi(v)
	if err != nil {
		c.LogInvalidField(name, 0)
		return 0
	}
	return i
}

func parseBool(name, v string, c *Config) bool {
	b, err := strconv.ParseBool(v)
	if err != nil {
		c.LogInvalidField(name, false)
		return false
	}
	return b
}
