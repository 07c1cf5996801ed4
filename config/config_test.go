/*
NAME
  config_test.go

DESCRIPTION
  config_test.go tests Config defaults, Validate clamping, Update parsing,
  and the preset table.

AUTHORS
  (adapted from revid/config/config_test.go)

LICENSE
  Copyright (C) 2026 the VHSCore Authors. All Rights Reserved.
*/

package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultConfigValidates(t *testing.T) {
	c := DefaultConfig()
	before := c
	c.Validate()
	if diff := cmp.Diff(before, c); diff != "" {
		t.Errorf("Validate changed an already-valid default config (-before +after):\n%s", diff)
	}
}

func TestValidateClampsBadFields(t *testing.T) {
	c := DefaultConfig()
	c.Demodulation.BoxKernel = 0
	c.Precision.ResampleTaps = 1
	c.Precision.PreviewResampleTaps = 0
	c.Precision.OversampleFactor = 0
	c.Precision.PreviewOversampleFactor = -3
	c.Demodulation.Filter = DemodulationFilter(99)

	c.Validate()

	if c.Demodulation.BoxKernel != 1 {
		t.Errorf("BoxKernel = %d, want 1", c.Demodulation.BoxKernel)
	}
	if c.Precision.ResampleTaps != 4 {
		t.Errorf("ResampleTaps = %d, want 4", c.Precision.ResampleTaps)
	}
	if c.Precision.PreviewResampleTaps != 4 {
		t.Errorf("PreviewResampleTaps = %d, want 4", c.Precision.PreviewResampleTaps)
	}
	if c.Precision.OversampleFactor != 1 {
		t.Errorf("OversampleFactor = %d, want 1", c.Precision.OversampleFactor)
	}
	if c.Precision.PreviewOversampleFactor != 1 {
		t.Errorf("PreviewOversampleFactor = %d, want 1", c.Precision.PreviewOversampleFactor)
	}
	if c.Demodulation.Filter != FilterLowpass {
		t.Errorf("Filter = %v, want FilterLowpass", c.Demodulation.Filter)
	}
}

func TestUpdateAppliesRecognizedVars(t *testing.T) {
	c := DefaultConfig()
	c.Update(map[string]string{
		KeyLumaBandwidthMHz:  "3.0",
		KeyDemodulationFilter: "comb2d",
		KeyDiagnosticMode:    "true",
		"NotARealKey":        "ignored",
	})

	if c.Channel.LumaBandwidthMHz != 3.0 {
		t.Errorf("LumaBandwidthMHz = %v, want 3.0", c.Channel.LumaBandwidthMHz)
	}
	if c.Demodulation.Filter != FilterComb2D {
		t.Errorf("Filter = %v, want FilterComb2D", c.Demodulation.Filter)
	}
	if !c.Debug.DiagnosticMode {
		t.Error("DiagnosticMode = false, want true")
	}
}

func TestUpdateInvalidValueDefaults(t *testing.T) {
	c := DefaultConfig()
	c.Update(map[string]string{KeyBoxKernel: "not-a-number"})
	if c.Demodulation.BoxKernel != 1 {
		t.Errorf("BoxKernel after invalid update+validate = %d, want 1 (validated up from parse failure default 0)", c.Demodulation.BoxKernel)
	}
}

func TestPresetsProduceValidConfig(t *testing.T) {
	for _, name := range []string{
		PresetCleanBroadcast,
		PresetDamagedTape,
		PresetSevereTracking,
		PresetVintageCamcorder,
		PresetWellWornVHS,
		"unknown-preset-name",
	} {
		c := Preset(name)
		c.Validate()
		if c.Precision.OversampleFactor < 1 {
			t.Errorf("preset %q produced invalid config after validate", name)
		}
	}
}

func TestParseDemodulationFilter(t *testing.T) {
	cases := map[string]DemodulationFilter{
		"Box":    FilterBox,
		"notch":  FilterNotch,
		"Comb1D": FilterComb1D,
		"comb2d": FilterComb2D,
		"bogus":  FilterLowpass,
		"":       FilterLowpass,
	}
	for in, want := range cases {
		if got := ParseDemodulationFilter(in); got != want {
			t.Errorf("ParseDemodulationFilter(%q) = %v, want %v", in, got, want)
		}
	}
}
