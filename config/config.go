/*
NAME
  config.go

DESCRIPTION
  config.go defines the top-level Config tree and its Validate/Update
  methods, following the same shape as revid/config.Config: a struct of
  named groups, a Variables table driving dynamic updates, and an
  optional Logger for reporting bad-or-unset fields as they're defaulted.

AUTHORS
  (adapted from the revid/config package)

LICENSE
  Copyright (C) 2026 the VHSCore Authors. All Rights Reserved.
*/

// Package config defines the settings tree consumed by the ntsc rendering
// pipeline: composite encode parameters, channel and tape degradation,
// switchable artifacts, demodulation strategy, numerical precision, the
// debug overlay, and reserved output fields.
package config

import (
	"github.com/ausocean/utils/logging"
)

// Config is the full settings tree for a single Render call. A Config is
// immutable across the rendering of one frame: the pipeline never
// mutates the Config it was given.
type Config struct {
	Composite    CompositeConfig
	Channel      ChannelConfig
	Tape         TapeConfig
	Artifacts    ArtifactConfig
	Demodulation DemodulationConfig
	Precision    PrecisionConfig
	Debug        DebugConfig
	Output       OutputConfig

	// Logger, if set, receives a message for every field Validate resets
	// to its default or clamps into range. A nil Logger means Validate
	// still defaults/clamps fields, just silently.
	Logger logging.Logger
}

// DefaultConfig returns a Config with every group at its documented
// default.
func DefaultConfig() Config {
	return Config{
		Composite:    DefaultCompositeConfig(),
		Channel:      DefaultChannelConfig(),
		Tape:         DefaultTapeConfig(),
		Artifacts:    DefaultArtifactConfig(),
		Demodulation: DefaultDemodulationConfig(),
		Precision:    DefaultPrecisionConfig(),
		Debug:        DefaultDebugConfig(),
		Output:       DefaultOutputConfig(),
	}
}

// LogInvalidField reports that a field was bad or unset and has been
// defaulted, the same way revid/config.Config.LogInvalidField does. It is
// a no-op if no Logger is set.
func (c *Config) LogInvalidField(name string, def interface{}) {
	if c.Logger == nil {
		return
	}
	c.Logger.Info(name+" bad or unset, defaulting", name, def)
}

// Validate resets out-of-range fields to a valid value, logging each
// correction via LogInvalidField. It checks only the box kernel (minimum
// 1), the full and preview resample tap counts (minimum 4), the full and
// preview oversample factors (minimum 1) and the demodulation filter (an
// unknown value becomes FilterLowpass); no other field is range-checked.
// It is idempotent: calling
// it twice in a row makes no further changes. Render calls Validate
// internally on a copy of its Config, so callers never need to remember
// to call it themselves.
func (c *Config) Validate() {
	if c.Demodulation.BoxKernel < 1 {
		c.LogInvalidField("Demodulation.BoxKernel", 1)
		c.Demodulation.BoxKernel = 1
	}
	if c.Precision.ResampleTaps < 4 {
		c.LogInvalidField("Precision.ResampleTaps", 4)
		c.Precision.ResampleTaps = 4
	}
	if c.Precision.PreviewResampleTaps < 4 {
		c.LogInvalidField("Precision.PreviewResampleTaps", 4)
		c.Precision.PreviewResampleTaps = 4
	}
	if c.Precision.OversampleFactor < 1 {
		c.LogInvalidField("Precision.OversampleFactor", 1)
		c.Precision.OversampleFactor = 1
	}
	if c.Precision.PreviewOversampleFactor < 1 {
		c.LogInvalidField("Precision.PreviewOversampleFactor", 1)
		c.Precision.PreviewOversampleFactor = 1
	}
	if c.Demodulation.Filter < FilterLowpass || c.Demodulation.Filter > FilterComb2D {
		c.LogInvalidField("Demodulation.Filter", FilterLowpass)
		c.Demodulation.Filter = FilterLowpass
	}
}
