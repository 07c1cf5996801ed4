/*
NAME
  groups.go

DESCRIPTION
  groups.go defines the eight configuration groups that make up a
  rendering Config, with their defaults. Field names, ranges and defaults
  are grounded on the original PipelineConfig this spec was distilled
  from (see DESIGN.md).

LICENSE
  Copyright (C) 2026 the VHSCore Authors. All Rights Reserved.
*/

package config

// DemodulationFilter selects which of the five Y/C separation strategies
// the demodulator uses. It is a closed enum: no other values are valid.
type DemodulationFilter int

const (
	FilterLowpass DemodulationFilter = iota
	FilterBox
	FilterNotch
	FilterComb1D
	FilterComb2D
)

// String implements fmt.Stringer for DemodulationFilter.
func (f DemodulationFilter) String() string {
	switch f {
	case FilterLowpass:
		return "lowpass"
	case FilterBox:
		return "box"
	case FilterNotch:
		return "notch"
	case FilterComb1D:
		return "comb1d"
	case FilterComb2D:
		return "comb2d"
	default:
		return "unknown"
	}
}

// CompositeConfig covers the global composite-encode parameters.
type CompositeConfig struct {
	// SubcarrierPhaseDeg is the global carrier phase offset in degrees.
	SubcarrierPhaseDeg float64 `json:"subcarrier_phase_deg"`

	// BurstAmplitude and ChromaLevel are reserved: accepted for forward
	// compatibility with the controls UI, but not consumed by the core.
	BurstAmplitude float64 `json:"burst_amplitude"`
	ChromaLevel    float64 `json:"chroma_level"`
}

// DefaultCompositeConfig returns the default CompositeConfig.
func DefaultCompositeConfig() CompositeConfig {
	return CompositeConfig{
		SubcarrierPhaseDeg: 0,
		BurstAmplitude:     1,
		ChromaLevel:        1,
	}
}

// ChannelConfig covers the analog-channel degradation parameters.
type ChannelConfig struct {
	LumaBandwidthMHz   float64 `json:"luma_bandwidth_mhz"`
	ChromaBandwidthMHz float64 `json:"chroma_bandwidth_mhz"`
	LumaRinging        float64 `json:"luma_ringing"`
	LumaNoise          float64 `json:"luma_noise"`

	// DotCrawlIntensity is reserved; not consumed by the core.
	DotCrawlIntensity float64 `json:"dot_crawl_intensity"`
}

// DefaultChannelConfig returns the default ChannelConfig.
func DefaultChannelConfig() ChannelConfig {
	return ChannelConfig{
		LumaBandwidthMHz:   4.2,
		ChromaBandwidthMHz: 1.5,
		LumaRinging:        0.2,
		LumaNoise:          0.02,
		DotCrawlIntensity:  0.3,
	}
}

// TapeConfig covers VHS tape-transport degradation parameters.
type TapeConfig struct {
	FlutterRateHz    float64 `json:"flutter_rate_hz"`
	FlutterDepth     float64 `json:"flutter_depth"`
	TrackingError    float64 `json:"tracking_error"`
	DropoutRate      float64 `json:"dropout_rate"`
	HeadSwitchJitter float64 `json:"head_switch_jitter"`
}

// DefaultTapeConfig returns the default TapeConfig.
func DefaultTapeConfig() TapeConfig {
	return TapeConfig{
		FlutterRateHz:    0.8,
		FlutterDepth:     0.15,
		TrackingError:    0.1,
		DropoutRate:      0.02,
		HeadSwitchJitter: 0.05,
	}
}

// ArtifactConfig covers the individually switchable artifact generators:
// head switching, timebase jitter, chroma phase drift, dropouts,
// dynamic crosstalk, and saturation.
type ArtifactConfig struct {
	HeadSwitchEnabled          bool    `json:"head_switch_enabled"`
	HeadSwitchHeight           float64 `json:"head_switch_height"`
	HeadSwitchIntensity        float64 `json:"head_switch_intensity"`
	HeadSwitchRandomness       float64 `json:"head_switch_randomness"`
	HeadSwitchPhaseDistortion  float64 `json:"head_switch_phase_distortion"`
	VerticalJitterEnabled      bool    `json:"vertical_jitter_enabled"`
	VerticalJitterFrequency    float64 `json:"vertical_jitter_frequency"`
	VerticalJitterAmplitude    float64 `json:"vertical_jitter_amplitude"`
	HorizontalTBCEnabled       bool    `json:"horizontal_tbc_enabled"`
	HorizontalTBCFrequency     float64 `json:"horizontal_tbc_frequency"`
	HorizontalTBCAmplitude     float64 `json:"horizontal_tbc_amplitude"`
	ChromaPhaseDriftEnabled    bool    `json:"chroma_phase_drift_enabled"`
	ChromaPhaseDriftRate       float64 `json:"chroma_phase_drift_rate"`
	ChromaPhaseDriftDepth      float64 `json:"chroma_phase_drift_depth"`
	DropoutEnabled             bool    `json:"dropout_enabled"`
	DropoutRate                float64 `json:"dropout_rate"`
	DropoutLength              float64 `json:"dropout_length"`
	CrosstalkDynamic           bool    `json:"crosstalk_dynamic"`
	SaturationEnabled          bool    `json:"saturation_enabled"`
	SaturationStrength         float64 `json:"saturation_strength"`
}

// DefaultArtifactConfig returns the default ArtifactConfig.
func DefaultArtifactConfig() ArtifactConfig {
	return ArtifactConfig{
		HeadSwitchEnabled:         true,
		HeadSwitchHeight:          0.06,
		HeadSwitchIntensity:       0.4,
		HeadSwitchRandomness:      0.4,
		HeadSwitchPhaseDistortion: 0.3,
		VerticalJitterEnabled:     true,
		VerticalJitterFrequency:   0.5,
		VerticalJitterAmplitude:   0.003,
		HorizontalTBCEnabled:      true,
		HorizontalTBCFrequency:    1.2,
		HorizontalTBCAmplitude:    0.002,
		ChromaPhaseDriftEnabled:   true,
		ChromaPhaseDriftRate:      0.15,
		ChromaPhaseDriftDepth:     0.2,
		DropoutEnabled:            true,
		DropoutRate:               0.02,
		DropoutLength:             0.03,
		CrosstalkDynamic:          true,
		SaturationEnabled:         true,
		SaturationStrength:        0.35,
	}
}

// DemodulationConfig selects and tunes the Y/C separation strategy.
type DemodulationConfig struct {
	Filter            DemodulationFilter `json:"filter"`
	BoxKernel         int                `json:"box_kernel"`
	NotchBandwidthMHz float64            `json:"notch_bandwidth_mhz"`
	NotchDepth        float64            `json:"notch_depth"`
	CombStrength      float64            `json:"comb_strength"`
}

// DefaultDemodulationConfig returns the default DemodulationConfig.
func DefaultDemodulationConfig() DemodulationConfig {
	return DemodulationConfig{
		Filter:            FilterLowpass,
		BoxKernel:         3,
		NotchBandwidthMHz: 0.6,
		NotchDepth:        0.5,
		CombStrength:      0.6,
	}
}

// PrecisionConfig tunes the internal numerical fidelity of the pipeline:
// oversampling, resampler taps, and PLL behavior.
type PrecisionConfig struct {
	OversampleFactor        int     `json:"oversample_factor"`
	PreviewOversampleFactor int     `json:"preview_oversample_factor"`
	ResampleTaps            int     `json:"resample_taps"`
	PreviewResampleTaps     int     `json:"preview_resample_taps"`
	FixVerticalStripes      bool    `json:"fix_vertical_stripes"`
	PLLPhaseNoise           float64 `json:"pll_phase_noise"`
	PLLLockSlew             float64 `json:"pll_lock_slew"`
	VHSChromaBandwidthMHz   float64 `json:"vhs_chroma_bandwidth_mhz"`
	ChromaDelayVariation    float64 `json:"chroma_delay_variation"`
}

// DefaultPrecisionConfig returns the default PrecisionConfig.
func DefaultPrecisionConfig() PrecisionConfig {
	return PrecisionConfig{
		OversampleFactor:        2,
		PreviewOversampleFactor: 1,
		ResampleTaps:            16,
		PreviewResampleTaps:     8,
		FixVerticalStripes:      true,
		PLLPhaseNoise:           0.02,
		PLLLockSlew:             0.15,
		VHSChromaBandwidthMHz:   0.8,
		ChromaDelayVariation:    0.001,
	}
}

// DebugConfig controls the diagnostic overlay.
type DebugConfig struct {
	DiagnosticMode bool `json:"diagnostic_mode"`
	ShowComposite  bool `json:"show_composite"`
	ShowIQ         bool `json:"show_iq"`
	ShowGrid       bool `json:"show_grid"`
}

// DefaultDebugConfig returns the default DebugConfig (all overlays off).
func DefaultDebugConfig() DebugConfig {
	return DebugConfig{}
}

// OutputConfig covers output-side parameters. Both fields are reserved:
// accepted for forward compatibility, not consumed by the core.
type OutputConfig struct {
	BitDepth  int     `json:"bit_depth"`
	WetDryMix float64 `json:"wet_dry_mix"`
}

// DefaultOutputConfig returns the default OutputConfig.
func DefaultOutputConfig() OutputConfig {
	return OutputConfig{BitDepth: 10, WetDryMix: 1}
}
