package ntsc

import (
	"sort"
	"testing"

	"gonum.org/v1/gonum/stat"

	"github.com/kelpline/vhscore/config"
)

const broadcastSampleRateHz = 14_318_180.0

func uniformFrame(width, height int, r, g, b float64) *Frame {
	f := NewFrame(width, height)
	for i := 0; i < width*height; i++ {
		f.Data[i*3] = r
		f.Data[i*3+1] = g
		f.Data[i*3+2] = b
	}
	return f
}

func TestRenderOutputShapeMatchesInput(t *testing.T) {
	in := NewFrame(2, 2)
	colors := [][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 1}}
	for i, c := range colors {
		in.Data[i*3], in.Data[i*3+1], in.Data[i*3+2] = c[0], c[1], c[2]
	}

	out := RenderDefault(in, config.DefaultConfig(), broadcastSampleRateHz)

	if got, want := len(out.Data), 12; got != want {
		t.Fatalf("len(out.Data) = %d, want %d", got, want)
	}
	for i, v := range out.Data {
		if v < 0 || v > 1 {
			t.Errorf("out.Data[%d] = %v, want value in [0,1]", i, v)
		}
	}
}

func TestRenderZeroDimensionsProduceEmptyFrame(t *testing.T) {
	in := NewFrame(0, 0)
	out := RenderDefault(in, config.DefaultConfig(), broadcastSampleRateHz)
	if len(out.Data) != 0 {
		t.Fatalf("len(out.Data) = %d, want 0", len(out.Data))
	}
}

// TestRenderAllBlackWithDegradationZeroedStaysBlack exercises the clamp
// guarantee: with every additive degradation term zeroed out, a
// fully-black input must render fully black.
func TestRenderAllBlackWithDegradationZeroedStaysBlack(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Channel.LumaRinging = 0
	cfg.Channel.LumaNoise = 0
	cfg.Tape.FlutterDepth = 0
	cfg.Tape.TrackingError = 0
	cfg.Tape.HeadSwitchJitter = 0
	cfg.Artifacts.HeadSwitchEnabled = false
	cfg.Artifacts.VerticalJitterEnabled = false
	cfg.Artifacts.HorizontalTBCEnabled = false
	cfg.Artifacts.ChromaPhaseDriftEnabled = false
	cfg.Artifacts.DropoutEnabled = false
	cfg.Artifacts.CrosstalkDynamic = false
	cfg.Artifacts.SaturationEnabled = false
	cfg.Precision.PLLPhaseNoise = 0

	in := uniformFrame(16, 16, 0, 0, 0)
	out := RenderDefault(in, cfg, broadcastSampleRateHz)

	for i, v := range out.Data {
		if v != 0 {
			t.Fatalf("out.Data[%d] = %v, want exactly 0", i, v)
			break
		}
	}
}

// TestRenderUniformGrayColumnsStayUniform is the anti-vertical-stripe
// guarantee: with every artifact and noise term disabled (including the
// phase-locked channel ringing/noise and tape flutter) and
// fix_vertical_stripes on, a uniform frame must not develop a systematic
// per-column bias from the resampler or oversampling.
func TestRenderUniformGrayColumnsStayUniform(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Channel.LumaRinging = 0
	cfg.Channel.LumaNoise = 0
	cfg.Tape.FlutterDepth = 0
	cfg.Artifacts.HeadSwitchEnabled = false
	cfg.Artifacts.VerticalJitterEnabled = false
	cfg.Artifacts.HorizontalTBCEnabled = false
	cfg.Artifacts.ChromaPhaseDriftEnabled = false
	cfg.Artifacts.DropoutEnabled = false
	cfg.Artifacts.CrosstalkDynamic = false
	cfg.Artifacts.SaturationEnabled = false
	cfg.Precision.PLLPhaseNoise = 0
	cfg.Precision.FixVerticalStripes = true

	const size = 64
	in := uniformFrame(size, size, 0.5, 0.5, 0.5)
	out := RenderDefault(in, cfg, broadcastSampleRateHz)

	columnMeans := make([]float64, size)
	for x := 0; x < size; x++ {
		col := make([]float64, size)
		for y := 0; y < size; y++ {
			idx := (y*size + x) * 3
			col[y] = (out.Data[idx] + out.Data[idx+1] + out.Data[idx+2]) / 3
		}
		columnMeans[x] = stat.Mean(col, nil)
	}

	sorted := append([]float64(nil), columnMeans...)
	sort.Float64s(sorted)
	median := sorted[len(sorted)/2]

	const maxDeviation = 0.05
	for x, mean := range columnMeans {
		if d := mean - median; d > maxDeviation || d < -maxDeviation {
			t.Errorf("column %d mean %v deviates from median %v by more than %v", x, mean, median, maxDeviation)
		}
	}
}

func TestRenderIsDeterministicForFixedSeed(t *testing.T) {
	cfg := config.Preset(config.PresetDamagedTape)
	in := uniformFrame(20, 10, 0.3, 0.6, 0.2)

	out1 := Render(in, cfg, broadcastSampleRateHz, 42)
	out2 := Render(in, cfg, broadcastSampleRateHz, 42)

	if len(out1.Data) != len(out2.Data) {
		t.Fatalf("length mismatch: %d vs %d", len(out1.Data), len(out2.Data))
	}
	for i := range out1.Data {
		if out1.Data[i] != out2.Data[i] {
			t.Fatalf("out1.Data[%d] = %v, out2.Data[%d] = %v, want identical", i, out1.Data[i], i, out2.Data[i])
		}
	}
}

// TestRenderNearZeroDegradationApproximatesInput checks the low-degradation
// limit: with degradation amplitudes at or near zero and the demodulator
// set to Lowpass, a mid-gray uniform frame survives the round trip with a
// small average deviation.
func TestRenderNearZeroDegradationApproximatesInput(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Channel.LumaRinging = 0
	cfg.Channel.LumaNoise = 0
	cfg.Channel.LumaBandwidthMHz = 8
	cfg.Channel.ChromaBandwidthMHz = 6
	cfg.Tape.FlutterDepth = 0
	cfg.Tape.TrackingError = 0
	cfg.Tape.DropoutRate = 0
	cfg.Artifacts.HeadSwitchEnabled = false
	cfg.Artifacts.VerticalJitterEnabled = false
	cfg.Artifacts.HorizontalTBCEnabled = false
	cfg.Artifacts.ChromaPhaseDriftEnabled = false
	cfg.Artifacts.DropoutEnabled = false
	cfg.Artifacts.SaturationEnabled = false
	cfg.Demodulation.Filter = config.FilterLowpass
	cfg.Precision.OversampleFactor = 4
	cfg.Precision.ResampleTaps = 32
	cfg.Precision.PLLPhaseNoise = 0
	cfg.Precision.VHSChromaBandwidthMHz = 1.5

	const size = 32
	in := uniformFrame(size, size, 0.5, 0.5, 0.5)
	out := RenderDefault(in, cfg, broadcastSampleRateHz)

	deviations := make([]float64, 0, size*size*3)
	for _, v := range out.Data {
		deviations = append(deviations, v-0.5)
	}
	meanDeviation := stat.Mean(deviations, nil)
	if meanDeviation > 0.05 || meanDeviation < -0.05 {
		t.Errorf("mean deviation from mid-gray = %v, want within 0.05", meanDeviation)
	}
}

func TestRenderNotchDemodulatorStaysNearInputLuma(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Demodulation.Filter = config.FilterNotch
	cfg.Demodulation.NotchBandwidthMHz = 1.5
	cfg.Demodulation.NotchDepth = 1.0
	cfg.Artifacts.HeadSwitchEnabled = false
	cfg.Artifacts.DropoutEnabled = false

	in := uniformFrame(32, 32, 0.5, 0.5, 0.5)
	out := RenderDefault(in, cfg, broadcastSampleRateHz)

	lumaSum := 0.0
	for y := 0; y < in.Height; y++ {
		for x := 0; x < in.Width; x++ {
			idx := (y*in.Width + x) * 3
			lumaSum += (out.Data[idx] + out.Data[idx+1] + out.Data[idx+2]) / 3
		}
	}
	lumaMean := lumaSum / float64(in.Width*in.Height)
	if d := lumaMean - 0.5; d > 0.1 || d < -0.1 {
		t.Errorf("mean output luma %v deviates from input mid-gray 0.5 by more than 0.1", lumaMean)
	}
}

func TestRenderWithProgressReportsOnePerLineInOrder(t *testing.T) {
	in := uniformFrame(32, 10, 0.4, 0.4, 0.4)

	var observed []float64
	RenderWithProgress(in, config.DefaultConfig(), broadcastSampleRateHz, DefaultProgressSeed, func(p float64) {
		observed = append(observed, p)
	})

	if len(observed) != 10 {
		t.Fatalf("got %d progress calls, want 10", len(observed))
	}
	for i, p := range observed {
		want := float64(i+1) / 10
		if p != want {
			t.Errorf("observed[%d] = %v, want %v", i, p, want)
		}
	}
	if observed[len(observed)-1] != 1.0 {
		t.Errorf("final progress value = %v, want 1.0", observed[len(observed)-1])
	}
}

func TestRenderDoesNotMutateInput(t *testing.T) {
	in := uniformFrame(8, 8, 0.2, 0.7, 0.9)
	before := append([]float64(nil), in.Data...)

	RenderDefault(in, config.DefaultConfig(), broadcastSampleRateHz)

	for i := range in.Data {
		if in.Data[i] != before[i] {
			t.Fatalf("input mutated at index %d: %v -> %v", i, before[i], in.Data[i])
		}
	}
}
