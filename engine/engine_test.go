package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// xorshiftNoise generates deterministic pseudo-white-noise samples in
// [-amplitude, amplitude], matching the teacher's reproducible-noise
// approach (no math/rand dependency on a seed the test doesn't pin).
func xorshiftNoise(n int, amplitude float64, seed uint32) []float64 {
	samples := make([]float64, n)
	state := seed
	for i := range samples {
		state ^= state << 13
		state ^= state >> 17
		state ^= state << 5
		samples[i] = (float64(int32(state)) / float64(math.MaxInt32)) * amplitude
	}
	return samples
}

func rms(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	var sum float64
	for _, v := range x {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(x)))
}

func TestProcessAllZeroInput(t *testing.T) {
	samples := make([]float64, 44100)
	out, err := Process(samples, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, out, len(samples))
	for i, v := range out {
		require.Zero(t, v, "sample %d", i)
	}
}

func TestProcessEmptyInput(t *testing.T) {
	out, err := Process(nil, DefaultConfig())
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestProcessLengthPreservation(t *testing.T) {
	for _, l := range []int{0, 1, 100, FrameSize - 1, FrameSize, FrameSize + 1, 44100} {
		samples := xorshiftNoise(l, 0.3, 7)
		out, err := Process(samples, DefaultConfig())
		require.NoError(t, err)
		require.Len(t, out, l)
	}
}

func TestProcessWhiteNoiseReduction(t *testing.T) {
	samples := xorshiftNoise(44100, 0.5, 12345)
	out, err := Process(samples, DefaultConfig())
	require.NoError(t, err)

	inEnergy := rms(samples) * rms(samples)
	outEnergy := rms(out) * rms(out)

	t.Logf("input energy=%.6f output energy=%.6f ratio=%.4f", inEnergy, outEnergy, outEnergy/inEnergy)
	require.Less(t, outEnergy/inEnergy, 0.25, "expected at least 6 dB noise reduction")
}

func TestProcessToneRetainedOverNoise(t *testing.T) {
	const sampleRate = 44100
	noiseLen := 4410
	noise := xorshiftNoise(2560, 0.3, 999)
	pad := make([]float64, noiseLen-len(noise))
	samples := append(append([]float64{}, noise...), pad...)

	toneLen := 1 * sampleRate
	for i := 0; i < toneLen; i++ {
		samples = append(samples, 0.5*math.Sin(2*math.Pi*1000*float64(i)/float64(sampleRate)))
	}

	cfg := Config{NoiseFrames: 10, SpectralFloor: 0.1, OverSubtraction: 2.0, MakeupGain: 1.0}
	out, err := Process(samples, cfg)
	require.NoError(t, err)
	require.Len(t, out, len(samples))

	l := len(samples)
	steadyStart := 3 * FrameSize
	steadyEnd := l - FrameSize
	require.Greater(t, steadyEnd, steadyStart)

	var peakIn, peakOut float64
	for i := steadyStart; i < steadyEnd; i++ {
		if math.Abs(samples[i]) > peakIn {
			peakIn = math.Abs(samples[i])
		}
		if math.Abs(out[i]) > peakOut {
			peakOut = math.Abs(out[i])
		}
	}
	t.Logf("peak in=%.4f peak out=%.4f ratio=%.4f", peakIn, peakOut, peakOut/peakIn)
	require.GreaterOrEqual(t, peakOut/peakIn, 0.70)

	noiseEnergyIn := rms(samples[:len(noise)])
	noiseEnergyOut := rms(out[:len(noise)])
	reductionDB := 20 * math.Log10(noiseEnergyOut/noiseEnergyIn)
	t.Logf("noise reduction: %.2f dB", reductionDB)
	require.LessOrEqual(t, reductionDB, -10.0)
}

func TestApplyPresetHeavy(t *testing.T) {
	cfg, err := ApplyPreset("heavy")
	require.NoError(t, err)
	require.Equal(t, Config{NoiseFrames: 10, SpectralFloor: 0.05, OverSubtraction: 3.0, MakeupGain: 1.8}, cfg)
}

func TestApplyPresetUnknown(t *testing.T) {
	_, err := ApplyPreset("nonexistent")
	require.ErrorIs(t, err, ErrUnknownPreset)
}

func TestProcessInvalidConfig(t *testing.T) {
	cfg := Config{NoiseFrames: 0, SpectralFloor: 0.1, OverSubtraction: 2.0, MakeupGain: 1.5}
	_, err := Process(make([]float64, 1000), cfg)
	require.ErrorIs(t, err, ErrConfigInvalid)
}

func TestProcessInvalidConfigSpectralFloorTooHigh(t *testing.T) {
	cfg := Config{NoiseFrames: 10, SpectralFloor: 1.5, OverSubtraction: 2.0, MakeupGain: 1.5}
	_, err := Process(make([]float64, 1000), cfg)
	require.ErrorIs(t, err, ErrConfigInvalid)
}

func TestProcessMakeupGainLinearity(t *testing.T) {
	samples := xorshiftNoise(44100, 0.4, 42)
	cfg1 := Config{NoiseFrames: 10, SpectralFloor: 0.1, OverSubtraction: 2.0, MakeupGain: 1.0}
	cfg2 := cfg1
	cfg2.MakeupGain = 2.0

	out1, err := Process(samples, cfg1)
	require.NoError(t, err)
	out2, err := Process(samples, cfg2)
	require.NoError(t, err)

	require.Equal(t, len(out1), len(out2))
	for i := range out1 {
		require.Equal(t, out1[i]*2.0, out2[i], "sample %d", i)
	}
}

func TestProcessDeterministic(t *testing.T) {
	samples := xorshiftNoise(20000, 0.4, 7331)
	out1, err := Process(samples, DefaultConfig())
	require.NoError(t, err)
	out2, err := Process(samples, DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, out1, out2)
}

func TestProcessFloorLowerBound(t *testing.T) {
	samples := xorshiftNoise(20000, 0.6, 3)
	cfg := Config{NoiseFrames: 10, SpectralFloor: 0.2, OverSubtraction: 2.0, MakeupGain: 1.0}

	total := numFrames(len(samples))
	window := hannWindow()
	noise := estimateNoiseProfile(samples, total, cfg.NoiseFrames, window)

	plan := newTransformPlan()
	frame := make([]float64, FrameSize)
	for m := 0; m < total; m++ {
		extractFrame(frame, samples, m*HopSize)
		windowed := append([]float64{}, frame...)
		applyWindow(windowed, window)

		original := forwardTransform(plan, nil, windowed)
		magBefore := make([]float64, len(original))
		for k, c := range original {
			magBefore[k] = cmplxAbs(c)
		}

		spectrum := append([]complex128{}, original...)
		subtractFrame(spectrum, noise, cfg.OverSubtraction, cfg.SpectralFloor)

		for k, c := range spectrum {
			require.GreaterOrEqual(t, cmplxAbs(c), cfg.SpectralFloor*magBefore[k]-1e-9, "frame %d bin %d", m, k)
			require.LessOrEqual(t, cmplxAbs(c), magBefore[k]+1e-9, "frame %d bin %d", m, k)
		}
	}
}

func cmplxAbs(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}

func TestProcessExtremeSuppressionIsZero(t *testing.T) {
	samples := xorshiftNoise(10000, 0.5, 55)
	cfg := Config{NoiseFrames: 10, SpectralFloor: 0, OverSubtraction: 1e6, MakeupGain: 1.0}
	out, err := Process(samples, cfg)
	require.NoError(t, err)
	for i, v := range out {
		require.InDelta(t, 0, v, 1e-9, "sample %d", i)
	}
}

func TestProcessShortInputZeroPadded(t *testing.T) {
	samples := xorshiftNoise(FrameSize/2, 0.3, 9)
	out, err := Process(samples, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, out, len(samples))
}

func TestProcessNoiseFramesExceedsAvailable(t *testing.T) {
	samples := xorshiftNoise(500, 0.3, 11)
	cfg := DefaultConfig()
	cfg.NoiseFrames = 50
	out, err := Process(samples, cfg)
	require.NoError(t, err)
	require.Len(t, out, len(samples))
}

func TestStatefulEngineMatchesStateless(t *testing.T) {
	samples := xorshiftNoise(30000, 0.4, 2024)

	e := NewEngine()
	require.NoError(t, e.ApplyPreset("heavy"))
	stateful, err := e.Process(samples)
	require.NoError(t, err)

	cfg, err := ApplyPreset("heavy")
	require.NoError(t, err)
	stateless, err := Process(samples, cfg)
	require.NoError(t, err)

	require.Equal(t, stateless, stateful)
}
