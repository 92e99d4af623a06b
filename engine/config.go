package engine

import (
	"fmt"
	"math"
)

// Config is an immutable set of spectral-subtraction parameters. Zero
// Config is not valid; build one with defaults and override fields, or
// use a preset from Presets.
type Config struct {
	// NoiseFrames is the number of leading frames used to estimate the
	// noise magnitude profile. Must be >= 1.
	NoiseFrames int

	// SpectralFloor is the minimum retained fraction of a bin's original
	// magnitude after subtraction, in [0, 1].
	SpectralFloor float64

	// OverSubtraction multiplies the noise estimate before it is
	// subtracted from each frame's magnitude spectrum.
	OverSubtraction float64

	// MakeupGain scales the reconstructed time-domain signal, absorbing
	// the constant-overlap-add bias the synthesizer does not normalize
	// away on its own.
	MakeupGain float64
}

// DefaultConfig returns the spec's baseline configuration.
func DefaultConfig() Config {
	return Config{
		NoiseFrames:     10,
		SpectralFloor:   0.1,
		OverSubtraction: 2.0,
		MakeupGain:      1.5,
	}
}

// Validate checks every field against the engine's preconditions. It
// returns an error wrapping ErrConfigInvalid describing the first
// violation found.
func (c Config) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"spectral_floor", c.SpectralFloor},
		{"over_subtraction", c.OverSubtraction},
		{"makeup_gain", c.MakeupGain},
	}
	for _, f := range fields {
		name, v := f.name, f.v
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrConfigInvalid, name, v)
		}
		if v < 0 {
			return fmt.Errorf("%w: %s must be non-negative, got %v", ErrConfigInvalid, name, v)
		}
	}
	if c.NoiseFrames < 1 {
		return fmt.Errorf("%w: noise_frames must be >= 1, got %d", ErrConfigInvalid, c.NoiseFrames)
	}
	if c.SpectralFloor > 1 {
		return fmt.Errorf("%w: spectral_floor must be <= 1, got %v", ErrConfigInvalid, c.SpectralFloor)
	}
	return nil
}
