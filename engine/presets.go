package engine

import "fmt"

// Presets is the fixed mapping from preset name to configuration.
var Presets = map[string]Config{
	"light":   {NoiseFrames: 10, SpectralFloor: 0.25, OverSubtraction: 1.0, MakeupGain: 1.2},
	"medium":  {NoiseFrames: 10, SpectralFloor: 0.10, OverSubtraction: 2.0, MakeupGain: 1.5},
	"heavy":   {NoiseFrames: 10, SpectralFloor: 0.05, OverSubtraction: 3.0, MakeupGain: 1.8},
	"extreme": {NoiseFrames: 10, SpectralFloor: 0.02, OverSubtraction: 4.0, MakeupGain: 2.0},
}

// ApplyPreset looks up a named preset. It fails with ErrUnknownPreset
// for any name outside the fixed set.
func ApplyPreset(name string) (Config, error) {
	cfg, ok := Presets[name]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return cfg, nil
}
