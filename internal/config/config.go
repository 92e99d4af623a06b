// Package config loads optional YAML defaults files for the CLI (its
// --config flag), so an operator can pin a site-specific configuration
// without repeating flags on every call. The HTTP server does not read
// a defaults file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/auleian/noisereduce/engine"
)

// File is the on-disk shape of a defaults file. Any field may be
// omitted, in which case engine.DefaultConfig's value for it is used
// instead:
//
//	noise_frames: 10
//	spectral_floor: 0.1
//	over_subtraction: 2.0
//	makeup_gain: 1.5
type File struct {
	NoiseFrames     *int     `yaml:"noise_frames"`
	SpectralFloor   *float64 `yaml:"spectral_floor"`
	OverSubtraction *float64 `yaml:"over_subtraction"`
	MakeupGain      *float64 `yaml:"makeup_gain"`
}

// Load reads and validates a YAML defaults file at path, layering its
// fields over engine.DefaultConfig and returning the merged result.
func Load(path string) (engine.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return engine.Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return engine.Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg := engine.DefaultConfig()
	if f.NoiseFrames != nil {
		cfg.NoiseFrames = *f.NoiseFrames
	}
	if f.SpectralFloor != nil {
		cfg.SpectralFloor = *f.SpectralFloor
	}
	if f.OverSubtraction != nil {
		cfg.OverSubtraction = *f.OverSubtraction
	}
	if f.MakeupGain != nil {
		cfg.MakeupGain = *f.MakeupGain
	}
	if err := cfg.Validate(); err != nil {
		return engine.Config{}, err
	}
	return cfg, nil
}
