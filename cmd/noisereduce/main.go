// Command noisereduce runs spectral-subtraction noise reduction over
// a WAV file from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/auleian/noisereduce/engine"
	"github.com/auleian/noisereduce/internal/config"
	"github.com/auleian/noisereduce/internal/wavcodec"
)

// CLI defines the command-line interface: the flags spec.md names
// (--noise-frames, --spectral-floor, --over-subtraction, --makeup-gain)
// plus --preset and --config for picking a baseline configuration.
type CLI struct {
	Input  string `arg:"" type:"existingfile" help:"Input WAV file"`
	Output string `arg:"" help:"Output WAV file"`

	NoiseFrames     *int     `name:"noise-frames" help:"Frames used to estimate the noise profile (default 10, or the preset/config value)"`
	SpectralFloor   *float64 `name:"spectral-floor" help:"Minimum retained magnitude fraction (default 0.1, or the preset/config value)"`
	OverSubtraction *float64 `name:"over-subtraction" help:"Noise over-subtraction factor (default 2.0, or the preset/config value)"`
	MakeupGain      *float64 `name:"makeup-gain" help:"Output gain applied after reconstruction (default 1.5, or the preset/config value)"`

	Preset string `help:"Named preset (light, medium, heavy, extreme); overrides the numeric flags' defaults, not an explicit flag value"`
	Config string `type:"existingfile" help:"YAML file of default parameters"`

	Debug bool `short:"d" help:"Enable debug logging"`
}

func main() {
	cli := &CLI{}
	kong.Parse(cli,
		kong.Name("noisereduce"),
		kong.Description("Spectral-subtraction noise reduction for mono WAV audio"),
		kong.UsageOnError(),
	)

	level := log.InfoLevel
	if cli.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level, Prefix: "noisereduce"})

	cfg, err := resolveConfig(cli)
	if err != nil {
		logger.Fatal("invalid configuration", "err", err)
	}

	if err := run(cli.Input, cli.Output, cfg, logger); err != nil {
		logger.Fatal("processing failed", "err", err)
	}
}

// resolveConfig layers the CLI's configuration sources: a --config
// YAML file or --preset supplies the baseline, and explicitly set
// flags override individual fields on top of it.
func resolveConfig(cli *CLI) (engine.Config, error) {
	base := engine.DefaultConfig()

	switch {
	case cli.Config != "":
		loaded, err := config.Load(cli.Config)
		if err != nil {
			return engine.Config{}, err
		}
		base = loaded
	case cli.Preset != "":
		preset, err := engine.ApplyPreset(cli.Preset)
		if err != nil {
			return engine.Config{}, err
		}
		base = preset
	}

	if cli.NoiseFrames != nil {
		base.NoiseFrames = *cli.NoiseFrames
	}
	if cli.SpectralFloor != nil {
		base.SpectralFloor = *cli.SpectralFloor
	}
	if cli.OverSubtraction != nil {
		base.OverSubtraction = *cli.OverSubtraction
	}
	if cli.MakeupGain != nil {
		base.MakeupGain = *cli.MakeupGain
	}

	return base, base.Validate()
}

func run(inputPath, outputPath string, cfg engine.Config, logger *log.Logger) error {
	inFile, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer inFile.Close()

	samples, sampleRate, err := wavcodec.Decode(inFile)
	if err != nil {
		return fmt.Errorf("decode input: %w", err)
	}
	logger.Info("decoded input", "samples", len(samples), "sample_rate", sampleRate)

	cleaned, err := engine.Process(samples, cfg)
	if err != nil {
		return fmt.Errorf("denoise: %w", err)
	}

	result, err := wavcodec.Encode(cleaned, sampleRate)
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	if err := os.WriteFile(outputPath, result, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Info("wrote output", "path", outputPath, "bytes", len(result))
	return nil
}
