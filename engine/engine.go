// Package engine implements spectral-subtraction noise reduction for
// monaural PCM audio: a noise-only prefix estimates a stationary
// noise magnitude spectrum, then every frame's magnitude spectrum is
// attenuated by an over-subtracted, floored estimate of that noise and
// recombined with the original phase before being overlap-added back
// into a time-domain signal.
//
// The package performs no I/O and no logging; it is a pure function of
// its inputs. Collaborators (WAV codecs, HTTP/CLI surfaces, a
// WebAssembly bridge) live outside this package.
package engine

import "fmt"

// Process runs the full spectral-subtraction pipeline over samples
// using cfg, and is the stable stateless entry point: two calls with
// identical samples and cfg produce byte-identical output. An empty
// input returns an empty output with no error. The output length
// always equals len(samples). A panic raised by the transform stage is
// returned as ErrTransformFailure with no partial output.
func Process(samples []float64, cfg Config) (out []float64, err error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return []float64{}, nil
	}
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("%w: %v", ErrTransformFailure, r)
		}
	}()

	l := len(samples)
	total := numFrames(l)
	window := hannWindow()

	noise := estimateNoiseProfile(samples, total, cfg.NoiseFrames, window)

	results, err := processFramesConcurrently(total, func() func(m int) []float64 {
		plan := newTransformPlan()
		frame := make([]float64, FrameSize)
		return func(m int) []float64 {
			extractFrame(frame, samples, m*HopSize)
			applyWindow(frame, window)

			spectrum := forwardTransform(plan, nil, frame)
			subtractFrame(spectrum, noise, cfg.OverSubtraction, cfg.SpectralFloor)

			return inverseTransform(plan, nil, spectrum)
		}
	})
	if err != nil {
		return nil, err
	}

	adder := newOverlapAdder(total)
	for m := 0; m < total; m++ {
		adder.add(m, results[m], window)
	}

	return adder.finish(l, cfg.MakeupGain), nil
}

// ProcessWithConfig is the combined helper named in the engine's
// external-interface contract: it builds a Config from its four raw
// fields, validates it, and runs Process. It is the preferred entry
// point for callers (e.g. a WebAssembly bridge) that want a single
// stateless call without constructing a Config value themselves.
func ProcessWithConfig(samples []float64, noiseFrames int, spectralFloor, overSubtraction, makeupGain float64) ([]float64, error) {
	return Process(samples, Config{
		NoiseFrames:     noiseFrames,
		SpectralFloor:   spectralFloor,
		OverSubtraction: overSubtraction,
		MakeupGain:      makeupGain,
	})
}
