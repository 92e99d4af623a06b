package engine

import "math/cmplx"

// estimateNoiseProfile computes the arithmetic mean of per-bin
// magnitudes over the first min(totalFrames, noiseFrames) frames of
// samples. The profile is computed once, before any subtraction, and
// is never updated afterwards (spec: immutability of the noise
// profile). If totalFrames is 0 the profile is all zeros.
func estimateNoiseProfile(samples []float64, totalFrames, noiseFrames int, window []float64) []float64 {
	profile := make([]float64, NumBins)
	if totalFrames == 0 {
		return profile
	}

	n := noiseFrames
	if n > totalFrames {
		n = totalFrames
	}

	plan := newTransformPlan()
	frame := make([]float64, FrameSize)
	var spectrum []complex128

	for m := 0; m < n; m++ {
		extractFrame(frame, samples, m*HopSize)
		applyWindow(frame, window)
		spectrum = forwardTransform(plan, spectrum, frame)

		for k, c := range spectrum {
			profile[k] += cmplx.Abs(c)
		}
	}

	inv := 1.0 / float64(n)
	for k := range profile {
		profile[k] *= inv
	}
	return profile
}

// applyWindow multiplies frame element-wise by window in place.
func applyWindow(frame, window []float64) {
	for i := range frame {
		frame[i] *= window[i]
	}
}
