package engine

import "gonum.org/v1/gonum/dsp/fourier"

// newTransformPlan allocates a real-FFT plan for FrameSize. gonum's
// fourier.FFT is not safe for concurrent use: Coefficients and
// Sequence both read and write scratch buffers owned by the receiver,
// so a plan must never be shared between goroutines that might call
// into it at the same time. Callers that run sequentially (the noise
// estimator) may keep one plan for the duration of their call; callers
// that fan work out across goroutines (the frame pool) must give each
// goroutine its own. There is deliberately no package-level memoized
// plan here for that reason — see pool.go.
func newTransformPlan() *fourier.FFT {
	return fourier.NewFFT(FrameSize)
}

// forwardTransform computes the NumBins-bin real-to-complex spectrum
// of a FrameSize-length frame into dst using plan, reusing dst's
// backing array when it already has the right length.
func forwardTransform(plan *fourier.FFT, dst []complex128, frame []float64) []complex128 {
	return plan.Coefficients(dst, frame)
}

// inverseTransform reconstructs FrameSize real samples from a
// NumBins-length spectrum into dst using plan. gonum's Sequence is
// unnormalized, so the result is divided by FrameSize: a
// forwardTransform followed by inverseTransform returns the input.
func inverseTransform(plan *fourier.FFT, dst []float64, spectrum []complex128) []float64 {
	seq := plan.Sequence(dst, spectrum)
	inv := 1.0 / float64(FrameSize)
	for i := range seq {
		seq[i] *= inv
	}
	return seq
}
