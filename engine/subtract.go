package engine

import "math/cmplx"

// subtractFrame applies per-bin magnitude spectral subtraction to
// spectrum in place, using phase taken directly from the noisy bin:
//
//	mag'  = max(|X[k]| - overSubtraction*noise[k], spectralFloor*|X[k]|)
//	X'[k] = mag' * exp(i*arg(X[k]))
//
// The rule applies identically to every bin including DC and Nyquist,
// whose phase is 0 or pi and is preserved by cmplx.Rect.
func subtractFrame(spectrum []complex128, noise []float64, overSubtraction, spectralFloor float64) {
	for k, x := range spectrum {
		mag := cmplx.Abs(x)
		phase := cmplx.Phase(x)

		sub := mag - overSubtraction*noise[k]
		floor := spectralFloor * mag
		if sub < floor {
			sub = floor
		}

		spectrum[k] = cmplx.Rect(sub, phase)
	}
}
