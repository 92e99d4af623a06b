package engine

import (
	"math"
	"sync"
)

// FrameSize is the number of samples per analysis/synthesis frame.
// Fixed by the spectral-subtraction contract; bin count B is derived
// from it (N/2+1).
const FrameSize = 1024

// HopSize is the stride between consecutive frames: 75% overlap.
const HopSize = FrameSize / 4

// NumBins is the number of complex coefficients a real forward
// transform of length FrameSize produces.
const NumBins = FrameSize/2 + 1

var (
	hannOnce  sync.Once
	hannTable []float64
)

// hannWindow returns the Hann window table for FrameSize, computing it
// once and memoizing it across calls — the engine may be invoked many
// times and the table depends only on the fixed frame size.
//
//	w[n] = 0.5 - 0.5*cos(2*pi*n / (N-1)), 0 <= n < N
func hannWindow() []float64 {
	hannOnce.Do(func() {
		w := make([]float64, FrameSize)
		for n := 0; n < FrameSize; n++ {
			w[n] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(n)/float64(FrameSize-1))
		}
		hannTable = w
	})
	return hannTable
}
