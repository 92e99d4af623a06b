package engine

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// processFramesConcurrently runs newWorker once per goroutine in a
// bounded pool to obtain that goroutine's own per-frame processing
// closure, then applies it to every frame index assigned to that
// goroutine, returning the per-frame time-domain results (as the
// closures return them, before synthesis windowing) in frame order.
//
// newWorker exists, rather than a single shared processFrame, so each
// worker can allocate its own transform plan: gonum's fourier.FFT is
// not safe for concurrent use (Coefficients/Sequence reuse scratch
// buffers owned by the receiver), so no two goroutines may ever call
// into the same plan. Parallelizing here is otherwise safe only
// because the noise profile closed over by newWorker has already been
// fully computed — no worker ever observes a partial profile.
// Overlap-add accumulation itself stays sequential in the caller, in
// frame-index order, so the result is identical regardless of how
// work is scheduled across workers: the spec requires byte-identical
// output for identical input, which a goroutine-order-dependent
// summation (or a transform plan shared and raced across goroutines)
// would not guarantee. Once any worker panics, the remaining workers
// stop doing further transform/subtraction work on the indices still
// in the channel — the caller discards results on error anyway.
func processFramesConcurrently(totalFrames int, newWorker func() func(m int) []float64) (_ [][]float64, transformErr error) {
	results := make([][]float64, totalFrames)
	if totalFrames == 0 {
		return results, nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > totalFrames {
		workers = totalFrames
	}
	if workers < 1 {
		workers = 1
	}

	indices := make(chan int, totalFrames)
	for m := 0; m < totalFrames; m++ {
		indices <- m
	}
	close(indices)

	var (
		wg      sync.WaitGroup
		errOnce sync.Once
		failed  atomic.Bool
	)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			processFrame := newWorker()
			for m := range indices {
				if failed.Load() {
					continue
				}
				func(m int) {
					defer func() {
						if r := recover(); r != nil {
							failed.Store(true)
							errOnce.Do(func() {
								transformErr = fmt.Errorf("%w: %v", ErrTransformFailure, r)
							})
						}
					}()
					results[m] = processFrame(m)
				}(m)
			}
		}()
	}
	wg.Wait()

	return results, transformErr
}
