package engine

// numFrames returns the number of frames of size FrameSize, hop
// HopSize, needed to cover a buffer of length L: M = ceil(max(0,
// L-N)/H) + 1 when L >= N, else 1 (a single zero-padded frame). A
// zero-length buffer still yields one frame; callers handle L==0
// before framing by returning empty output directly.
func numFrames(l int) int {
	if l < FrameSize {
		return 1
	}
	rem := l - FrameSize
	return (rem+HopSize-1)/HopSize + 1
}

// extractFrame copies FrameSize samples from src starting at `start`
// into dst (which must have length FrameSize). Indices beyond len(src)
// are read as zero (tail padding); there is no head padding.
func extractFrame(dst, src []float64, start int) {
	for i := range dst {
		dst[i] = 0
	}
	if start >= len(src) {
		return
	}
	end := start + FrameSize
	if end > len(src) {
		end = len(src)
	}
	copy(dst, src[start:end])
}
