package wavcodec

import (
	"fmt"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	bitsPerSample = 16
	negativeScale = 0x8000
	positiveScale = 0x7FFF
)

// Encode writes mono samples (nominally in [-1.0, +1.0]) as a 16-bit
// PCM mono WAV file at sampleRate. Samples outside [-1, +1] are
// hard-clipped; negative and positive peaks scale by 0x8000 and
// 0x7FFF respectively, the conventional asymmetric int16 mapping.
func Encode(samples []float64, sampleRate int) ([]byte, error) {
	ints := make([]int, len(samples))
	for i, s := range samples {
		ints[i] = quantize(s)
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           ints,
		SourceBitDepth: bitsPerSample,
	}

	out := newSeekBuffer()
	enc := wav.NewEncoder(out, sampleRate, bitsPerSample, 1, 1)
	if err := enc.Write(buf); err != nil {
		return nil, fmt.Errorf("wavcodec: encode PCM data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("wavcodec: finalize WAV header: %w", err)
	}

	return out.Bytes(), nil
}

// quantize maps a float64 sample in [-1, +1] to its 16-bit integer
// code, hard-clipping values outside that range first.
func quantize(s float64) int {
	if s > 1.0 {
		s = 1.0
	} else if s < -1.0 {
		s = -1.0
	}
	if s >= 0 {
		return int(s*positiveScale + 0.5)
	}
	return int(s*negativeScale - 0.5)
}
