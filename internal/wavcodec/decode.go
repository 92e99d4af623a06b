// Package wavcodec decodes and encodes the WAV files the engine's CLI
// and HTTP surfaces exchange with callers. It is a thin wrapper around
// github.com/go-audio/wav and github.com/go-audio/audio: the engine
// itself never sees a byte of WAV and only ever operates on a decoded
// mono float64 sample buffer.
package wavcodec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/wav"
)

// Decode parses a PCM WAV stream and returns mono samples normalized to
// [-1.0, +1.0] plus the sample rate reported in the fmt chunk. Stereo
// input is downmixed to mono by averaging each frame's channels.
func Decode(r io.Reader) ([]float64, int, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, 0, fmt.Errorf("wavcodec: read input: %w", err)
		}
		rs = bytes.NewReader(data)
	}
	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("wavcodec: not a valid WAV file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("wavcodec: decode PCM data: %w", err)
	}

	floatBuf := buf.AsFloatBuffer()
	channels := floatBuf.Format.NumChannels
	if channels < 1 {
		return nil, 0, fmt.Errorf("wavcodec: invalid channel count %d", channels)
	}
	if dec.BitDepth < 2 {
		return nil, 0, fmt.Errorf("wavcodec: invalid bit depth %d", dec.BitDepth)
	}
	fullScale := float64(uint64(1) << (dec.BitDepth - 1))
	for i := range floatBuf.Data {
		floatBuf.Data[i] /= fullScale
	}

	samples := downmix(floatBuf.Data, channels)
	return samples, floatBuf.Format.SampleRate, nil
}

// DecodeBytes is a convenience wrapper over Decode for callers that
// already hold the whole file in memory (e.g. an HTTP multipart part).
func DecodeBytes(data []byte) ([]float64, int, error) {
	return Decode(bytes.NewReader(data))
}

// downmix averages interleaved multi-channel samples down to mono.
func downmix(interleaved []float64, channels int) []float64 {
	if channels == 1 {
		return interleaved
	}
	n := len(interleaved) / channels
	mono := make([]float64, n)
	for i := 0; i < n; i++ {
		var sum float64
		base := i * channels
		for c := 0; c < channels; c++ {
			sum += interleaved[base+c]
		}
		mono[i] = sum / float64(channels)
	}
	return mono
}
