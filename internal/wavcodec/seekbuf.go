package wavcodec

import (
	"errors"
	"io"
)

// seekBuffer is a minimal in-memory io.WriteSeeker backed by a []byte.
// github.com/go-audio/wav's Encoder requires seek support (it rewrites
// the RIFF/data chunk sizes after streaming samples), but an HTTP
// response body or CLI output buffer is not a file — this adapter lets
// the encoder write into memory instead of a temp file.
type seekBuffer struct {
	buf []byte
	pos int
}

func newSeekBuffer() *seekBuffer {
	return &seekBuffer{}
}

func (s *seekBuffer) Write(p []byte) (int, error) {
	end := s.pos + len(p)
	if end > len(s.buf) {
		grown := make([]byte, end)
		copy(grown, s.buf)
		s.buf = grown
	}
	copy(s.buf[s.pos:end], p)
	s.pos = end
	return len(p), nil
}

func (s *seekBuffer) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		base = int64(s.pos)
	case io.SeekEnd:
		base = int64(len(s.buf))
	default:
		return 0, errors.New("wavcodec: invalid whence")
	}

	newPos := base + offset
	if newPos < 0 {
		return 0, errors.New("wavcodec: negative seek position")
	}
	s.pos = int(newPos)
	return newPos, nil
}

func (s *seekBuffer) Bytes() []byte {
	return s.buf
}
