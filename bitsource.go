package lz78

import (
	"bytes"

	"github.com/icza/bitio"
)

// A bitSource holds compressed input until the decoder has enough bits to
// read a whole field.
type bitSource struct {
	raw bytes.Buffer
	r   *bitio.Reader
	n   int // unread bits
}

func (s *bitSource) reset() {
	s.raw.Reset()
	s.r = bitio.NewReader(&s.raw)
	s.n = 0
}

// fill appends p to the pending input.
func (s *bitSource) fill(p []byte) {
	s.raw.Write(p)
	s.n += 8 * len(p)
}

// readBits consumes n bits and returns them as a big-endian integer. If fewer
// than n bits are pending it consumes nothing and returns an
// incompleteError.
func (s *bitSource) readBits(n uint8) (uint64, error) {
	if n == 0 {
		return 0, nil
	}
	if s.n < int(n) {
		return 0, incompleteError{need: int(n) - s.n}
	}
	v, err := s.r.ReadBits(n)
	if err != nil {
		return 0, err
	}
	s.n -= int(n)
	return v, nil
}
