package lz78

import (
	"bytes"
	"io"

	"github.com/icza/bitio"
)

const (
	// chunkBytes is the size of one eager flush from a bitSink. Bits are held
	// back until more than chunkBytes*8 of them are pending.
	chunkBytes = 8
	chunkBits  = chunkBytes * 8
)

// A bitSink accumulates the code and literal fields of a compressed stream
// and releases them to the byte sink in whole bytes.
type bitSink struct {
	staged bytes.Buffer
	w      *bitio.Writer

	// n counts the pending bits: the staged bytes plus the partial byte
	// cached inside w.
	n int
}

func (s *bitSink) reset() {
	s.staged.Reset()
	s.w = bitio.NewWriter(&s.staged)
	s.n = 0
}

// writeBits appends the low n bits of v, most significant first.
func (s *bitSink) writeBits(v uint64, n uint8) error {
	if n == 0 {
		return nil
	}
	if err := s.w.WriteBits(v&(uint64(1)<<n-1), n); err != nil {
		return err
	}
	s.n += int(n)
	return nil
}

// flush writes the oldest 64 bits to dst as 8 bytes once more than 64 bits
// are pending. It returns the number of bytes written.
func (s *bitSink) flush(dst io.Writer) (int, error) {
	if s.n <= chunkBits {
		return 0, nil
	}
	printf("lz78: flushing %d of %d pending bits", chunkBits, s.n)
	s.n -= chunkBits
	return dst.Write(s.staged.Next(chunkBytes))
}

// drain pads the pending bits with zeros to a byte boundary and writes all
// of them to dst.
func (s *bitSink) drain(dst io.Writer) (int, error) {
	if _, err := s.w.Align(); err != nil {
		return 0, err
	}
	s.n = 0
	if s.staged.Len() == 0 {
		return 0, nil
	}
	n, err := dst.Write(s.staged.Bytes())
	s.staged.Reset()
	return n, err
}
