package lz78

import (
	"bytes"
	"io"
)

const (
	readBufferSize = 4096

	// maxConsecutiveEmptyReads is how many times in a row the source may
	// return no data and no error before Read gives up with io.ErrNoProgress.
	maxConsecutiveEmptyReads = 100
)

// A Reader is an io.Reader that decompresses an LZ78 stream read from an
// underlying reader. The stream ends at the underlying reader's EOF.
type Reader struct {
	src io.Reader
	d   Decompressor
	out bytes.Buffer
	buf []byte
	err error
}

// NewReader returns a Reader that decompresses data read from r.
func NewReader(r io.Reader) *Reader {
	zr := new(Reader)
	zr.Reset(r)
	return zr
}

// Reset discards the Reader's state and makes it equivalent to the result of
// NewReader(r).
func (r *Reader) Reset(src io.Reader) {
	r.src = src
	r.out.Reset()
	r.d.Reset(&r.out)
	r.err = nil
	if r.buf == nil {
		r.buf = make([]byte, readBufferSize)
	}
}

func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for r.out.Len() == 0 && r.err == nil {
		r.fill()
	}
	if r.out.Len() > 0 {
		return r.out.Read(p)
	}
	return 0, r.err
}

// fill reads one batch of compressed input and decodes it into r.out.
func (r *Reader) fill() {
	var n int
	var err error
	for i := 0; i < maxConsecutiveEmptyReads; i++ {
		n, err = r.src.Read(r.buf)
		if n > 0 || err != nil {
			break
		}
	}
	if n == 0 && err == nil {
		r.err = io.ErrNoProgress
		return
	}
	if n > 0 {
		if _, derr := r.d.Decompress(r.buf[:n]); derr != nil {
			r.err = derr
			return
		}
	}
	switch {
	case err == io.EOF:
		if _, ferr := r.d.Finalize(); ferr != nil {
			r.err = ferr
			return
		}
		r.err = io.EOF
	case err != nil:
		r.err = err
	}
}

// Decode returns the decompressed form of src.
func Decode(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	d := NewDecompressor(&buf)
	if _, err := d.Decompress(src); err != nil {
		return nil, err
	}
	if _, err := d.Finalize(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
