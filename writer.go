package lz78

import (
	"bytes"
	"io"
)

// A Writer is an io.WriteCloser that compresses the data written to it.
// Close must be called to write the end of the stream.
type Writer struct {
	c      Compressor
	closed bool
}

// NewWriter returns a Writer that writes compressed data to w.
func NewWriter(w io.Writer) *Writer {
	zw := new(Writer)
	zw.Reset(w)
	return zw
}

// Reset discards the Writer's state and makes it equivalent to the result of
// NewWriter(w).
func (w *Writer) Reset(dst io.Writer) {
	w.c.Reset(dst)
	w.closed = false
}

// Write compresses p. Compressed bytes reach the underlying writer in 8-byte
// groups as they fill up, and the rest on Close. On error, the count is the
// length of the prefix of p processed before the failing byte.
func (w *Writer) Write(p []byte) (int, error) {
	n, _, err := w.c.compress(p)
	return n, err
}

// Close flushes the end of the stream. It does not close the underlying
// writer.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	_, err := w.c.Finalize()
	return err
}

// Encode returns the compressed form of src.
func Encode(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	c := NewCompressor(&buf)
	if _, err := c.Compress(src); err != nil {
		return nil, err
	}
	if _, err := c.Finalize(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
