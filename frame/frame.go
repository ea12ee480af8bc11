// Package frame implements a container format for LZ78 streams.
//
// A raw LZ78 stream has no header and no end marker. A frame adds both,
// along with a checksum of the uncompressed content:
//
//	frame    := magic block* endMark checksum
//	magic    := uint32 0x38375A4C ("LZ78")
//	block    := length payload   (length > 0)
//	endMark  := uint32 0
//	checksum := xxHash32 of the content, seed 0
//
// All integers are little-endian. The payloads of all blocks, concatenated,
// form a single LZ78 stream; the dictionary carries over from one block to
// the next.
package frame

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash"
	"io"

	"github.com/andybalholm/lz78"
	"github.com/pierrec/xxHash/xxHash32"
)

const (
	magic = 0x38375A4C

	// DefaultBlockSize is the block size used when Writer.BlockSize is 0.
	DefaultBlockSize = 1 << 16

	// maxBlockSize bounds the length a Reader will accept for one block.
	maxBlockSize = 1 << 26

	maxConsecutiveEmptyReads = 100
)

var (
	// ErrBadMagic means the input does not start with a frame header.
	ErrBadMagic = errors.New("frame: bad magic number")
	// ErrChecksum means the decompressed content does not match the
	// checksum stored at the end of the frame.
	ErrChecksum = errors.New("frame: content checksum mismatch")
)

// A Writer compresses data into the frame format.
type Writer struct {
	// BlockSize is how many compressed bytes are collected before a block is
	// written. The default is DefaultBlockSize.
	BlockSize int

	dst         io.Writer
	c           *lz78.Compressor
	hasher      hash.Hash32
	blockBuffer bytes.Buffer
	wroteHeader bool
	closed      bool
	err         error
}

// NewWriter returns a Writer that writes a frame to w.
func NewWriter(w io.Writer) *Writer {
	fw := new(Writer)
	fw.Reset(w)
	return fw
}

// Reset discards the Writer's state and prepares it to write a new frame to
// dst. BlockSize is kept.
func (w *Writer) Reset(dst io.Writer) {
	w.dst = dst
	w.blockBuffer.Reset()
	if w.c == nil {
		w.c = lz78.NewCompressor(&w.blockBuffer)
	} else {
		w.c.Reset(&w.blockBuffer)
	}
	w.hasher = xxHash32.New(0)
	w.wroteHeader = false
	w.closed = false
	w.err = nil
}

func (w *Writer) blockSize() int {
	if w.BlockSize <= 0 {
		return DefaultBlockSize
	}
	return w.BlockSize
}

func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	if w.closed {
		return 0, lz78.ErrFinalized
	}
	if err := w.writeHeader(); err != nil {
		w.err = err
		return 0, err
	}
	if _, err := w.c.Compress(p); err != nil {
		w.err = err
		return 0, err
	}
	w.hasher.Write(p)

	if w.blockBuffer.Len() >= w.blockSize() {
		if err := w.writeBlock(); err != nil {
			w.err = err
			return 0, err
		}
	}
	return len(p), nil
}

func (w *Writer) writeHeader() error {
	if w.wroteHeader {
		return nil
	}
	w.wroteHeader = true
	_, err := w.dst.Write(binary.LittleEndian.AppendUint32(nil, magic))
	return err
}

func (w *Writer) writeBlock() error {
	if w.blockBuffer.Len() == 0 {
		return nil
	}
	hdr := binary.LittleEndian.AppendUint32(nil, uint32(w.blockBuffer.Len()))
	if _, err := w.dst.Write(hdr); err != nil {
		return err
	}
	_, err := w.dst.Write(w.blockBuffer.Bytes())
	w.blockBuffer.Reset()
	return err
}

// Close finishes the LZ78 stream and writes the final block, the end mark,
// and the checksum. It does not close the underlying writer.
func (w *Writer) Close() error {
	if w.closed {
		return w.err
	}
	w.closed = true
	if w.err != nil {
		return w.err
	}

	if err := w.writeHeader(); err != nil {
		w.err = err
		return err
	}
	if _, err := w.c.Finalize(); err != nil {
		w.err = err
		return err
	}
	if err := w.writeBlock(); err != nil {
		w.err = err
		return err
	}

	trailer := binary.LittleEndian.AppendUint32(nil, 0)
	trailer = binary.LittleEndian.AppendUint32(trailer, w.hasher.Sum32())
	if _, err := w.dst.Write(trailer); err != nil {
		w.err = err
		return err
	}
	return nil
}

// A Reader decompresses a frame read from an underlying reader.
type Reader struct {
	src     io.Reader
	d       *lz78.Decompressor
	hasher  hash.Hash32
	out     bytes.Buffer
	block   []byte
	started bool
	err     error
}

// NewReader returns a Reader that decompresses the frame read from r.
func NewReader(r io.Reader) *Reader {
	fr := new(Reader)
	fr.Reset(r)
	return fr
}

// Reset discards the Reader's state and prepares it to read a new frame
// from src.
func (r *Reader) Reset(src io.Reader) {
	r.src = progressReader{src}
	r.out.Reset()
	r.hasher = xxHash32.New(0)
	sink := io.MultiWriter(&r.out, r.hasher)
	if r.d == nil {
		r.d = lz78.NewDecompressor(sink)
	} else {
		r.d.Reset(sink)
	}
	r.started = false
	r.err = nil
}

func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for r.out.Len() == 0 && r.err == nil {
		r.err = r.nextBlock()
	}
	if r.out.Len() > 0 {
		return r.out.Read(p)
	}
	return 0, r.err
}

// nextBlock reads and decodes one block. At the end mark it verifies the
// checksum and returns io.EOF.
func (r *Reader) nextBlock() error {
	if !r.started {
		m, err := r.readUint32()
		if err != nil {
			return err
		}
		if m != magic {
			return ErrBadMagic
		}
		r.started = true
	}

	n, err := r.readUint32()
	if err != nil {
		return err
	}
	if n == 0 {
		if _, err := r.d.Finalize(); err != nil {
			return err
		}
		sum, err := r.readUint32()
		if err != nil {
			return err
		}
		if sum != r.hasher.Sum32() {
			return ErrChecksum
		}
		return io.EOF
	}
	if n > maxBlockSize {
		return fmt.Errorf("frame: block length %d exceeds limit %d", n, maxBlockSize)
	}

	if cap(r.block) < int(n) {
		r.block = make([]byte, n)
	}
	r.block = r.block[:n]
	if _, err := io.ReadFull(r.src, r.block); err != nil {
		return unexpectedEOF(err)
	}
	if _, err := r.d.Decompress(r.block); err != nil {
		return fmt.Errorf("frame: %w", err)
	}
	return nil
}

func (r *Reader) readUint32() (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r.src, buf[:]); err != nil {
		return 0, unexpectedEOF(err)
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// A progressReader fails with io.ErrNoProgress instead of spinning on a
// source that keeps returning neither data nor an error.
type progressReader struct {
	r io.Reader
}

func (p progressReader) Read(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}
	for i := 0; i < maxConsecutiveEmptyReads; i++ {
		n, err := p.r.Read(b)
		if n > 0 || err != nil {
			return n, err
		}
	}
	return 0, io.ErrNoProgress
}

// unexpectedEOF reports a frame cut short as io.ErrUnexpectedEOF; a
// well-formed frame always ends with its checksum.
func unexpectedEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
