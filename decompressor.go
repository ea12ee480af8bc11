package lz78

import (
	"errors"
	"io"
)

type decodeState int

const (
	expectingCode decodeState = iota
	expectingByte
)

// subChunkSize is how many input bytes Decompress adds to the bit source
// before decoding what it can.
const subChunkSize = 8

// A Decompressor decodes an LZ78 stream produced by a Compressor and writes
// the original bytes to an io.Writer.
//
// Compressed input may be split across Decompress calls at any byte
// boundary. Fields that straddle a split are held until the rest arrives.
type Decompressor struct {
	dst  io.Writer
	dict decodeDictionary
	bits bitSource

	state decodeState

	// maxCode is the last code assigned; it sets the width of the next code
	// field.
	maxCode Code
	// last is the code read by the most recent transaction.
	last Code

	scratch []byte
	lit     [1]byte
	err     error
}

// NewDecompressor returns a Decompressor that writes decoded data to w.
func NewDecompressor(w io.Writer) *Decompressor {
	d := new(Decompressor)
	d.Reset(w)
	return d
}

// Reset discards the Decompressor's state and prepares it to decode a new
// stream into w.
func (d *Decompressor) Reset(w io.Writer) {
	d.dst = w
	d.dict.reset()
	d.bits.reset()
	d.state = expectingCode
	d.maxCode = 0
	d.last = 0
	d.err = nil
}

// Decompress consumes the compressed bytes in p and decodes as many
// transactions as they complete. It returns the number of bytes written to
// the underlying writer during the call.
//
// A *BadCodeError means the stream is corrupt. It and any error from the
// underlying writer are returned again on every later call.
func (d *Decompressor) Decompress(p []byte) (int, error) {
	if d.err != nil {
		return 0, d.err
	}
	written := 0
	for len(p) > 0 {
		chunk := p
		if len(chunk) > subChunkSize {
			chunk = chunk[:subChunkSize]
		}
		p = p[len(chunk):]

		d.bits.fill(chunk)
		n, err := d.decode()
		written += n
		if err != nil {
			d.err = err
			return written, err
		}
	}
	return written, nil
}

// decode runs the state machine until the bit source runs dry.
func (d *Decompressor) decode() (int, error) {
	written := 0
	for {
		var n int
		var err error
		switch d.state {
		case expectingCode:
			n, err = d.readCode()
		case expectingByte:
			n, err = d.readByte()
		}
		written += n

		var incomplete incompleteError
		if errors.As(err, &incomplete) {
			return written, nil
		}
		if err != nil {
			return written, err
		}
	}
}

func (d *Decompressor) readCode() (int, error) {
	v, err := d.bits.readBits(d.maxCode.MinBits())
	if err != nil {
		return 0, err
	}
	code := Code(v)
	if !d.dict.contains(code) {
		return 0, &BadCodeError{Code: code}
	}
	printf("lz78: code %d", code)

	d.last = code
	d.state = expectingByte
	if code == 0 {
		return 0, nil
	}
	d.scratch = d.dict.sequence(d.scratch[:0], code)
	return d.dst.Write(d.scratch)
}

func (d *Decompressor) readByte() (int, error) {
	v, err := d.bits.readBits(8)
	if err != nil {
		return 0, err
	}
	b := byte(v)

	if d.maxCode == MaxCode {
		return 0, ErrDictionaryFull
	}
	d.maxCode++
	d.dict.add(d.last, b)
	printf("lz78: new entry %d = <%d>%q", d.maxCode, d.last, b)

	d.state = expectingCode
	d.lit[0] = b
	return d.dst.Write(d.lit[:])
}

// Finalize ends the session. Every complete transaction has already been
// written by Decompress, so there is nothing left to flush and Finalize always
// reports 0 bytes. It returns the error that stopped decoding, if any.
func (d *Decompressor) Finalize() (int, error) {
	err := d.err
	d.err = ErrFinalized
	return 0, err
}
