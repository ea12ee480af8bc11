package lz78

import "io"

// A Compressor encodes a byte stream into LZ78 transactions and writes the
// packed result to an io.Writer.
//
// Input may be passed to Compress in any number of calls; a match that is
// still growing at the end of one call continues into the next. Finalize must
// be called to flush the last bits.
type Compressor struct {
	dst  io.Writer
	dict encodeDictionary
	bits bitSink

	// maxCode is the last code assigned.
	maxCode Code

	// match is the code of the bytes consumed since the last transaction,
	// and matchLen their count. An empty match has code 0.
	match    Code
	matchLen int

	err error
}

// NewCompressor returns a Compressor that writes compressed data to w.
func NewCompressor(w io.Writer) *Compressor {
	c := new(Compressor)
	c.Reset(w)
	return c
}

// Reset discards the Compressor's state and prepares it to write a new
// stream to w.
func (c *Compressor) Reset(w io.Writer) {
	c.dst = w
	c.dict.reset()
	c.bits.reset()
	c.maxCode = 0
	c.match = 0
	c.matchLen = 0
	c.err = nil
}

// Compress consumes p. It returns the number of compressed bytes written to
// the underlying writer during the call, which may be zero while output is
// still buffered.
//
// An error from the underlying writer is returned as is, and the Compressor
// returns it again on every later call.
func (c *Compressor) Compress(p []byte) (int, error) {
	_, written, err := c.compress(p)
	return written, err
}

// compress is Compress, also reporting how many bytes of p were taken in
// before an error stopped it.
func (c *Compressor) compress(p []byte) (consumed, written int, err error) {
	if c.err != nil {
		return 0, 0, c.err
	}
	for i, b := range p {
		n, err := c.eatByte(b)
		written += n
		if err != nil {
			c.err = err
			return i, written, err
		}
	}
	return len(p), written, nil
}

func (c *Compressor) eatByte(b byte) (int, error) {
	printf("lz78: reading %08b", b)
	if next, ok := c.dict.lookup(c.match, b); ok {
		c.match = next
		c.matchLen++
		return 0, nil
	}

	if c.maxCode == MaxCode {
		return 0, ErrDictionaryFull
	}
	c.maxCode++
	c.dict.insert(c.match, b, c.maxCode)
	printf("lz78: new entry %d = <%d>%q", c.maxCode, c.match, b)

	// The code field is sized for the dictionary as it was before this
	// entry, which is what the decoder sees when it reads it.
	prefix := c.match
	c.match, c.matchLen = 0, 0
	written, err := c.emit(uint64(prefix), (c.maxCode - 1).MinBits())
	if err != nil {
		return written, err
	}
	n, err := c.emit(uint64(b), 8)
	return written + n, err
}

func (c *Compressor) emit(v uint64, width uint8) (int, error) {
	if err := c.bits.writeBits(v, width); err != nil {
		return 0, err
	}
	return c.bits.flush(c.dst)
}

// Finalize writes the code of any pending match, pads the stream to a byte
// boundary, and writes everything still buffered. It returns the number of
// bytes written by the final drain. An 8-byte group flushed by the trailing
// code reaches the writer but is not counted. The Compressor accepts no more
// input afterward unless it is Reset.
func (c *Compressor) Finalize() (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	c.err = ErrFinalized

	if c.matchLen > 0 {
		// The trailing code uses the current width, not the width before
		// the last entry: the decoder reads it after counting that entry.
		printf("lz78: finalizing with pending match <%d>", c.match)
		if _, err := c.emit(uint64(c.match), c.maxCode.MinBits()); err != nil {
			c.err = err
			return 0, err
		}
	}

	n, err := c.bits.drain(c.dst)
	if err != nil {
		c.err = err
	}
	return n, err
}
