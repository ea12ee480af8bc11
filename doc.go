// Package lz78 implements LZ78 dictionary compression over a bit-packed
// wire format.
//
// The compressed stream is a sequence of transactions. Each transaction is a
// code naming a previously seen sequence, followed by one literal byte that
// extends it:
//
//	transaction := code(w bits) literal(8 bits)
//
// The code width w is the minimum number of bits needed to hold the largest
// code assigned so far, so it grows as the dictionary does. Bits are packed
// MSB first. A stream may end with a single code and no literal, and the last
// byte is padded with zero bits. There is no header or length prefix; the
// frame package provides a checksummed container for callers that need one.
//
// Both directions are incremental. A Compressor or Decompressor can be fed
// input in chunks of any size, and the output is identical to feeding the
// whole stream at once. Writer and Reader wrap them as an io.WriteCloser and
// an io.Reader.
//
// Codes are 16 bits wide at most. The dictionary is never reset, so inputs
// that need more than MaxCode entries are rejected with ErrDictionaryFull.
package lz78
