package lz78

import (
	"errors"
	"strconv"
)

// A Transaction is the basic unit of LZ78 compression: the code of a
// sequence already in the dictionary, and the literal byte that extends it
// into a new entry.
type Transaction struct {
	Code    Code
	Literal byte

	// Trailing marks the code that may close a stream. It has no literal
	// and adds no dictionary entry.
	Trailing bool
}

// Scan parses the compressed stream in src, appends its transactions to dst,
// and returns dst. It applies the same field widths and code checks as a
// Decompressor but does not expand any sequences.
func Scan(dst []Transaction, src []byte) ([]Transaction, error) {
	var bits bitSource
	bits.reset()
	bits.fill(src)

	var maxCode Code
	for {
		v, err := bits.readBits(maxCode.MinBits())
		if err != nil {
			return dst, endOfScan(err)
		}
		code := Code(v)
		if code > maxCode {
			return dst, &BadCodeError{Code: code}
		}

		lit, err := bits.readBits(8)
		if err != nil {
			// Code 0 with no literal is padding, not a trailing code.
			if code != 0 {
				dst = append(dst, Transaction{Code: code, Trailing: true})
			}
			return dst, endOfScan(err)
		}
		if maxCode == MaxCode {
			return dst, ErrDictionaryFull
		}
		maxCode++
		dst = append(dst, Transaction{Code: code, Literal: byte(lit)})
	}
}

// endOfScan turns running out of input into a clean stop.
func endOfScan(err error) error {
	var incomplete incompleteError
	if errors.As(err, &incomplete) {
		return nil
	}
	return err
}

// A TextEncoder produces a human-readable listing of a compressed stream.
// Each code becomes a <code> symbol, followed by its literal byte.
type TextEncoder struct{}

// Encode appends the listing of ts to dst.
func (t TextEncoder) Encode(dst []byte, ts []Transaction) []byte {
	for _, tr := range ts {
		dst = append(dst, '<')
		dst = strconv.AppendUint(dst, uint64(tr.Code), 10)
		dst = append(dst, '>')
		if !tr.Trailing {
			dst = append(dst, tr.Literal)
		}
	}
	return dst
}
