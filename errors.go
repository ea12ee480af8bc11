package lz78

import (
	"errors"
	"fmt"
)

var (
	// ErrDictionaryFull is returned when a new dictionary entry would need a
	// code larger than MaxCode.
	ErrDictionaryFull = errors.New("lz78: dictionary code space exhausted")
	// ErrFinalized is returned by calls made after Finalize or Close.
	ErrFinalized = errors.New("lz78: codec already finalized")
)

// A BadCodeError reports a code field with no dictionary entry. The stream is
// corrupt, or was not produced by a matching encoder; decoding cannot
// continue.
type BadCodeError struct {
	Code Code
}

func (e BadCodeError) Error() string {
	return fmt.Sprintf("lz78: bad code received: %d", e.Code)
}

// incompleteError means the bit source holds too few bits for the next
// field. It never leaves the package.
type incompleteError struct {
	need int // missing bits
}

func (e incompleteError) Error() string {
	return fmt.Sprintf("lz78: incomplete field, need %d more bits", e.need)
}
