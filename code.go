package lz78

import (
	"math"
	"math/bits"
)

// A Code identifies one dictionary entry. Code 0 is the empty sequence.
type Code uint16

// MaxCode is the largest code a dictionary can assign. Inputs that would need
// more entries than this fail with ErrDictionaryFull.
const MaxCode Code = math.MaxUint16

// MinBits returns the number of bits needed to represent c: 0 for 0, and
// otherwise the position of the highest set bit plus one.
//
// Both sides of the codec derive every code field width from MinBits of the
// running max code.
func (c Code) MinBits() uint8 {
	return uint8(bits.Len16(uint16(c)))
}
