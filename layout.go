package inlinestr

import "math/bits"

const (
	wordSize        = bits.UintSize / 8
	sliceHeaderSize = 3 * wordSize // pointer + len + cap

	// Footprint is the size budget of a String in bytes: a bare heap slice
	// header plus one tag word.
	Footprint = sliceHeaderSize + wordSize

	// Capacity is the number of bytes a String holds inline before it is
	// promoted to a heap buffer. It fills what is left of Footprint after the
	// heap pointer, the variant tag and the inline length byte.
	Capacity = Footprint - wordSize - 2

	// ownedLenSize is how many inline bytes an Owned String uses to store its
	// own length.
	ownedLenSize = 8
)

// Capacity must be addressable by the uint8 length of Inline.
var _ [255 - Capacity]struct{}

// An Owned String keeps its length in the inline bytes.
var _ [Capacity - ownedLenSize]struct{}
