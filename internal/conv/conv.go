// Package conv provides checked integer conversions for offsets into the
// combined pattern-and-text sequence.
//
// Offsets are ints everywhere in the public API. Internal tables that store
// them compactly narrow to uint32, and a value that does not fit means the
// input exceeded the engine's limits, which is a programming error.
package conv

import "math"

// IntToUint32 narrows n to uint32.
// Panics if n is negative or larger than math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// Compare as uint so 32-bit platforms do not overflow the constant.
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("conv: offset out of uint32 range")
	}
	return uint32(n)
}

// FitsUint32 reports whether n can be narrowed with IntToUint32.
func FitsUint32(n int) bool {
	return n >= 0 && uint(n) <= math.MaxUint32
}
