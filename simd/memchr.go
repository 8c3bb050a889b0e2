// Package simd provides byte-scanning primitives built on SWAR (SIMD Within A
// Register): eight bytes are compared per step using uint64 arithmetic.
//
// The functions are pure Go and portable. They back the seeding step of the
// dueling matcher, which needs every position where one or two given bytes
// occur.
package simd

import (
	"encoding/binary"
	"math/bits"
)

const (
	lo8 = uint64(0x0101010101010101)
	hi8 = uint64(0x8080808080808080)
)

// broadcast replicates b into every byte of a uint64.
func broadcast(b byte) uint64 {
	return uint64(b) * lo8
}

// zeroBytes marks the zero bytes of v with their high bit.
//
// The borrow out of a zero byte can also mark the byte above it when that
// byte is 0x01, so a set bit is exact only for the lowest marked byte. Callers
// that need every hit re-check the bytes above the lowest one.
func zeroBytes(v uint64) uint64 {
	return (v - lo8) &^ v & hi8
}

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present.
func Memchr(haystack []byte, needle byte) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	mask := broadcast(needle)
	i := 0
	for ; i+8 <= n; i += 8 {
		word := binary.LittleEndian.Uint64(haystack[i:])
		if hits := zeroBytes(word ^ mask); hits != 0 {
			// The lowest marked byte is always a true hit.
			return i + bits.TrailingZeros64(hits)/8
		}
	}
	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}
