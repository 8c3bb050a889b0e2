package simd

import (
	"encoding/binary"
	"math/bits"
)

// MemchrPair returns the first index i such that haystack[i] == first and
// haystack[i+offset] == second, or -1 if there is none.
//
// Requiring two bytes at a fixed distance is far more selective than a single
// byte, which is what makes it a good seed for a candidate scan.
// A negative offset never matches.
func MemchrPair(haystack []byte, first, second byte, offset int) int {
	n := len(haystack)
	if offset < 0 || n <= offset {
		return -1
	}

	i := 0
	if n >= 8+offset {
		m1 := broadcast(first)
		m2 := broadcast(second)
		for ; i+8+offset <= n; i += 8 {
			w1 := binary.LittleEndian.Uint64(haystack[i:])
			w2 := binary.LittleEndian.Uint64(haystack[i+offset:])
			hits := zeroBytes(w1^m1) & zeroBytes(w2^m2)
			// Both masks can carry borrow artifacts, so verify every marked byte.
			for hits != 0 {
				k := i + bits.TrailingZeros64(hits)/8
				if haystack[k] == first && haystack[k+offset] == second {
					return k
				}
				hits &= hits - 1
			}
		}
	}

	for ; i+offset < n; i++ {
		if haystack[i] == first && haystack[i+offset] == second {
			return i
		}
	}
	return -1
}

// ForEachPair calls f with every index i, in increasing order, such that
// haystack[i] == first and haystack[i+offset] == second. Iteration stops early
// when f returns false.
func ForEachPair(haystack []byte, first, second byte, offset int, f func(i int) bool) {
	base := 0
	for base < len(haystack) {
		k := MemchrPair(haystack[base:], first, second, offset)
		if k < 0 {
			return
		}
		if !f(base + k) {
			return
		}
		base += k + 1
	}
}

// ForEachByte calls f with every index of needle in haystack, in increasing
// order. Iteration stops early when f returns false.
func ForEachByte(haystack []byte, needle byte, f func(i int) bool) {
	base := 0
	for base < len(haystack) {
		k := Memchr(haystack[base:], needle)
		if k < 0 {
			return
		}
		if !f(base + k) {
			return
		}
		base += k + 1
	}
}
