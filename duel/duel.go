// Package duel implements the Galil-Seiferas-Vishkin dueling string matcher,
// simulated sequentially.
//
// The pattern p (length m) and the text are joined into one sequence
// z = p $ text, where $ matches nothing. Every position of z starts out as a
// potential occurrence; stage k eliminates the positions where the prefix of
// length 2^k does not occur, so after ceil(log2 m) stages the survivors in
// the text part of z are exactly the occurrences of p.
//
// Each stage is resolved one of two ways. If the prefix verified so far is
// periodic, candidates form arithmetic chains and whole chains are decided by
// how far their periodic run reaches. Otherwise candidates closer than the
// pattern's period duel: a precomputed witness names one character on which
// two such candidates disagree, so at most one of them survives. Survivors
// are then checked against the next stretch of the pattern.
//
// Basic usage:
//
//	offsets, err := duel.Search([]byte("ABABABABAB"), []byte("ABAB"))
//	// offsets == [0 2 4 6]
//
// For repeated searches with the same pattern, compile it once:
//
//	e, err := duel.Compile([]byte("needle"))
//	offsets := e.FindAll(haystack)
package duel

import "fmt"

// Search returns the starting offsets of every occurrence of pattern in text,
// overlapping ones included, in increasing order.
//
// It returns ErrInvalidArgument if either input is nil. An empty pattern or
// a pattern longer than text yields no offsets and no error.
func Search(text, pattern []byte) ([]int, error) {
	if text == nil {
		return nil, fmt.Errorf("%w: nil text", ErrInvalidArgument)
	}
	e, err := Compile(pattern)
	if err != nil {
		return nil, err
	}
	return e.FindAll(text), nil
}
