package duel

import "math/bits"

// candidateSet is a bit vector over z. A set bit means a pattern occurrence
// may still start there.
//
// Within a search bits are only ever cleared, and only between the steps of
// a stage, so every step reads a set that no one is writing.
type candidateSet struct {
	words []uint64
	n     int
}

func newCandidateSet(n int) *candidateSet {
	return &candidateSet{
		words: make([]uint64, (n+63)/64),
		n:     n,
	}
}

func (c *candidateSet) set(i int) {
	c.words[i>>6] |= 1 << (uint(i) & 63)
}

func (c *candidateSet) clear(i int) {
	c.words[i>>6] &^= 1 << (uint(i) & 63)
}

// has reports whether i is a candidate. Indices outside z never are.
func (c *candidateSet) has(i int) bool {
	if i < 0 || i >= c.n {
		return false
	}
	return c.words[i>>6]&(1<<(uint(i)&63)) != 0
}

// next returns the smallest candidate >= i, or -1.
func (c *candidateSet) next(i int) int {
	if i < 0 {
		i = 0
	}
	if i >= c.n {
		return -1
	}

	w := i >> 6
	word := c.words[w] &^ (uint64(1)<<(uint(i)&63) - 1)
	for word == 0 {
		w++
		if w == len(c.words) {
			return -1
		}
		word = c.words[w]
	}
	return w<<6 + bits.TrailingZeros64(word)
}

func (c *candidateSet) count() int {
	total := 0
	for _, w := range c.words {
		total += bits.OnesCount64(w)
	}
	return total
}
