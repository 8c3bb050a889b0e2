package duel

// extract returns the text offsets of the candidates left in the text region
// [m+1, len(z)-m] of z, in increasing order.
func extract(c *candidateSet, m int) []int {
	first := m + 1
	last := c.n - m

	var out []int
	for i := c.next(first); i >= 0 && i <= last; i = c.next(i + 1) {
		out = append(out, i-first)
	}
	return out
}
