// Package border computes the border tables shared by the matchers: the
// failure (longest proper prefix-suffix) table and the Z-array.
//
// Both tables are built iteratively in O(m) time. The failure recurrence walks
// backlinks in a bounded loop instead of recursing, so long periodic patterns
// never grow the stack.
package border

// Failure returns the failure table of p.
//
// table[i] is the length of the longest proper prefix of p[0..i] that is also
// a suffix of p[0..i]. table[0] is always 0. Returns nil for an empty p.
func Failure(p []byte) []int {
	m := len(p)
	if m == 0 {
		return nil
	}

	table := make([]int, m)
	k := 0
	for i := 1; i < m; i++ {
		for k > 0 && p[i] != p[k] {
			k = table[k-1]
		}
		if p[i] == p[k] {
			k++
		}
		table[i] = k
	}
	return table
}

// Z returns the Z-array of p.
//
// z[i] is the length of the longest common prefix of p and p[i:]. By
// convention z[0] = len(p). Returns nil for an empty p.
func Z(p []byte) []int {
	m := len(p)
	if m == 0 {
		return nil
	}

	z := make([]int, m)
	z[0] = m

	// [lo, hi) is the rightmost window known to equal a prefix of p.
	lo, hi := 0, 0
	for i := 1; i < m; i++ {
		k := 0
		if i < hi {
			k = min(hi-i, z[i-lo])
		}
		for i+k < m && p[k] == p[i+k] {
			k++
		}
		z[i] = k
		if i+k > hi {
			lo, hi = i, i+k
		}
	}
	return z
}
