package duel

import "github.com/coregx/strmatch/internal/border"

// Period returns the shortest period of p: the smallest q in [1, len(p)] with
// p[i] == p[i mod q] for every i. Returns 0 for an empty p.
//
// The candidate q = m - failure[m-1] is verified before it is trusted; if the
// check fails the whole length is returned.
func Period(p []byte) int {
	m := len(p)
	if m == 0 {
		return 0
	}

	table := border.Failure(p)
	q := m - table[m-1]
	for i := q; i < m; i++ {
		if p[i] != p[i-q] {
			return m
		}
	}
	return q
}

// Threshold returns the duel threshold min(period, m/2). Candidates closer
// than the threshold can always be told apart by a witness.
func Threshold(period, m int) int {
	return min(period, m/2)
}
