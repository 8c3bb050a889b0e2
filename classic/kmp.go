package classic

import (
	"bytes"

	"github.com/coregx/strmatch/internal/border"
)

// KMP is Knuth-Morris-Pratt with the strong failure table.
//
// table[j] for j < m is the longest border t of pattern[0..j) with
// pattern[t] != pattern[j], so the shifted pattern never retries the byte
// that just failed; -1 means no border qualifies, not even the empty one, and
// the window moves past the failing byte. table[m] is the longest border of
// the whole pattern and positions the window after a match.
type KMP struct {
	pattern []byte
	table   []int
}

// NewKMP builds a Knuth-Morris-Pratt matcher for pattern.
func NewKMP(pattern []byte) *KMP {
	p := bytes.Clone(pattern)
	return &KMP{pattern: p, table: strongTable(p)}
}

func strongTable(p []byte) []int {
	m := len(p)
	if m == 0 {
		return nil
	}

	failure := border.Failure(p)
	table := make([]int, m+1)
	table[0] = -1
	table[m] = failure[m-1]
	for j := 1; j < m; j++ {
		// Walk the borders of p[0..j) from the longest down.
		t := failure[j-1]
		for t > 0 && p[j] == p[t] {
			t = failure[t-1]
		}
		switch {
		case t > 0:
			table[j] = t
		case p[j] == p[0]:
			table[j] = -1
		default:
			table[j] = 0
		}
	}
	return table
}

// Table returns the strong failure table (length m+1).
func (k *KMP) Table() []int {
	return append([]int(nil), k.table...)
}

// FindAll returns the starting offsets of all occurrences of the pattern.
func (k *KMP) FindAll(text []byte) []int {
	p := k.pattern
	m, n := len(p), len(text)
	if m == 0 || n < m {
		return nil
	}

	var out []int
	i, j := 0, 0
	for i <= n-m {
		for j < m && text[i+j] == p[j] {
			j++
		}
		if j == m {
			out = append(out, i)
		}
		i += j - k.table[j]
		j = max(0, k.table[j])
	}
	return out
}

func (k *KMP) String() string {
	return "kmp"
}

// KMPStandard is the textbook KMP scan: two pointers over text and pattern
// and the plain failure table.
type KMPStandard struct {
	pattern []byte
	failure []int
}

// NewKMPStandard builds a textbook KMP matcher for pattern.
func NewKMPStandard(pattern []byte) *KMPStandard {
	p := bytes.Clone(pattern)
	return &KMPStandard{pattern: p, failure: border.Failure(p)}
}

// FindAll returns the starting offsets of all occurrences of the pattern.
func (k *KMPStandard) FindAll(text []byte) []int {
	p := k.pattern
	m, n := len(p), len(text)
	if m == 0 || n < m {
		return nil
	}

	var out []int
	i, j := 0, 0
	for i < n {
		if p[j] == text[i] {
			i++
			j++
			if j == m {
				out = append(out, i-m)
				j = k.failure[m-1]
			}
			continue
		}
		if j > 0 {
			j = k.failure[j-1]
		} else {
			i++
		}
	}
	return out
}

func (k *KMPStandard) String() string {
	return "kmp-standard"
}
