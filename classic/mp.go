package classic

import (
	"bytes"

	"github.com/coregx/strmatch/internal/border"
)

// MP is the online form of Morris-Pratt: each text byte is read once, and the
// failure table rewinds the matched length on a mismatch. The scan stops as
// soon as the rest of the text is too short to complete a match.
type MP struct {
	pattern []byte
	failure []int
}

// NewMP builds an online Morris-Pratt matcher for pattern.
func NewMP(pattern []byte) *MP {
	p := bytes.Clone(pattern)
	return &MP{pattern: p, failure: border.Failure(p)}
}

// Failure returns the failure table: entry i is the length of the longest
// proper border of pattern[0..i].
func (mp *MP) Failure() []int {
	return append([]int(nil), mp.failure...)
}

// FindAll returns the starting offsets of all occurrences of the pattern.
func (mp *MP) FindAll(text []byte) []int {
	p := mp.pattern
	m, n := len(p), len(text)
	if m == 0 || n < m {
		return nil
	}

	var out []int
	matched := 0
	for i := 0; i < n && m-matched <= n-i; i++ {
		for matched > 0 && p[matched] != text[i] {
			matched = mp.failure[matched-1]
		}
		if p[matched] == text[i] {
			matched++
		}
		if matched == m {
			out = append(out, i-m+1)
			matched = mp.failure[m-1]
		}
	}
	return out
}

func (mp *MP) String() string {
	return "mp"
}
