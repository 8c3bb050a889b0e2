package classic

import (
	"bytes"

	"github.com/coregx/strmatch/internal/border"
)

// MorrisPratt compares the pattern against a text window left to right and,
// on a mismatch after q matched bytes, slides the window by q - failure[q-1]:
// the shift that lines up the longest border of the matched part.
type MorrisPratt struct {
	pattern []byte
	failure []int
}

// NewMorrisPratt builds a Morris-Pratt matcher for pattern.
func NewMorrisPratt(pattern []byte) *MorrisPratt {
	p := bytes.Clone(pattern)
	return &MorrisPratt{pattern: p, failure: border.Failure(p)}
}

// FindAll returns the starting offsets of all occurrences of the pattern.
func (mp *MorrisPratt) FindAll(text []byte) []int {
	p := mp.pattern
	m, n := len(p), len(text)
	if m == 0 || n < m {
		return nil
	}

	var out []int
	for pos := 0; pos <= n-m; {
		q := 0
		for q < m && p[q] == text[pos+q] {
			q++
		}
		switch {
		case q == m:
			out = append(out, pos)
			pos += m - mp.failure[m-1]
		case q == 0:
			pos++
		default:
			pos += q - mp.failure[q-1]
		}
	}
	return out
}

func (mp *MorrisPratt) String() string {
	return "morris-pratt"
}
