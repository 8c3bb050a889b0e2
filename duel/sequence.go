package duel

import "bytes"

// sequence is the combined sequence z: the pattern, a separator, then the text.
//
// Any byte value can occur in the pattern or the text, so the separator is a
// position rather than a reserved byte: every comparison involving it fails.
// The filler byte stored there is never read as a character.
type sequence struct {
	data []byte
	sep  int
}

func newSequence(pattern, text []byte) *sequence {
	data := make([]byte, 0, len(pattern)+1+len(text))
	data = append(data, pattern...)
	data = append(data, 0)
	data = append(data, text...)
	return &sequence{data: data, sep: len(pattern)}
}

// Len returns len(z) = m + 1 + n.
func (z *sequence) Len() int {
	return len(z.data)
}

func (z *sequence) pattern() []byte {
	return z.data[:z.sep]
}

// at returns z[i]. ok is false for the separator or an index outside z.
func (z *sequence) at(i int) (c byte, ok bool) {
	if i < 0 || i >= len(z.data) || i == z.sep {
		return 0, false
	}
	return z.data[i], true
}

// repeats reports whether z[i] == z[i-r] with both positions ordinary characters.
func (z *sequence) repeats(i, r int) bool {
	k := i - r
	if k < 0 || i >= len(z.data) || i == z.sep || k == z.sep {
		return false
	}
	return z.data[i] == z.data[k]
}

// matches reports whether z[j+lo..j+hi) equals p[lo..hi).
// A window that runs past the end or covers the separator never matches.
func (z *sequence) matches(j, lo, hi int, p []byte) bool {
	if lo >= hi {
		return true
	}
	if j < 0 || j+hi > len(z.data) {
		return false
	}
	if z.sep >= j+lo && z.sep < j+hi {
		return false
	}
	return bytes.Equal(z.data[j+lo:j+hi], p[lo:hi])
}
