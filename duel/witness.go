package duel

import "github.com/coregx/strmatch/internal/border"

// missing marks a distance without a witness.
const missing = -1

// WitnessTable maps a distance d in [1, threshold) to an offset h with
// p[h] != p[h+d] and h+d < len(p).
//
// h is the first mismatch between p and p shifted by d, which is exactly the
// Z-array value at d, so the whole table costs O(m).
type WitnessTable struct {
	offsets []int
	missing int
}

// BuildWitnesses computes the witness table of p for distances below threshold.
//
// Every distance shorter than the period has a witness. A distance that
// shifts p onto itself is recorded as missing, never defaulted: duels at that
// distance are skipped.
func BuildWitnesses(p []byte, threshold int) *WitnessTable {
	m := len(p)
	w := &WitnessTable{}
	if threshold <= 1 || m == 0 {
		return w
	}

	z := border.Z(p)
	w.offsets = make([]int, threshold)
	w.offsets[0] = missing
	for d := 1; d < threshold; d++ {
		if h := z[d]; h+d < m {
			w.offsets[d] = h
		} else {
			w.offsets[d] = missing
			w.missing++
		}
	}
	return w
}

// Lookup returns the witness for distance d.
func (w *WitnessTable) Lookup(d int) (int, bool) {
	if d <= 0 || d >= len(w.offsets) {
		return 0, false
	}
	h := w.offsets[d]
	return h, h != missing
}

// Len returns the threshold the table was built for (0 if empty).
func (w *WitnessTable) Len() int {
	return len(w.offsets)
}

// Missing returns how many distances have no witness.
func (w *WitnessTable) Missing() int {
	return w.missing
}
