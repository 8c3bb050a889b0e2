// Package classic implements the linear-time exact matchers that preceded
// dueling: Morris-Pratt, its online variant, Knuth-Morris-Pratt with the
// strong failure table, the textbook KMP scan, and an Aho-Corasick automaton
// holding a single pattern.
//
// Every matcher is built once per pattern and reports all occurrences,
// overlapping ones included, in increasing order. An empty pattern matches
// nowhere.
package classic

// Matcher finds every occurrence of a fixed pattern.
type Matcher interface {
	// FindAll returns the starting offsets of all occurrences in text, or nil.
	FindAll(text []byte) []int
	// String returns the algorithm name.
	String() string
}

var (
	_ Matcher = (*MorrisPratt)(nil)
	_ Matcher = (*MP)(nil)
	_ Matcher = (*KMP)(nil)
	_ Matcher = (*KMPStandard)(nil)
	_ Matcher = (*Automaton)(nil)
)
