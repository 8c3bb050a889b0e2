package strmatch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/coregx/strmatch/classic"
	"github.com/coregx/strmatch/duel"
)

// ErrInvalidArgument is returned for a nil pattern or text.
var ErrInvalidArgument = duel.ErrInvalidArgument

// ErrUnknownAlgorithm is returned for an Algorithm value or name that is not
// supported.
var ErrUnknownAlgorithm = errors.New("strmatch: unknown algorithm")

// Algorithm selects a matcher.
type Algorithm int

const (
	// GSV is the Galil-Seiferas-Vishkin dueling matcher.
	GSV Algorithm = iota
	// MorrisPratt slides a comparison window by the failure table.
	MorrisPratt
	// MP is the online Morris-Pratt scan.
	MP
	// KMP is Knuth-Morris-Pratt with the strong failure table.
	KMP
	// KMPStandard is the textbook two-pointer KMP scan.
	KMPStandard
	// AhoCorasick is a single-pattern Aho-Corasick automaton.
	AhoCorasick
)

var algorithmNames = [...]string{
	GSV:         "gsv",
	MorrisPratt: "morris-pratt",
	MP:          "mp",
	KMP:         "kmp",
	KMPStandard: "kmp-standard",
	AhoCorasick: "aho-corasick",
}

// String returns the algorithm's name as accepted by ParseAlgorithm.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// Algorithms returns every supported algorithm, GSV first.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithmNames))
	for i := range out {
		out[i] = Algorithm(i)
	}
	return out
}

// ParseAlgorithm returns the algorithm with the given name, ignoring case.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range algorithmNames {
		if n == name {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Matcher finds every occurrence of a fixed pattern.
type Matcher interface {
	// FindAll returns the starting offsets of all occurrences in text, in
	// increasing order, or nil.
	FindAll(text []byte) []int
}

// New builds a matcher for pattern with the default configuration.
func New(alg Algorithm, pattern []byte) (Matcher, error) {
	return NewWithConfig(alg, pattern, DefaultConfig())
}

// NewWithConfig builds a matcher for pattern. The configuration only applies
// to GSV.
func NewWithConfig(alg Algorithm, pattern []byte, config Config) (Matcher, error) {
	if pattern == nil {
		return nil, fmt.Errorf("%w: nil pattern", ErrInvalidArgument)
	}

	switch alg {
	case GSV:
		e, err := duel.CompileWithConfig(pattern, config)
		if err != nil {
			return nil, err
		}
		return e, nil
	case MorrisPratt:
		return classic.NewMorrisPratt(pattern), nil
	case MP:
		return classic.NewMP(pattern), nil
	case KMP:
		return classic.NewKMP(pattern), nil
	case KMPStandard:
		return classic.NewKMPStandard(pattern), nil
	case AhoCorasick:
		a, err := classic.NewAutomaton(pattern)
		if err != nil {
			return nil, err
		}
		return a, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, alg)
	}
}
