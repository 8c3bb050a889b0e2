package classic

import (
	"bytes"
	"fmt"

	"github.com/coregx/ahocorasick"
)

// Automaton matches a single pattern with an Aho-Corasick automaton.
//
// The automaton reports one match per search, so overlapping occurrences are
// found by restarting one byte past the start of each match. It is an
// independent reference for cross-checking the other matchers.
type Automaton struct {
	pattern []byte
	ac      *ahocorasick.Automaton
}

// NewAutomaton builds the automaton for pattern.
func NewAutomaton(pattern []byte) (*Automaton, error) {
	a := &Automaton{pattern: bytes.Clone(pattern)}
	if len(pattern) == 0 {
		return a, nil
	}

	builder := ahocorasick.NewBuilder()
	builder.AddPattern(a.pattern)
	ac, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("classic: build automaton: %w", err)
	}
	a.ac = ac
	return a, nil
}

// FindAll returns the starting offsets of all occurrences of the pattern.
func (a *Automaton) FindAll(text []byte) []int {
	if a.ac == nil || len(text) < len(a.pattern) {
		return nil
	}

	var out []int
	for at := 0; at <= len(text)-len(a.pattern); {
		m := a.ac.Find(text, at)
		if m == nil || m.Start < at {
			break
		}
		out = append(out, m.Start)
		at = m.Start + 1
	}
	return out
}

func (a *Automaton) String() string {
	return "aho-corasick"
}
