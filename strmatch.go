// Package strmatch finds every occurrence of a byte pattern in a text.
//
// The default matcher is the Galil-Seiferas-Vishkin dueling algorithm
// (package duel): candidates for a match are narrowed down over
// ceil(log2 m) stages using the pattern's periodicity and precomputed
// witnesses. The classical linear-time matchers (Morris-Pratt, KMP and
// variants) and an Aho-Corasick reference are available through New.
//
// Basic usage:
//
//	offsets, err := strmatch.Search(text, []byte("needle"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Reuse a compiled pattern
//	p := strmatch.MustCompile("ABAB")
//	fmt.Println(p.FindAllString("ABABABABAB")) // [0 2 4 6]
//
// Advanced usage:
//
//	// Fan stage work out over four goroutines
//	config := strmatch.DefaultConfig()
//	config.Workers = 4
//	p, err := strmatch.CompileWithConfig("needle", config)
//
// All matchers report overlapping occurrences in increasing order. An empty
// pattern, or one longer than the text, matches nowhere.
package strmatch

import (
	"github.com/coregx/strmatch/duel"
)

// Pattern is a compiled pattern for the dueling matcher.
//
// A Pattern is safe to use concurrently from multiple goroutines, except for
// ResetStats.
type Pattern struct {
	engine  *duel.Engine
	pattern string
}

// Config configures the dueling matcher. See duel.Config.
type Config = duel.Config

// Stats is a snapshot of a Pattern's counters. See duel.Stats.
type Stats = duel.Stats

// Compile preprocesses pattern for repeated searches.
func Compile(pattern string) (*Pattern, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile is like Compile but panics on error.
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic("strmatch: Compile(" + quote(pattern) + "): " + err.Error())
	}
	return p
}

// CompileWithConfig preprocesses pattern with a custom configuration.
//
// Example:
//
//	config := strmatch.DefaultConfig()
//	config.Workers = 8
//	config.ParallelThreshold = 1 << 20
//	p, err := strmatch.CompileWithConfig("needle", config)
func CompileWithConfig(pattern string, config Config) (*Pattern, error) {
	engine, err := duel.CompileWithConfig([]byte(pattern), config)
	if err != nil {
		return nil, err
	}
	return &Pattern{engine: engine, pattern: pattern}, nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return duel.DefaultConfig()
}

// Search returns the starting offsets of every occurrence of pattern in text.
//
// It returns ErrInvalidArgument if either argument is nil. Degenerate inputs
// (empty pattern, pattern longer than text) return no offsets and no error.
func Search(text, pattern []byte) ([]int, error) {
	return duel.Search(text, pattern)
}

// SearchString is like Search for strings, which cannot be nil.
func SearchString(text, pattern string) []int {
	return MustCompile(pattern).FindAllString(text)
}

// FindAll returns the starting offsets of every occurrence in b, or nil.
func (p *Pattern) FindAll(b []byte) []int {
	return p.engine.FindAll(b)
}

// FindAllString returns the starting offsets of every occurrence in s, or nil.
func (p *Pattern) FindAllString(s string) []int {
	return p.engine.FindAll([]byte(s))
}

// Index returns the offset of the first occurrence in b, or -1.
func (p *Pattern) Index(b []byte) int {
	if offsets := p.engine.FindAll(b); len(offsets) > 0 {
		return offsets[0]
	}
	return -1
}

// Count returns the number of occurrences in b, overlapping ones included.
func (p *Pattern) Count(b []byte) int {
	return len(p.engine.FindAll(b))
}

// Contains reports whether b contains the pattern.
func (p *Pattern) Contains(b []byte) bool {
	return p.Index(b) >= 0
}

// String returns the source pattern.
func (p *Pattern) String() string {
	return p.pattern
}

// Len returns the pattern length in bytes.
func (p *Pattern) Len() int {
	return len(p.pattern)
}

// Period returns the shortest period of the pattern.
func (p *Pattern) Period() int {
	return p.engine.Period()
}

// Stats returns a snapshot of the pattern's search counters.
func (p *Pattern) Stats() Stats {
	return p.engine.Stats()
}

// ResetStats zeroes the pattern's search counters.
func (p *Pattern) ResetStats() {
	p.engine.ResetStats()
}

// quote wraps s in backquotes when possible, double quotes otherwise.
func quote(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '`' || s[i] < ' ' {
			return "\"" + s + "\""
		}
	}
	return "`" + s + "`"
}
