package duel

import (
	"bytes"
	"fmt"
	"log/slog"
)

// Engine is a compiled pattern.
//
// The pattern's period, duel threshold and witness table are computed once by
// Compile. FindAll can then be called any number of times, from any number of
// goroutines: all search state lives in the call.
type Engine struct {
	pattern []byte
	period  int
	pi      int
	stages  int
	witness *WitnessTable

	config Config
	logger *slog.Logger
	stats  counters
}

// Compile preprocesses pattern with the default configuration.
func Compile(pattern []byte) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig preprocesses pattern with a custom configuration.
// A nil pattern is rejected with ErrInvalidArgument; an empty one compiles to
// an engine that never matches.
func CompileWithConfig(pattern []byte, config Config) (*Engine, error) {
	if pattern == nil {
		return nil, fmt.Errorf("%w: nil pattern", ErrInvalidArgument)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	p := bytes.Clone(pattern)
	period := Period(p)
	pi := Threshold(period, len(p))

	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Engine{
		pattern: p,
		period:  period,
		pi:      pi,
		stages:  stageCount(len(p)),
		witness: BuildWitnesses(p, pi),
		config:  config,
		logger:  logger,
	}, nil
}

// FindAll returns the starting offsets of every occurrence of the pattern in
// text, overlapping ones included, in increasing order. It returns nil when
// there is none, including for an empty pattern or one longer than text.
func (e *Engine) FindAll(text []byte) []int {
	e.stats.searches.Add(1)
	m := len(e.pattern)
	if m == 0 || m > len(text) {
		return nil
	}

	s := newSearch(e, text)
	s.run()
	out := extract(s.cands, m)
	e.stats.matches.Add(uint64(len(out)))
	return out
}

// Pattern returns a copy of the compiled pattern.
func (e *Engine) Pattern() []byte {
	return bytes.Clone(e.pattern)
}

// Period returns the shortest period of the pattern.
func (e *Engine) Period() int {
	return e.period
}

// Threshold returns the duel threshold min(period, m/2).
func (e *Engine) Threshold() int {
	return e.pi
}

// Stages returns the number of stages a search runs, the seed included.
func (e *Engine) Stages() int {
	if len(e.pattern) == 0 {
		return 0
	}
	return max(1, e.stages)
}

// Witnesses returns the witness table.
func (e *Engine) Witnesses() *WitnessTable {
	return e.witness
}

// Stats returns a snapshot of the engine's counters.
func (e *Engine) Stats() Stats {
	return e.stats.snapshot()
}

// ResetStats zeroes the engine's counters.
func (e *Engine) ResetStats() {
	e.stats.reset()
}
