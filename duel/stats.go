package duel

import (
	"sync/atomic"
	"time"
)

// Case identifies how a stage was resolved.
type Case uint8

const (
	// CaseSeed is stage 1: candidates seeded from the first two pattern bytes.
	CaseSeed Case = iota
	// CasePeriodic is a stage whose verified prefix is periodic.
	CasePeriodic
	// CaseRegular is a stage resolved by duels and extension tests.
	CaseRegular
	// CaseConverged is a stage with nothing left to verify.
	CaseConverged
)

func (c Case) String() string {
	switch c {
	case CaseSeed:
		return "seed"
	case CasePeriodic:
		return "periodic"
	case CaseRegular:
		return "regular"
	case CaseConverged:
		return "converged"
	default:
		return "unknown"
	}
}

// StageReport describes one completed stage.
type StageReport struct {
	Stage         int
	Case          Case
	PrefixLen     int
	NextPrefixLen int
	BlockSize     int

	// Board is set for periodic stages.
	Board BulletinBoard
	// ImportantPos is the last confirmed periodic offset of a periodic stage
	// whose periodicity ended, or -1.
	ImportantPos int

	Before int // candidates entering the stage
	After  int // candidates leaving the stage

	Duels      int // duels fought
	Undecided  int // duels where both candidates fit
	Skipped    int // close pairs without a witness
	Extensions int // extension tests run
	Workers    int

	Duration time.Duration
}

// Eliminated returns the number of candidates the stage removed. The seed
// stage starts from an empty set and eliminates nothing.
func (r StageReport) Eliminated() int {
	return max(0, r.Before-r.After)
}

// Observer receives stage reports.
type Observer interface {
	ObserveStage(StageReport)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(StageReport)

// ObserveStage calls f(r).
func (f ObserverFunc) ObserveStage(r StageReport) {
	f(r)
}

// Stats is a snapshot of an Engine's cumulative counters.
type Stats struct {
	Searches       uint64
	Stages         uint64
	PeriodicStages uint64
	RegularStages  uint64
	Duels          uint64
	Undecided      uint64
	Skipped        uint64
	Extensions     uint64
	Eliminated     uint64
	Matches        uint64
}

type counters struct {
	searches       atomic.Uint64
	stages         atomic.Uint64
	periodicStages atomic.Uint64
	regularStages  atomic.Uint64
	duels          atomic.Uint64
	undecided      atomic.Uint64
	skipped        atomic.Uint64
	extensions     atomic.Uint64
	eliminated     atomic.Uint64
	matches        atomic.Uint64
}

func (c *counters) record(r StageReport) {
	c.stages.Add(1)
	switch r.Case {
	case CasePeriodic:
		c.periodicStages.Add(1)
	case CaseRegular:
		c.regularStages.Add(1)
	}
	c.duels.Add(uint64(r.Duels))
	c.undecided.Add(uint64(r.Undecided))
	c.skipped.Add(uint64(r.Skipped))
	c.extensions.Add(uint64(r.Extensions))
	if e := r.Eliminated(); e > 0 {
		c.eliminated.Add(uint64(e))
	}
}

func (c *counters) snapshot() Stats {
	return Stats{
		Searches:       c.searches.Load(),
		Stages:         c.stages.Load(),
		PeriodicStages: c.periodicStages.Load(),
		RegularStages:  c.regularStages.Load(),
		Duels:          c.duels.Load(),
		Undecided:      c.undecided.Load(),
		Skipped:        c.skipped.Load(),
		Extensions:     c.extensions.Load(),
		Eliminated:     c.eliminated.Load(),
		Matches:        c.matches.Load(),
	}
}

func (c *counters) reset() {
	c.searches.Store(0)
	c.stages.Store(0)
	c.periodicStages.Store(0)
	c.regularStages.Store(0)
	c.duels.Store(0)
	c.undecided.Store(0)
	c.skipped.Store(0)
	c.extensions.Store(0)
	c.eliminated.Store(0)
	c.matches.Store(0)
}
