package duel

import (
	"context"
	"log/slog"
	"math/bits"
	"time"

	"github.com/coregx/strmatch/simd"
)

// stageCount returns ceil(log2 m), the number of stages for a pattern of
// length m (0 for m <= 1: the seed alone verifies a one-byte pattern).
func stageCount(m int) int {
	if m <= 1 {
		return 0
	}
	return bits.Len(uint(m - 1))
}

// search is the state of one FindAll call.
//
// Between stages the candidates are exactly the positions j of z with
// z[j..j+len) == p[0..len), where len is the prefix length verified so far.
// This holds in the pattern part of z too, which is what lets a stage read
// the pattern's own periodicity off the candidate set. After the last stage
// len == m.
type search struct {
	e     *Engine
	z     *sequence
	cands *candidateSet
	arb   arbiter
	x     *executor
	lbb   localBoard
}

func newSearch(e *Engine, text []byte) *search {
	z := newSequence(e.pattern, text)
	cands := newCandidateSet(z.Len())
	return &search{
		e:     e,
		z:     z,
		cands: cands,
		arb:   arbiter{z: z, pattern: e.pattern, witness: e.witness},
		x:     newExecutor(cands, e.config.workersFor(z.Len())),
	}
}

func (s *search) run() {
	s.finish(s.seed())
	for k := 2; k <= s.e.stages; k++ {
		s.finish(s.stage(k))
	}
}

// seed marks every position where the first min(2, m) pattern bytes occur.
// Positions touching the separator never qualify.
func (s *search) seed() StageReport {
	start := time.Now()
	p := s.e.pattern
	sep := s.z.sep

	if len(p) == 1 {
		simd.ForEachByte(s.z.data, p[0], func(i int) bool {
			if i != sep {
				s.cands.set(i)
			}
			return true
		})
	} else {
		simd.ForEachPair(s.z.data, p[0], p[1], 1, func(i int) bool {
			if i != sep && i+1 != sep {
				s.cands.set(i)
			}
			return true
		})
	}

	after := s.cands.count()
	return StageReport{
		Stage:         1,
		Case:          CaseSeed,
		NextPrefixLen: min(2, len(p)),
		BlockSize:     1,
		ImportantPos:  -1,
		After:         after,
		Workers:       1,
		Duration:      time.Since(start),
	}
}

// stage extends the verified prefix from 2^(k-1) to 2^k.
func (s *search) stage(k int) StageReport {
	start := time.Now()
	m := len(s.e.pattern)
	r := StageReport{
		Stage:         k,
		PrefixLen:     min(1<<(k-1), m),
		NextPrefixLen: min(1<<k, m),
		BlockSize:     max(1, 1<<(k-2)),
		ImportantPos:  -1,
		Before:        s.cands.count(),
		Workers:       s.x.workers,
	}

	var work shard
	switch {
	case r.PrefixLen >= m:
		r.Case = CaseConverged
	default:
		s.lbb.rebuild(s.cands, r.BlockSize)
		if second := s.secondInFirstBlock(r.BlockSize); second > 0 {
			r.Case = CasePeriodic
			work = s.periodic(&r, second)
		} else {
			r.Case = CaseRegular
			work = s.regular(&r)
		}
	}

	r.Duels = work.duels
	r.Undecided = work.undecided
	r.Skipped = work.skipped
	r.Extensions = work.extensions
	r.After = s.cands.count()
	r.Duration = time.Since(start)
	return r
}

// secondInFirstBlock returns the second candidate of block 0 when the block
// also holds offset 0, or -1.
func (s *search) secondInFirstBlock(size int) int {
	if s.lbb.reps[0] != 0 {
		return -1
	}
	if j := s.cands.next(1); j > 0 && j < size {
		return j
	}
	return -1
}

func (s *search) finish(r StageReport) {
	s.e.stats.record(r)
	if l := s.e.logger; l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("stage complete",
			"stage", r.Stage,
			"case", r.Case.String(),
			"prefix", r.PrefixLen,
			"next_prefix", r.NextPrefixLen,
			"block", r.BlockSize,
			"before", r.Before,
			"after", r.After,
			"duels", r.Duels,
			"extensions", r.Extensions,
			"duration", r.Duration,
		)
	}
	if s.e.config.Observer != nil {
		s.e.config.Observer.ObserveStage(r)
	}
}
