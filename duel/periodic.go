package duel

// periodic resolves a stage whose verified prefix v = p[0..q) occurs again at
// offset r < q/2 of the pattern, so v has period r.
//
// Candidates then line up in chains j, j+r, j+2r, ... and the chain, not the
// individual candidate, is the unit of work. The run of period r that a chain
// starts extends to some end X in z; for a member j, X-j is the length of the
// longest r-periodic stretch of z starting at j. Comparing that length with
// the pattern's own periodic extent decides every member at once.
func (s *search) periodic(r *StageReport, period int) shard {
	q, next := r.PrefixLen, r.NextPrefixLen
	r.Board = BulletinBoard{
		PeriodSize: period,
		L:          ceilDiv(q, period) * period,
		Pi:         s.e.pi,
	}

	// extent is the pattern's periodic extent capped at next: the length of
	// the longest prefix of p with period r.
	extent := next
	if !s.cands.has(period) || !s.cands.has(r.Board.L) {
		r.ImportantPos = s.importantPos(r.Board)
		extent = s.patternExtent(period, r.ImportantPos+q, next)
	}
	continues := extent >= next
	p := s.e.pattern

	return s.x.step(s.z.Len(), func(lo, hi int, sh *shard) {
		for j := s.cands.next(lo); j >= 0 && j < hi; j = s.cands.next(j + 1) {
			if s.cands.has(j - period) {
				// Owned by the chain's first member.
				continue
			}

			last := j
			for s.cands.has(last + period) {
				last += period
			}
			end := last + q
			for s.z.repeats(end, period) {
				end++
			}

			for c := j; c <= last; c += period {
				span := end - c
				var keep bool
				if continues {
					keep = span >= next
				} else {
					// Only the member whose run stops exactly where the
					// pattern's does can continue with the pattern's suffix.
					keep = span == extent && s.z.matches(c, extent, next, p)
					if span == extent {
						sh.extensions++
					}
				}
				if !keep {
					sh.losers = append(sh.losers, c)
				}
			}
		}
	})
}

// importantPos returns the last confirmed periodic offset of the pattern:
// (k-1)*PeriodSize for the smallest k >= 1 with no candidate at k*PeriodSize.
func (s *search) importantPos(b BulletinBoard) int {
	for k := 1; k*b.PeriodSize <= b.L; k++ {
		if !s.cands.has(k * b.PeriodSize) {
			return (k - 1) * b.PeriodSize
		}
	}
	return b.L
}

// patternExtent extends the known r-periodic prefix p[0..from) while the
// period holds, stopping at limit.
func (s *search) patternExtent(r, from, limit int) int {
	p := s.e.pattern
	x := from
	for x < limit && p[x] == p[x-r] {
		x++
	}
	return max(x, from)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
