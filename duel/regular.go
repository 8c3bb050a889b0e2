package duel

// regular resolves a stage whose verified prefix is not periodic within the
// first block. It runs three steps, each behind a barrier:
//
//  1. Block settling: the candidates inside each block duel so the block
//     carries a single representative forward.
//  2. Dueling: surviving candidates closer than the threshold duel across
//     block boundaries.
//  3. Extension: every survivor must match p[q..next) right after the prefix
//     it has already verified.
//
// Duels only remove candidates that cannot start an occurrence of p[0..next),
// and the extension test is exact, so the order of the steps does not change
// the result. Dueling first keeps the extension test to the winners.
func (s *search) regular(r *StageReport) shard {
	var total shard
	blocks := len(s.lbb.reps)
	n := s.z.Len()
	q, next := r.PrefixLen, r.NextPrefixLen

	total.add(s.x.step(blocks, func(lo, hi int, sh *shard) {
		for b := lo; b < hi; b++ {
			if s.lbb.reps[b] < 0 {
				continue
			}
			from, to := s.lbb.bounds(b, n)
			s.lbb.reps[b] = s.sweep(from, to, next, sh)
		}
	}))

	total.add(s.x.step(n, func(lo, hi int, sh *shard) {
		s.sweep(lo, hi, next, sh)
	}))

	p := s.e.pattern
	total.add(s.x.step(n, func(lo, hi int, sh *shard) {
		for j := s.cands.next(lo); j >= 0 && j < hi; j = s.cands.next(j + 1) {
			sh.extensions++
			if !s.z.matches(j, q, next, p) {
				sh.losers = append(sh.losers, j)
			}
		}
	}))
	return total
}

// sweep duels the candidates in [lo, hi) in increasing order over the prefix
// of length limit and returns the lowest survivor, or -1.
//
// Undefeated candidates wait on a stack. A new candidate duels the top of
// the stack while it is closer than the threshold; every duel pops the top,
// rejects the newcomer, or ends the round, so a sweep fights at most one duel
// per candidate plus one per stack pop.
func (s *search) sweep(lo, hi, limit int, sh *shard) int {
	stack := sh.stack[:0]
	pi := s.e.pi

	for j := s.cands.next(lo); j >= 0 && j < hi; j = s.cands.next(j + 1) {
		alive := true
		for len(stack) > 0 {
			i := stack[len(stack)-1]
			if j-i >= pi {
				break
			}

			o := s.arb.duel(i, j, limit)
			if o != noDuel && o != outOfReach {
				sh.duels++
			}
			switch o {
			case rightWins:
				stack = stack[:len(stack)-1]
				sh.losers = append(sh.losers, i)
				continue
			case leftWins:
				alive = false
				sh.losers = append(sh.losers, j)
			case bothLose:
				stack = stack[:len(stack)-1]
				sh.losers = append(sh.losers, i, j)
				alive = false
			case undecided:
				sh.undecided++
			case noDuel:
				sh.skipped++
			}
			break
		}
		if alive {
			stack = append(stack, j)
		}
	}

	sh.stack = stack
	if len(stack) == 0 {
		return -1
	}
	return stack[0]
}
