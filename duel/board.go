package duel

// BulletinBoard holds the periodicity facts a periodic stage establishes.
type BulletinBoard struct {
	// PeriodSize is the offset of the second candidate in the first block:
	// the period of the prefix verified so far.
	PeriodSize int
	// L is the prefix length rounded up to a multiple of PeriodSize.
	L int
	// Pi is the duel threshold of the pattern.
	Pi int
}

// localBoard records, per block, the lowest candidate the block carries.
type localBoard struct {
	size int
	reps []int
}

// rebuild partitions [0, c.n) into blocks of the given size and records the
// first candidate of each, or -1.
func (lb *localBoard) rebuild(c *candidateSet, size int) {
	blocks := (c.n + size - 1) / size
	lb.size = size
	if cap(lb.reps) >= blocks {
		lb.reps = lb.reps[:blocks]
	} else {
		lb.reps = make([]int, blocks)
	}
	for i := range lb.reps {
		lb.reps[i] = -1
	}

	for j := c.next(0); j >= 0; {
		b := j / size
		lb.reps[b] = j
		j = c.next((b + 1) * size)
	}
}

// bounds returns the half-open index range of block b, clipped to n.
func (lb *localBoard) bounds(b, n int) (int, int) {
	return b * lb.size, min((b+1)*lb.size, n)
}
