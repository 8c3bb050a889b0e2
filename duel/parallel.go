package duel

import (
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/cpu"

	"github.com/coregx/strmatch/internal/conv"
	"github.com/coregx/strmatch/internal/sparse"
)

// shard is one worker's output for a step. Workers never write shared
// state; they only append to their own shard.
type shard struct {
	losers []int
	stack  []int

	duels      int
	undecided  int
	skipped    int
	extensions int

	// Keeps neighbouring shards' counters off the same cache line.
	_ cpu.CacheLinePad
}

// executor runs the steps of a stage over a frozen candidate set.
//
// A step partitions an index range among the workers. Each worker reads the
// candidate set and the combined sequence and records losers in its shard.
// Wait is the barrier: only after it are losers merged and cleared, so every
// read in a step sees the set the previous step settled.
type executor struct {
	cands   *candidateSet
	workers int
	shards  []shard
	pending *sparse.Set
}

func newExecutor(cands *candidateSet, workers int) *executor {
	// The pending set indexes offsets as uint32; larger inputs run sequentially.
	if !conv.FitsUint32(cands.n) {
		workers = 1
	}
	x := &executor{
		cands:   cands,
		workers: max(1, workers),
	}
	x.shards = make([]shard, x.workers)
	if x.workers > 1 {
		x.pending = sparse.New(cands.n)
	}
	return x
}

// step runs fn over [0, n) and applies the eliminations it reports.
// It returns the per-step totals of all shards.
func (x *executor) step(n int, fn func(lo, hi int, sh *shard)) shard {
	if x.workers == 1 || n < 2*x.workers {
		sh := &x.shards[0]
		fn(0, n, sh)
		for _, j := range sh.losers {
			x.cands.clear(j)
		}
		return x.collect()
	}

	chunk := (n + x.workers - 1) / x.workers
	var g errgroup.Group
	g.SetLimit(x.workers)
	for w := 0; w < x.workers; w++ {
		lo := w * chunk
		if lo >= n {
			break
		}
		hi := min(n, lo+chunk)
		sh := &x.shards[w]
		g.Go(func() error {
			fn(lo, hi, sh)
			return nil
		})
	}
	// Workers cannot fail.
	_ = g.Wait()

	for i := range x.shards {
		for _, j := range x.shards[i].losers {
			x.pending.Insert(j)
		}
	}
	x.pending.Each(x.cands.clear)
	x.pending.Clear()
	return x.collect()
}

// collect sums and resets the shards.
func (x *executor) collect() shard {
	var total shard
	for i := range x.shards {
		sh := &x.shards[i]
		total.duels += sh.duels
		total.undecided += sh.undecided
		total.skipped += sh.skipped
		total.extensions += sh.extensions
		sh.losers = sh.losers[:0]
		sh.duels, sh.undecided, sh.skipped, sh.extensions = 0, 0, 0, 0
	}
	return total
}

func (s *shard) add(o shard) {
	s.duels += o.duels
	s.undecided += o.undecided
	s.skipped += o.skipped
	s.extensions += o.extensions
}
