package prefixsum

import "github.com/csrgraph/csrgraph/internal/parallel"

// ExclusiveInPlace rewrites a so that a[i] holds the exclusive prefix sum of
// the original a[0..i) and returns the total of the original values
// (equivalently, what a[len(a)] would hold under the "A'[n] == total"
// convention; the caller decides where to store it, e.g.
// offsets[nodeCount]).
//
// Two parallel passes, chunked via internal/parallel: pass one sums each
// chunk locally; a serial scan over the (few) per-chunk totals computes each
// chunk's base offset; pass two rewrites each chunk as an exclusive running
// sum seeded by its base. The serial middle step is what makes the result
// independent of worker count.
func ExclusiveInPlace(a []uint64) uint64 {
	n := len(a)
	if n == 0 {
		return 0
	}

	chunks := parallel.Split(n, parallel.NumWorkers())
	chunkTotals := make([]uint64, len(chunks))

	// Pass 1: local sum per chunk.
	_ = parallel.ForEachIndex(len(chunks), func(ci int) error {
		c := chunks[ci]
		var sum uint64
		for i := c.Start; i < c.End; i++ {
			sum += a[i]
		}
		chunkTotals[ci] = sum
		return nil
	})

	// Serial scan over the (small) per-chunk totals: deterministic
	// regardless of how many workers produced them.
	chunkBases := make([]uint64, len(chunks))
	var total uint64
	for i, s := range chunkTotals {
		chunkBases[i] = total
		total += s
	}

	// Pass 2: rewrite each chunk as an exclusive running sum seeded by its
	// chunk base.
	_ = parallel.ForEachIndex(len(chunks), func(ci int) error {
		c := chunks[ci]
		running := chunkBases[ci]
		for i := c.Start; i < c.End; i++ {
			v := a[i]
			a[i] = running
			running += v
		}
		return nil
	})

	return total
}
