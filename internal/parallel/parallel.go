package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// NumWorkers returns the default fan-out width: logical CPU count. Callers
// that need a different width (e.g. a configured ChunkSize in wcc.Config)
// compute their own chunk count instead of calling this.
func NumWorkers() int {
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	return n
}

// Chunk describes one contiguous, half-open index range [Start, End) of a
// larger [0, n) space.
type Chunk struct {
	Start, End int
}

// Split partitions [0, n) into at most workers contiguous chunks of roughly
// equal size. It never returns more chunks than n, and returns no chunks for
// n <= 0.
func Split(n, workers int) []Chunk {
	if n <= 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	size := (n + workers - 1) / workers
	chunks := make([]Chunk, 0, workers)
	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}
		chunks = append(chunks, Chunk{Start: start, End: end})
	}
	return chunks
}

// For runs fn once per chunk of [0, n), fanning out across NumWorkers()
// goroutines and joining via errgroup.Group.Wait. The first error returned
// by any chunk aborts the remaining in-flight chunks' contribution to the
// result (errgroup semantics) and is returned to the caller; the other
// chunks still run to completion since fn has no cancellation signal to
// observe.
func For(n int, fn func(chunk Chunk) error) error {
	return ForWorkers(n, NumWorkers(), fn)
}

// ForWorkers is For with an explicit worker count, used where a Config
// exposes its own chunk/worker sizing knob (e.g. wcc.Config.ChunkSize).
func ForWorkers(n, workers int, fn func(chunk Chunk) error) error {
	chunks := Split(n, workers)
	if len(chunks) == 0 {
		return nil
	}

	var g errgroup.Group
	for _, c := range chunks {
		c := c
		g.Go(func() error {
			return fn(c)
		})
	}
	return g.Wait()
}

// ForEachIndex runs fn(i) for every i in [0, n), fanning out over NumWorkers()
// chunks. It is a convenience wrapper around For for loops with no internal
// chunk-local state.
func ForEachIndex(n int, fn func(i int) error) error {
	return For(n, func(c Chunk) error {
		for i := c.Start; i < c.End; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	})
}
