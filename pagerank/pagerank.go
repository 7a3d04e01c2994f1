package pagerank

import (
	"time"

	"github.com/csrgraph/csrgraph/csr"
	"github.com/csrgraph/csrgraph/internal/parallel"
)

// Run computes PageRank over g, pull-style: each iteration walks every
// target node's in-neighbors, dividing each contributor's score by its
// out-degree. Scores and the delta accumulator are f32 throughout;
// out_degree(u)==0 contributes zero (dangling nodes only redistribute
// through the teleport term).
//
// The outer loop is sequential (iteration i+1 reads iteration i's
// scores); within one iteration, internal/parallel.For splits the target
// nodes across chunks, each chunk reading InNeighbors and writing its own
// disjoint slice of next, so no synchronization is needed beyond the
// per-chunk partial delta reduced serially once all chunks finish.
func Run(g *csr.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	cfg := resolveConfig(opts)
	start := time.Now()

	n := int(g.NodeCount())
	scores := make([]float32, n)
	next := make([]float32, n)
	if n == 0 {
		return Result{Scores: scores, IterationsRun: 0, FinalDelta: 0, Elapsed: time.Since(start)}, nil
	}

	initial := float32(1) / float32(n)
	for i := range scores {
		scores[i] = initial
	}

	base := (1 - cfg.DampingFactor) / float32(n)

	var (
		iterationsRun int
		finalDelta    float32
	)
	for iter := 0; iter < cfg.MaxIterations; iter++ {
		workers := parallel.NumWorkers()
		chunks := parallel.Split(n, workers)
		partials := make([]float32, len(chunks))

		_ = parallel.ForEachIndex(len(chunks), func(ci int) error {
			c := chunks[ci]
			var partial float32
			for v := c.Start; v < c.End; v++ {
				nbrs, release := g.InNeighbors(uint32(v))
				var s float32
				for _, u := range nbrs {
					od := g.OutDegree(u)
					if od == 0 {
						continue
					}
					s += scores[u] / float32(od)
				}
				release()

				nv := base + cfg.DampingFactor*s
				next[v] = nv
				diff := nv - scores[v]
				if diff < 0 {
					diff = -diff
				}
				partial += diff
			}
			partials[ci] = partial
			return nil
		})

		var delta float32
		for _, p := range partials {
			delta += p
		}

		scores, next = next, scores
		iterationsRun = iter + 1
		finalDelta = delta

		if delta <= cfg.Tolerance || iter == cfg.MaxIterations-1 {
			break
		}
	}

	return Result{
		Scores:        scores,
		IterationsRun: iterationsRun,
		FinalDelta:    finalDelta,
		Elapsed:       time.Since(start),
	}, nil
}
