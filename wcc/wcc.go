package wcc

import (
	"math/rand/v2"
	"time"

	"github.com/csrgraph/csrgraph/csr"
	"github.com/csrgraph/csrgraph/internal/parallel"
	"github.com/csrgraph/csrgraph/nodeid"
)

// unionFind is a lock-free disjoint-set over [0, n) node IDs: find walks
// parent pointers with one path-halving CAS per hop, union links the
// higher root under the lower one so every successful CAS strictly
// shortens some node's path to its root.
type unionFind struct {
	parent []nodeid.AtomicU32
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]nodeid.AtomicU32, n)}
	for i := range uf.parent {
		uf.parent[i].Store(uint32(i))
	}
	return uf
}

func (uf *unionFind) find(u uint32) uint32 {
	for {
		p := uf.parent[u].Load()
		if p == u {
			return u
		}
		gp := uf.parent[p].Load()
		uf.parent[u].CompareAndSwap(p, gp)
		u = gp
	}
}

func (uf *unionFind) union(u, v uint32) {
	for {
		pu, pv := uf.find(u), uf.find(v)
		if pu == pv {
			return
		}
		hi, lo := pu, pv
		if lo > hi {
			hi, lo = lo, hi
		}
		if uf.parent[hi].CompareAndSwap(hi, lo) {
			return
		}
	}
}

func (uf *unionFind) snapshot() []uint32 {
	out := make([]uint32, len(uf.parent))
	for i := range out {
		out[i] = uf.parent[i].Load()
	}
	return out
}

// workersFor derives a worker count from a configured chunk size: roughly
// n/chunkSize chunks, capped below by 1 and above by NumWorkers so a tiny
// ChunkSize on a huge graph doesn't spawn more goroutines than cores.
func workersFor(n, chunkSize int) int {
	workers := (n + chunkSize - 1) / chunkSize
	if workers < 1 {
		workers = 1
	}
	if maxWorkers := parallel.NumWorkers(); workers > maxWorkers {
		workers = maxWorkers
	}
	return workers
}

// Run computes weakly connected components of g's underlying undirected
// graph (outgoing adjacency treated as undirected edges), using the
// Afforest algorithm: link a bounded neighbor prefix of every node,
// compress, guess the dominant component by sampling, link the rest only
// outside it, then compress again.
func Run(g *csr.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	cfg := resolveConfig(opts)
	start := time.Now()

	n := int(g.NodeCount())
	if n == 0 {
		return Result{Components: []uint32{}, Elapsed: time.Since(start)}, nil
	}

	uf := newUnionFind(n)
	workers := workersFor(n, cfg.ChunkSize)

	// Phase 1: link each node's leading neighbor_rounds outgoing neighbors.
	_ = parallel.ForWorkers(n, workers, func(c parallel.Chunk) error {
		for ui := c.Start; ui < c.End; ui++ {
			u := uint32(ui)
			nbrs, release := g.OutNeighbors(u)
			rounds := cfg.NeighborRounds
			if len(nbrs) < rounds {
				rounds = len(nbrs)
			}
			for i := 0; i < rounds; i++ {
				uf.union(u, nbrs[i])
			}
			release()
		}
		return nil
	})

	// Phase 2: sample compress so the forest is shallow before sampling.
	_ = parallel.ForWorkers(n, workers, func(c parallel.Chunk) error {
		for ui := c.Start; ui < c.End; ui++ {
			uf.find(uint32(ui))
		}
		return nil
	})

	// Phase 3: find the probable dominant component by sampling parent roots.
	dominant := findDominantRoot(uf, n, cfg.SamplingSize)

	// Phase 4: for every node not already in the dominant component, link
	// its remaining outgoing neighbors and all of its incoming neighbors.
	// The incoming side covers edges whose source sits in the dominant
	// component and was therefore skipped.
	_ = parallel.ForWorkers(n, workers, func(c parallel.Chunk) error {
		for ui := c.Start; ui < c.End; ui++ {
			u := uint32(ui)
			if uf.find(u) == dominant {
				continue
			}
			nbrs, release := g.OutNeighbors(u)
			for i := cfg.NeighborRounds; i < len(nbrs); i++ {
				uf.union(u, nbrs[i])
			}
			release()
			inNbrs, releaseIn := g.InNeighbors(u)
			for _, v := range inNbrs {
				uf.union(u, v)
			}
			releaseIn()
		}
		return nil
	})

	// Phase 5: final compress.
	_ = parallel.ForWorkers(n, workers, func(c parallel.Chunk) error {
		for ui := c.Start; ui < c.End; ui++ {
			uf.find(uint32(ui))
		}
		return nil
	})

	return Result{Components: uf.snapshot(), Elapsed: time.Since(start)}, nil
}

// findDominantRoot samples up to sampleSize uniformly random parent slots
// and returns the most frequent root among them, the heuristic estimate
// of the largest component's representative.
func findDominantRoot(uf *unionFind, n, sampleSize int) uint32 {
	counts := make(map[uint32]int, sampleSize)
	best, bestCount := uint32(0), 0
	for i := 0; i < sampleSize; i++ {
		u := uint32(rand.N(n))
		root := uf.find(u)
		counts[root]++
		if counts[root] > bestCount {
			best, bestCount = root, counts[root]
		}
	}
	return best
}
