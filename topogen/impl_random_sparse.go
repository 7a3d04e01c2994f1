package topogen

import (
	"fmt"

	"github.com/csrgraph/csrgraph/csr"
)

const minRandomSparseNodes = 1

// RandomSparse returns the edge stream of an Erdős-Rényi-style random
// graph over n nodes: every unordered pair {i, j} with i<j is included
// independently with probability p, sampled in ascending (i, j) order
// so the result is deterministic for a fixed seed.
func RandomSparse(n uint32, p float64, opts ...Option) (csr.SliceEdges, uint32, error) {
	if n < minRandomSparseNodes {
		return nil, 0, fmt.Errorf("topogen.RandomSparse: n=%d < min=%d: %w", n, minRandomSparseNodes, ErrTooFewNodes)
	}
	if p < 0 || p > 1 {
		return nil, 0, fmt.Errorf("topogen.RandomSparse: p=%.6f not in [0,1]: %w", p, ErrInvalidProbability)
	}

	cfg := resolveConfig(opts)
	rng := cfg.newRand()

	var edges csr.SliceEdges
	for i := uint32(0); i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				edges = append(edges, [2]uint32{i, j})
			}
		}
	}
	return edges, n, nil
}
