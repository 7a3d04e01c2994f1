package topogen

import (
	"fmt"

	"github.com/csrgraph/csrgraph/csr"
)

const (
	minRandomRegularNodes   = 1
	maxStubMatchingAttempts = 8
)

// RandomRegular returns the edge stream of a random undirected d-regular
// simple graph over n nodes, built via stub-matching: each node
// contributes d stubs, stubs are shuffled and paired, and a pairing
// producing a self-loop or a repeated edge is discarded and retried
// (bounded by maxStubMatchingAttempts) rather than silently kept.
func RandomRegular(n uint32, degree int, opts ...Option) (csr.SliceEdges, uint32, error) {
	if n < minRandomRegularNodes {
		return nil, 0, fmt.Errorf("topogen.RandomRegular: n=%d < min=%d: %w", n, minRandomRegularNodes, ErrTooFewNodes)
	}
	if degree < 0 || uint32(degree) >= n {
		return nil, 0, fmt.Errorf("topogen.RandomRegular: degree=%d not in [0,%d): %w", degree, n, ErrInfeasibleDegree)
	}
	if (int(n)*degree)%2 != 0 {
		return nil, 0, fmt.Errorf("topogen.RandomRegular: n*degree=%d is odd: %w", int(n)*degree, ErrInfeasibleDegree)
	}

	cfg := resolveConfig(opts)
	rng := cfg.newRand()

	stubCount := int(n) * degree
	stubs := make([]uint32, stubCount)
	for i := range stubs {
		stubs[i] = uint32(i) / uint32(degree)
	}

	for attempt := 0; attempt < maxStubMatchingAttempts; attempt++ {
		rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

		seen := make(map[[2]uint32]bool, stubCount/2)
		edges := make(csr.SliceEdges, 0, stubCount/2)
		valid := true
		for i := 0; i+1 < len(stubs); i += 2 {
			u, v := stubs[i], stubs[i+1]
			if u == v {
				valid = false
				break
			}
			if u > v {
				u, v = v, u
			}
			key := [2]uint32{u, v}
			if seen[key] {
				valid = false
				break
			}
			seen[key] = true
			edges = append(edges, key)
		}
		if valid {
			return edges, n, nil
		}
	}

	return nil, 0, fmt.Errorf("topogen.RandomRegular: exhausted %d attempts: %w", maxStubMatchingAttempts, ErrConstructFailed)
}
