package topogen

import (
	"fmt"

	"github.com/csrgraph/csrgraph/csr"
)

const minCycleNodes = 3

// Cycle returns the edge stream of the n-node simple cycle C_n: nodes
// 0..n-1, edges i -> (i+1)%n for i in [0, n), emitted in ascending i.
func Cycle(n uint32) (csr.SliceEdges, uint32, error) {
	if n < minCycleNodes {
		return nil, 0, fmt.Errorf("topogen.Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewNodes)
	}

	edges := make(csr.SliceEdges, n)
	for i := uint32(0); i < n; i++ {
		edges[i] = [2]uint32{i, (i + 1) % n}
	}
	return edges, n, nil
}
