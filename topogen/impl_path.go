package topogen

import (
	"fmt"

	"github.com/csrgraph/csrgraph/csr"
)

const minPathNodes = 2

// Path returns the edge stream of the n-node simple path P_n: nodes
// 0..n-1, edges i -> i+1 for i in [0, n-1), emitted in ascending i.
func Path(n uint32) (csr.SliceEdges, uint32, error) {
	if n < minPathNodes {
		return nil, 0, fmt.Errorf("topogen.Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewNodes)
	}

	edges := make(csr.SliceEdges, n-1)
	for i := uint32(0); i < n-1; i++ {
		edges[i] = [2]uint32{i, i + 1}
	}
	return edges, n, nil
}
