package topogen

import (
	"fmt"

	"github.com/csrgraph/csrgraph/csr"
)

const minCompleteNodes = 1

// Complete returns the edge stream of the complete graph K_n: every
// unordered pair {i, j} with i<j, emitted in lexicographic (i, j) order.
func Complete(n uint32) (csr.SliceEdges, uint32, error) {
	if n < minCompleteNodes {
		return nil, 0, fmt.Errorf("topogen.Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewNodes)
	}

	edges := make(csr.SliceEdges, 0, n*(n-1)/2)
	for i := uint32(0); i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, [2]uint32{i, j})
		}
	}
	return edges, n, nil
}
