package topogen

import (
	"fmt"

	"github.com/csrgraph/csrgraph/csr"
)

const minBipartiteSide = 1

// Bipartite returns the edge stream of the complete bipartite graph
// K_{n1,n2}: left nodes 0..n1-1, right nodes n1..n1+n2-1, edges (l, r)
// emitted in lexicographic (l, r) order.
func Bipartite(n1, n2 uint32) (csr.SliceEdges, uint32, error) {
	if n1 < minBipartiteSide {
		return nil, 0, fmt.Errorf("topogen.Bipartite: n1=%d < min=%d: %w", n1, minBipartiteSide, ErrTooFewNodes)
	}
	if n2 < minBipartiteSide {
		return nil, 0, fmt.Errorf("topogen.Bipartite: n2=%d < min=%d: %w", n2, minBipartiteSide, ErrTooFewNodes)
	}

	edges := make(csr.SliceEdges, 0, n1*n2)
	for l := uint32(0); l < n1; l++ {
		for r := uint32(0); r < n2; r++ {
			edges = append(edges, [2]uint32{l, n1 + r})
		}
	}
	return edges, n1 + n2, nil
}
