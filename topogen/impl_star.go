package topogen

import (
	"fmt"

	"github.com/csrgraph/csrgraph/csr"
)

const minStarNodes = 2

// hubNode is the fixed hub ID for Star and Wheel, the lowest node ID so
// it sorts first under any degree-descending relabeling.
const hubNode = 0

// Star returns the edge stream of an n-node star: hub node 0 and leaves
// 1..n-1, edges hub -> leaf emitted in ascending leaf index.
func Star(n uint32) (csr.SliceEdges, uint32, error) {
	if n < minStarNodes {
		return nil, 0, fmt.Errorf("topogen.Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewNodes)
	}

	edges := make(csr.SliceEdges, n-1)
	for i := uint32(1); i < n; i++ {
		edges[i-1] = [2]uint32{hubNode, i}
	}
	return edges, n, nil
}
