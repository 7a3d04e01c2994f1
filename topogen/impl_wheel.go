package topogen

import (
	"fmt"

	"github.com/csrgraph/csrgraph/csr"
)

const minWheelNodes = 4

// Wheel returns the edge stream of an n-node wheel W_n: a rim cycle
// C_{n-1} over nodes 1..n-1 plus a hub (node 0) spoke to every rim node,
// rim edges first in ascending index, then spokes in ascending index.
func Wheel(n uint32) (csr.SliceEdges, uint32, error) {
	if n < minWheelNodes {
		return nil, 0, fmt.Errorf("topogen.Wheel: n=%d < min=%d: %w", n, minWheelNodes, ErrTooFewNodes)
	}

	rimSize := n - 1
	edges := make(csr.SliceEdges, 0, rimSize*2)
	for i := uint32(0); i < rimSize; i++ {
		u := 1 + i
		v := 1 + (i+1)%rimSize
		edges = append(edges, [2]uint32{u, v})
	}
	for i := uint32(1); i < n; i++ {
		edges = append(edges, [2]uint32{hubNode, i})
	}
	return edges, n, nil
}
