// Package csr_test provides runnable examples showing how to build a CSR
// topology and read it back out.
package csr_test

import (
	"fmt"

	"github.com/csrgraph/csrgraph/csr"
)

// ExampleBuildDirected builds a tiny directed graph and prints its
// degrees and neighbors.
func ExampleBuildDirected() {
	edges := csr.SliceEdges{
		{0, 1}, {0, 2}, {1, 2}, {1, 3}, {2, 3},
	}

	g, err := csr.BuildDirected(edges, csr.WithLayout(csr.Sorted))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	out, release := g.OutNeighbors(1)
	fmt.Printf("node_count=%d edge_count=%d out_degree(1)=%d out_neighbors(1)=%v\n",
		g.NodeCount(), g.EdgeCount(), g.OutDegree(1), out)
	release()

	// Output:
	// node_count=4 edge_count=5 out_degree(1)=2 out_neighbors(1)=[2 3]
}
