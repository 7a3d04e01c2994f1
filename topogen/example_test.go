package topogen_test

import (
	"fmt"

	"github.com/csrgraph/csrgraph/csr"
	"github.com/csrgraph/csrgraph/topogen"
)

// ExampleComplete builds K4 and counts its edges.
func ExampleComplete() {
	edges, n, err := topogen.Complete(4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	g, err := csr.BuildUndirected(edges, csr.WithNodeCount(n), csr.WithLayout(csr.Sorted))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("edge_count:", g.EdgeCount())

	// Output:
	// edge_count: 6
}
