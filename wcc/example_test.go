package wcc_test

import (
	"fmt"

	"github.com/csrgraph/csrgraph/csr"
	"github.com/csrgraph/csrgraph/wcc"
)

// ExampleRun finds the components of two disjoint triangles.
func ExampleRun() {
	edges := csr.SliceEdges{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}}
	g, err := csr.BuildDirected(edges, csr.WithNodeCount(6))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := wcc.Run(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Find(0) == res.Find(1) && res.Find(1) == res.Find(2))
	fmt.Println(res.Find(3) == res.Find(4) && res.Find(4) == res.Find(5))
	fmt.Println(res.Find(0) == res.Find(3))

	// Output:
	// true
	// true
	// false
}
