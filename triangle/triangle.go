package triangle

import (
	"time"

	"github.com/csrgraph/csrgraph/csr"
	"github.com/csrgraph/csrgraph/internal/parallel"
)

// GlobalCount counts distinct undirected triangles in g via the
// node-iterator-plus-orientation technique: for each node u, for each
// neighbor v > u, count neighbors of both u and v that are greater than
// v, via a sorted-merge intersection. Relabeling the graph by descending
// degree before calling this caps the work each pair does; GlobalCount
// itself only requires the adjacency to already be sorted.
//
// g must have layout Sorted or Deduplicated; a sorted-merge intersection
// over Unsorted adjacency is undefined, so GlobalCount refuses to run
// and returns csr.ErrUnsortedLayout instead.
func GlobalCount(g *csr.UndirectedGraph) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if layout := g.Layout(); layout != csr.Sorted && layout != csr.Deduplicated {
		return Result{}, csr.ErrUnsortedLayout
	}

	start := time.Now()
	n := int(g.NodeCount())
	if n == 0 {
		return Result{Count: 0, Elapsed: time.Since(start)}, nil
	}

	chunks := parallel.Split(n, parallel.NumWorkers())
	partials := make([]uint64, len(chunks))

	_ = parallel.ForEachIndex(len(chunks), func(ci int) error {
		c := chunks[ci]
		var local uint64
		for ui := c.Start; ui < c.End; ui++ {
			u := uint32(ui)
			nu, releaseU := g.Neighbors(u)
			for _, v := range nu {
				if v <= u {
					continue
				}
				nv, releaseV := g.Neighbors(v)
				local += countCommonAbove(nu, nv, v)
				releaseV()
			}
			releaseU()
		}
		partials[ci] = local
		return nil
	})

	var total uint64
	for _, p := range partials {
		total += p
	}

	return Result{Count: total, Elapsed: time.Since(start)}, nil
}

// countCommonAbove walks sorted slices a and b with one pointer each,
// skipping entries not greater than v, and counts shared values. Both
// slices must be sorted ascending.
func countCommonAbove(a, b []uint32, v uint32) uint64 {
	i, j := 0, 0
	var count uint64
	for i < len(a) && j < len(b) {
		if a[i] <= v {
			i++
			continue
		}
		if b[j] <= v {
			j++
			continue
		}
		switch {
		case a[i] == b[j]:
			count++
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return count
}
