package relabel

import (
	"fmt"
	"sort"

	"github.com/csrgraph/csrgraph/csr"
)

// rankEntry pairs a node's degree with its original ID so the descending
// sort in computeNewIDs can break ties by ascending original ID.
type rankEntry struct {
	degree int
	id     uint32
}

// computeNewIDs sorts nodes by degree descending (ties by ascending
// original ID) and returns newID, where newID[old] is the rank of old in
// that order: the highest-degree node becomes ID 0.
func computeNewIDs(degrees []int) []uint32 {
	n := len(degrees)
	entries := make([]rankEntry, n)
	for i, d := range degrees {
		entries[i] = rankEntry{degree: d, id: uint32(i)}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].degree != entries[j].degree {
			return entries[i].degree > entries[j].degree
		}
		return entries[i].id < entries[j].id
	})

	newID := make([]uint32, n)
	for rank, e := range entries {
		newID[e.id] = uint32(rank)
	}
	return newID
}

// DegreeDescending relabels a directed Graph in place so node IDs rank by
// descending degree (measured per cfg.DegreeMode, total degree by
// default), ties broken by ascending original ID. It returns the newID
// permutation (newID[old] == new) on success.
//
// Precondition: no neighbor slice borrowed from g may be outstanding. If
// one is, DegreeDescending fails fast with csr.ErrAliasingViolation and g
// is left unchanged; the same error can also surface from the final swap
// if a borrow is taken concurrently with the rebuild.
func DegreeDescending(g *csr.Graph, opts ...Option) ([]uint32, error) {
	if g.OutstandingBorrows() != 0 {
		return nil, csr.ErrAliasingViolation
	}
	cfg := resolveConfig(opts)

	n := g.NodeCount()
	degrees := make([]int, n)
	for u := uint32(0); u < n; u++ {
		switch cfg.DegreeMode {
		case OutDegreeOnly:
			degrees[u] = g.OutDegree(u)
		case InDegreeOnly:
			degrees[u] = g.InDegree(u)
		default:
			degrees[u] = g.OutDegree(u) + g.InDegree(u)
		}
	}
	newID := computeNewIDs(degrees)

	relabeled := make(csr.SliceEdges, 0, g.EdgeCount())
	for u := uint32(0); u < n; u++ {
		nbrs, release := g.OutNeighbors(u)
		for _, v := range nbrs {
			relabeled = append(relabeled, [2]uint32{newID[u], newID[v]})
		}
		release()
	}

	rebuilt, err := csr.BuildDirected(relabeled, csr.WithNodeCount(n), csr.WithLayout(g.Layout()))
	if err != nil {
		return nil, fmt.Errorf("relabel.DegreeDescending: rebuild: %w", err)
	}

	if err := g.ReplaceWith(rebuilt); err != nil {
		return nil, fmt.Errorf("relabel.DegreeDescending: %w", err)
	}
	return newID, nil
}

// DegreeDescendingUndirected is DegreeDescending's UndirectedGraph
// counterpart. Each logical edge is extracted exactly once (only the
// (u, v) occurrence with v >= u is kept) before remapping and rebuilding,
// so BuildUndirected's own doubling reproduces the original topology
// rather than quadrupling it. A self-loop occupies two entries of u's own
// adjacency, so only every second such entry is kept.
func DegreeDescendingUndirected(g *csr.UndirectedGraph) ([]uint32, error) {
	if g.OutstandingBorrows() != 0 {
		return nil, csr.ErrAliasingViolation
	}

	n := g.NodeCount()
	degrees := make([]int, n)
	for u := uint32(0); u < n; u++ {
		degrees[u] = g.Degree(u)
	}
	newID := computeNewIDs(degrees)

	relabeled := make(csr.SliceEdges, 0, g.EdgeCount())
	for u := uint32(0); u < n; u++ {
		nbrs, release := g.Neighbors(u)
		oddSelfLoop := false
		for _, v := range nbrs {
			if v == u {
				oddSelfLoop = !oddSelfLoop
				if !oddSelfLoop {
					continue
				}
			}
			if v >= u {
				relabeled = append(relabeled, [2]uint32{newID[u], newID[v]})
			}
		}
		release()
	}

	rebuilt, err := csr.BuildUndirected(relabeled, csr.WithNodeCount(n), csr.WithLayout(g.Layout()))
	if err != nil {
		return nil, fmt.Errorf("relabel.DegreeDescendingUndirected: rebuild: %w", err)
	}

	if err := g.ReplaceWith(rebuilt); err != nil {
		return nil, fmt.Errorf("relabel.DegreeDescendingUndirected: %w", err)
	}
	return newID, nil
}
