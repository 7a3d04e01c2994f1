package csr

import (
	"sync"

	"github.com/csrgraph/csrgraph/nodeid"
)

// Graph is an immutable directed CSR topology: two packed (offsets,
// targets) arrays, one for outgoing adjacency and one for incoming, built
// once by BuildDirected. It is safe for unlimited concurrent readers; the
// only mutator is relabel.DegreeDescending, which requires that no
// neighbor slice returned by this Graph still be borrowed.
type Graph struct {
	mu        sync.RWMutex
	nodeCount uint32
	layout    Layout
	out       csrArrays
	in        csrArrays
	borrows   nodeid.AtomicU32
}

// NodeCount returns the number of nodes in [0, NodeCount).
func (g *Graph) NodeCount() uint32 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.nodeCount
}

// EdgeCount returns the number of directed logical edges: len(targets) of
// the outgoing CSR.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.out.targets)
}

// Layout reports the adjacency ordering guarantee this Graph was built
// (or last relabeled) with.
func (g *Graph) Layout() Layout {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.layout
}

// OutDegree returns out_degree(u) = offsets[u+1] - offsets[u] in the
// outgoing CSR.
func (g *Graph) OutDegree(u uint32) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return int(g.out.offsets[u+1] - g.out.offsets[u])
}

// InDegree returns the incoming-CSR degree of u.
func (g *Graph) InDegree(u uint32) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return int(g.in.offsets[u+1] - g.in.offsets[u])
}

// Release is returned by the neighbor-borrow accessors below; callers
// must invoke it once they are done with the borrowed slice. This is the
// dynamic, cooperative equivalent of a compile-time borrow checker:
// relabel refuses to run while the outstanding count is nonzero.
type Release func()

// OutNeighbors returns a zero-copy view of u's outgoing adjacency slice
// and a Release to call once the caller is done with it. The slice
// remains valid Go memory indefinitely (Go's GC, not manual lifetime
// management, guarantees that); Release only updates the borrow count
// that relabel's aliasing check reads.
func (g *Graph) OutNeighbors(u uint32) ([]uint32, Release) {
	g.mu.RLock()
	lo, hi := g.out.offsets[u], g.out.offsets[u+1]
	view := g.out.targets[lo:hi]
	g.mu.RUnlock()

	g.borrows.Add(1)
	return view, func() { g.borrows.Add(^uint32(0)) }
}

// InNeighbors is OutNeighbors' incoming-CSR counterpart.
func (g *Graph) InNeighbors(u uint32) ([]uint32, Release) {
	g.mu.RLock()
	lo, hi := g.in.offsets[u], g.in.offsets[u+1]
	view := g.in.targets[lo:hi]
	g.mu.RUnlock()

	g.borrows.Add(1)
	return view, func() { g.borrows.Add(^uint32(0)) }
}

// CopyOutNeighbors returns an owned copy of u's outgoing adjacency,
// bypassing the borrow-count machinery entirely.
func (g *Graph) CopyOutNeighbors(u uint32) []uint32 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	lo, hi := g.out.offsets[u], g.out.offsets[u+1]
	out := make([]uint32, hi-lo)
	copy(out, g.out.targets[lo:hi])
	return out
}

// OutstandingBorrows reports the current borrow count; used by relabel
// and by tests asserting Release discipline.
func (g *Graph) OutstandingBorrows() uint32 {
	return g.borrows.Load()
}

// ReplaceWith atomically swaps g's arrays for other's, failing with
// ErrAliasingViolation (and leaving g unchanged) if any neighbor slice is
// still borrowed. It is the hook relabel.DegreeDescending uses to publish
// a freshly re-scattered topology in place, so existing *Graph references
// held by callers keep working.
func (g *Graph) ReplaceWith(other *Graph) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.borrows.Load() != 0 {
		return ErrAliasingViolation
	}
	g.nodeCount = other.nodeCount
	g.layout = other.layout
	g.out = other.out
	g.in = other.in
	return nil
}

// UndirectedGraph is an immutable undirected CSR topology: a single packed
// (offsets, targets) array where each logical edge appears in both
// endpoints' adjacency, built once by BuildUndirected.
type UndirectedGraph struct {
	mu        sync.RWMutex
	nodeCount uint32
	layout    Layout
	adj       csrArrays
	borrows   nodeid.AtomicU32
}

// NodeCount returns the number of nodes in [0, NodeCount).
func (g *UndirectedGraph) NodeCount() uint32 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.nodeCount
}

// EdgeCount returns the number of undirected edges: len(targets)/2.
func (g *UndirectedGraph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.adj.targets) / 2
}

// Layout reports the adjacency ordering guarantee.
func (g *UndirectedGraph) Layout() Layout {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.layout
}

// Degree returns degree(u) = offsets[u+1] - offsets[u].
func (g *UndirectedGraph) Degree(u uint32) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return int(g.adj.offsets[u+1] - g.adj.offsets[u])
}

// Neighbors returns a zero-copy view of u's adjacency slice and a Release
// to call once done, exactly as Graph.OutNeighbors.
func (g *UndirectedGraph) Neighbors(u uint32) ([]uint32, Release) {
	g.mu.RLock()
	lo, hi := g.adj.offsets[u], g.adj.offsets[u+1]
	view := g.adj.targets[lo:hi]
	g.mu.RUnlock()

	g.borrows.Add(1)
	return view, func() { g.borrows.Add(^uint32(0)) }
}

// CopyNeighbors returns an owned copy of u's adjacency.
func (g *UndirectedGraph) CopyNeighbors(u uint32) []uint32 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	lo, hi := g.adj.offsets[u], g.adj.offsets[u+1]
	out := make([]uint32, hi-lo)
	copy(out, g.adj.targets[lo:hi])
	return out
}

// OutstandingBorrows reports the current borrow count.
func (g *UndirectedGraph) OutstandingBorrows() uint32 {
	return g.borrows.Load()
}

// ReplaceWith is Graph.ReplaceWith's undirected counterpart.
func (g *UndirectedGraph) ReplaceWith(other *UndirectedGraph) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.borrows.Load() != 0 {
		return ErrAliasingViolation
	}
	g.nodeCount = other.nodeCount
	g.layout = other.layout
	g.adj = other.adj
	return nil
}
