package csr

// Layout controls the post-build order within each node's adjacency slice.
type Layout int

const (
	// Unsorted leaves each adjacency slice in implementation-defined
	// order (whatever order the parallel scatter happened to produce).
	Unsorted Layout = iota

	// Sorted orders each adjacency slice ascending by target ID.
	Sorted

	// Deduplicated sorts each adjacency slice and additionally removes
	// adjacent duplicates and self-loops (u, u).
	Deduplicated
)

// String renders the layout tag for diagnostics.
func (l Layout) String() string {
	switch l {
	case Unsorted:
		return "Unsorted"
	case Sorted:
		return "Sorted"
	case Deduplicated:
		return "Deduplicated"
	default:
		return "Layout(?)"
	}
}

// Orientation controls how an edge (src, dst) is scattered into adjacency
// during Build.
type Orientation int

const (
	// DirectedOut builds the outgoing CSR: edge (u,v) appears in u's slice.
	DirectedOut Orientation = iota

	// DirectedIn builds the incoming CSR: edge (u,v) appears in v's slice.
	DirectedIn

	// Undirected builds a single CSR where edge (u,v) appears in both u's
	// and v's slices.
	Undirected
)

// EdgeIter is the builder's input contract: a finite, randomly-indexable
// sequence of (src, dst) node ID pairs. Any producer satisfies it by
// implementing Len/At, whether backed by an in-memory slice, a decoded
// Graph500 file, or a text edge list; parsing those external formats is
// out of scope for this module.
type EdgeIter interface {
	// Len returns the total number of edges.
	Len() int
	// At returns the (src, dst) pair at index i, 0 <= i < Len().
	At(i int) (src, dst uint32)
}

// SliceEdges adapts a plain [][2]uint32 edge list to EdgeIter. This is the
// producer used throughout this module's own tests and by the topogen
// package's deterministic topology generators.
type SliceEdges [][2]uint32

// Len implements EdgeIter.
func (s SliceEdges) Len() int { return len(s) }

// At implements EdgeIter.
func (s SliceEdges) At(i int) (uint32, uint32) { return s[i][0], s[i][1] }

// PairEdges adapts two parallel slices of equal length to EdgeIter, useful
// when sources and destinations are already columnar (e.g. decoded from a
// Graph500 binary pair stream without intermediate struct allocation).
type PairEdges struct {
	Src, Dst []uint32
}

// Len implements EdgeIter.
func (p PairEdges) Len() int { return len(p.Src) }

// At implements EdgeIter.
func (p PairEdges) At(i int) (uint32, uint32) { return p.Src[i], p.Dst[i] }
