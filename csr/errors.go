package csr

import "errors"

// Sentinel errors for the csr package. Callers branch with errors.Is;
// implementations wrap these with "%w" plus a short call-site context
// rather than constructing new dynamic errors, mirroring
// lvlath/builder.errors.go and lvlath/dijkstra's sentinel blocks.
var (
	// ErrNilEdges indicates a nil EdgeIter was passed to BuildDirected or
	// BuildUndirected.
	ErrNilEdges = errors.New("csr: edge iterator is nil")

	// ErrNodeIDOutOfRange indicates an edge referenced a node ID >=
	// the declared (or inferred) NodeCount.
	ErrNodeIDOutOfRange = errors.New("csr: node ID out of range")

	// ErrAllocation indicates the builder could not allocate the offsets
	// or targets arrays (recovered from a makeslice panic triggered by an
	// unreasonably large NodeCount or edge count).
	ErrAllocation = errors.New("csr: allocation failed")

	// ErrAliasingViolation indicates a mutating operation (degree
	// relabeling) was attempted while neighbor slices were still
	// borrowed. The graph is left unchanged.
	ErrAliasingViolation = errors.New("csr: outstanding neighbor borrow")

	// ErrUnsortedLayout indicates an operation that requires a Sorted or
	// Deduplicated layout (e.g. triangle counting's merge-intersection)
	// was invoked on an Unsorted graph.
	ErrUnsortedLayout = errors.New("csr: layout is not sorted")
)
