// Package csr implements the Compressed-Sparse-Row topology: the parallel
// builder that turns an edge stream into packed (offsets, targets) arrays,
// and the immutable read API over that topology.
//
// A Graph holds two CSR arrays (outgoing and incoming adjacency) for
// directed topologies; an UndirectedGraph holds one, with every edge
// present in both endpoints' adjacency. Both types are built once via
// BuildDirected/BuildUndirected and are safe for unlimited concurrent
// readers afterward. The only mutators are relabel.DegreeDescending and
// relabel.DegreeDescendingUndirected (in the sibling relabel package),
// which require exclusive access (no outstanding neighbor-slice borrows)
// and otherwise fail without touching the graph.
//
// Error handling follows the same sentinel-error, no-panic-in-hot-loops
// convention as every other package in this module: each builder returns a
// recoverable error for a node ID ≥ NodeCount, and wraps an allocation
// panic (an oversized NodeCount/edge count) into ErrAllocation rather than
// letting it escape to the caller.
package csr
