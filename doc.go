// Package csrgraph is a library for large-scale in-memory graph
// analytics: a compact, immutable Compressed-Sparse-Row topology built
// in parallel from an edge stream, plus PageRank, Weakly Connected
// Components (Afforest), and global Triangle Count running over that
// topology using parallel execution across all cores.
//
// Subpackages:
//
//	nodeid/    — generic unsigned node-ID constraint, casts, atomics
//	prefixsum/ — parallel exclusive prefix-sum primitive
//	csr/       — the CSR builder and immutable Graph/UndirectedGraph views
//	relabel/   — in-place descending-degree relabeling
//	pagerank/  — iterative PageRank with damping and an L1 convergence check
//	wcc/       — weakly connected components via Afforest
//	triangle/  — global triangle count over a degree-relabeled graph
//	topogen/   — deterministic edge-stream generators for common topologies
//
// A typical pipeline builds a Graph from an edge stream, optionally
// relabels it by descending degree for cache locality, then runs one or
// more of the three algorithms:
//
//	g, err := csr.BuildDirected(edges, csr.WithLayout(csr.Sorted))
//	res, err := pagerank.Run(g)
//
// This package hosts no executable code of its own; it exists to
// document the module as a whole.
package csrgraph
