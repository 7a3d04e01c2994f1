// Package pagerank implements iterative PageRank over a directed
// csr.Graph, pull-style, with damping and an L1-norm convergence check.
//
// Dangling nodes (out_degree(u) == 0) redistribute no mass explicitly;
// their rank only reaches other nodes through the teleport term.
package pagerank
