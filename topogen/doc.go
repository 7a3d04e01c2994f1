// Package topogen generates deterministic edge streams for well-known
// graph topologies: cycles, paths, stars, wheels, complete and
// bipartite graphs, grids, and randomized Erdős-Rényi/regular graphs.
// Each generator returns csr.SliceEdges ready to hand to
// csr.BuildDirected or csr.BuildUndirected.
//
// Generators emit each logical edge exactly once in a stable,
// documented order; csr.Build* decides how that stream is oriented and
// laid out. Randomized generators take an RNG seed via Option so the
// same seed always reproduces the same edge stream.
package topogen
