// Package wcc implements Weakly Connected Components over a directed
// csr.Graph, treating outgoing adjacency as undirected for connectivity,
// using the Afforest algorithm: a sampled union-find that links most of
// the graph from a bounded neighbor prefix, guesses the dominant
// component by random sampling, then links the remainder only for nodes
// outside it.
//
// Find uses atomic load plus CAS path halving; union links by max-root
// so every successful CAS strictly reduces some node's distance to the
// root, guaranteeing termination without a global lock.
package wcc
