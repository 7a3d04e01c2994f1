// Package triangle implements global triangle counting over an
// undirected csr.UndirectedGraph via the node-iterator-plus-orientation
// technique: the graph must already be degree-relabeled (descending) and
// Sorted or Deduplicated, so every triangle is discovered exactly once
// from its lowest-ID vertex using a sorted-merge adjacency intersection.
package triangle
