// Package relabel implements degree-descending relabeling: rewriting a
// csr.Graph or csr.UndirectedGraph in place so node IDs are ranked by
// descending degree, ties broken by ascending original ID. This improves
// cache locality for the downstream algorithms and is a hard precondition
// for triangle counting's orientation trick.
//
// DegreeDescending follows the same four-step protocol as the CSR builder
// it is built on: compute new IDs, re-histogram and re-prefix-sum under
// the new labeling, re-scatter into fresh arrays, then swap them into the
// existing graph value via Graph.ReplaceWith / UndirectedGraph.ReplaceWith,
// which enforces the zero-outstanding-borrow precondition and leaves the
// graph untouched on violation.
package relabel
