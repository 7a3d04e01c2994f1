// Package nodeid provides the integer node-identifier abstraction shared by
// every other package in this module: the Unsigned constraint used to stay
// generic over 32- and 64-bit node IDs, lossless casting between the two,
// and small atomic wrappers used by the CSR builder and the WCC union-find.
//
// Nodes are dense: valid IDs occupy [0, count) for some count; nodeid itself
// does not store or validate any node set, it only carries the type and the
// concurrency primitives other packages build on.
package nodeid
