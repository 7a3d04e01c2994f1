// Package parallel is the ambient chunked-fan-out helper shared by the CSR
// builder, degree relabeling, and the three graph algorithms. It is not part
// of this module's public surface: every exported algorithm package wraps it
// behind its own Config/Option so callers never import "internal/parallel"
// directly.
//
// The split-into-chunks-and-join pattern partitions a disjoint index range
// [0, n) into roughly NumWorkers() contiguous chunks, runs one goroutine per
// chunk, and joins with golang.org/x/sync/errgroup so a worker failure
// (allocation, invariant violation) is carried back through the shared
// error slot and surfaced at the join barrier, rather than a hand-rolled
// sync.WaitGroup plus atomic.Value error slot.
package parallel
