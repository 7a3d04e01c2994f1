// Package prefixsum implements the parallel exclusive prefix-sum primitive
// used by the CSR builder to turn a per-node degree histogram into
// adjacency-slice offsets, and again by relabel and the Deduplicated
// layout pass to re-derive offsets from new per-node lengths.
//
// The algorithm is the textbook two-pass parallel scan: partition the input
// into chunks, sum each chunk locally, serially scan the per-chunk totals to
// get each chunk's base offset, then rewrite each chunk as an exclusive
// running sum seeded by its base. The result is identical for any worker
// count.
package prefixsum
