package csr

import (
	"fmt"
	"sort"

	"github.com/csrgraph/csrgraph/internal/parallel"
	"github.com/csrgraph/csrgraph/nodeid"
	"github.com/csrgraph/csrgraph/prefixsum"
)

// csrArrays is the packed (offsets, targets) pair: offsets has length
// nodeCount+1 and targets has length offsets[nodeCount].
type csrArrays struct {
	offsets []uint64
	targets []uint32
}

func (a csrArrays) nodeCount() uint32 { return uint32(len(a.offsets) - 1) }

// BuildDirected constructs a directed Graph from edges: both the outgoing
// and the incoming CSR are built from the same stream. NodeCount, if not supplied via
// WithNodeCount, is inferred as max(id)+1 over the whole stream so both
// CSRs share an identical node count.
func BuildDirected(edges EdgeIter, opts ...Option) (*Graph, error) {
	if edges == nil {
		return nil, ErrNilEdges
	}
	cfg := resolveOptions(opts)

	nodeCount, err := resolveNodeCount(edges, cfg.NodeCount)
	if err != nil {
		return nil, err
	}

	out, err := buildCSR(edges, nodeCount, DirectedOut, cfg.Layout)
	if err != nil {
		return nil, fmt.Errorf("csr.BuildDirected: out CSR: %w", err)
	}
	in, err := buildCSR(edges, nodeCount, DirectedIn, cfg.Layout)
	if err != nil {
		return nil, fmt.Errorf("csr.BuildDirected: in CSR: %w", err)
	}

	return &Graph{nodeCount: nodeCount, layout: cfg.Layout, out: out, in: in}, nil
}

// BuildUndirected constructs an UndirectedGraph: a single CSR where each
// logical edge (u, v) materializes as two directed adjacency entries, one
// at u and one at v.
func BuildUndirected(edges EdgeIter, opts ...Option) (*UndirectedGraph, error) {
	if edges == nil {
		return nil, ErrNilEdges
	}
	cfg := resolveOptions(opts)

	nodeCount, err := resolveNodeCount(edges, cfg.NodeCount)
	if err != nil {
		return nil, err
	}

	arr, err := buildCSR(edges, nodeCount, Undirected, cfg.Layout)
	if err != nil {
		return nil, fmt.Errorf("csr.BuildUndirected: %w", err)
	}

	return &UndirectedGraph{nodeCount: nodeCount, layout: cfg.Layout, adj: arr}, nil
}

func resolveNodeCount(edges EdgeIter, declared uint32) (uint32, error) {
	if declared != 0 {
		return declared, nil
	}
	return inferNodeCount(edges), nil
}

// inferNodeCount computes max(id)+1 over the edge stream in parallel: a
// per-chunk local max, reduced serially.
func inferNodeCount(edges EdgeIter) uint32 {
	n := edges.Len()
	if n == 0 {
		return 0
	}

	chunks := parallel.Split(n, parallel.NumWorkers())
	chunkMax := make([]uint32, len(chunks))
	_ = parallel.ForEachIndex(len(chunks), func(ci int) error {
		c := chunks[ci]
		var m uint32
		for i := c.Start; i < c.End; i++ {
			s, d := edges.At(i)
			if s > m {
				m = s
			}
			if d > m {
				m = d
			}
		}
		chunkMax[ci] = m
		return nil
	})

	var globalMax uint32
	for _, m := range chunkMax {
		if m > globalMax {
			globalMax = m
		}
	}
	return globalMax + 1
}

// buildCSR runs the four-phase histogram/prefix-sum/scatter/layout
// pipeline for a single orientation.
func buildCSR(edges EdgeIter, nodeCount uint32, orientation Orientation, layout Layout) (csrArrays, error) {
	// Phase 1: degree histogram via relaxed atomic fetch-add.
	hist := make([]nodeid.AtomicU64, nodeCount)
	if err := parallel.For(edges.Len(), func(c parallel.Chunk) error {
		for i := c.Start; i < c.End; i++ {
			src, dst := edges.At(i)
			if src >= nodeCount || dst >= nodeCount {
				return fmt.Errorf("csr: edge %d (%d -> %d): %w", i, src, dst, ErrNodeIDOutOfRange)
			}
			switch orientation {
			case DirectedOut:
				hist[src].Add(1)
			case DirectedIn:
				hist[dst].Add(1)
			case Undirected:
				hist[src].Add(1)
				hist[dst].Add(1)
			}
		}
		return nil
	}); err != nil {
		return csrArrays{}, err
	}

	// Phase 2: exclusive prefix sum over the histogram.
	offsets, err := safeMakeUint64(int(nodeCount) + 1)
	if err != nil {
		return csrArrays{}, err
	}
	for i := range hist {
		offsets[i] = hist[i].Load()
	}
	total := prefixsum.ExclusiveInPlace(offsets[:nodeCount])
	offsets[nodeCount] = total

	// Phase 3: concurrent scatter via per-node atomic write cursors cloned
	// from offsets.
	targets, err := safeMakeUint32(int(total))
	if err != nil {
		return csrArrays{}, err
	}
	cursors := make([]nodeid.AtomicU64, nodeCount)
	for i := range cursors {
		cursors[i].Store(offsets[i])
	}
	if err := parallel.For(edges.Len(), func(c parallel.Chunk) error {
		for i := c.Start; i < c.End; i++ {
			src, dst := edges.At(i)
			switch orientation {
			case DirectedOut:
				slot := cursors[src].Add(1) - 1
				targets[slot] = dst
			case DirectedIn:
				slot := cursors[dst].Add(1) - 1
				targets[slot] = src
			case Undirected:
				slot := cursors[src].Add(1) - 1
				targets[slot] = dst
				slot2 := cursors[dst].Add(1) - 1
				targets[slot2] = src
			}
		}
		return nil
	}); err != nil {
		return csrArrays{}, err
	}

	arr := csrArrays{offsets: offsets, targets: targets}

	// Phase 4: finalize layout.
	switch layout {
	case Unsorted:
		// Nothing further to do.
	case Sorted:
		sortAdjacency(arr, nodeCount)
	case Deduplicated:
		sortAdjacency(arr, nodeCount)
		arr, err = deduplicateAdjacency(arr, nodeCount)
		if err != nil {
			return csrArrays{}, err
		}
	}

	return arr, nil
}

// sortAdjacency sorts each node's adjacency slice ascending by target ID,
// chunked across nodes in parallel.
func sortAdjacency(arr csrArrays, nodeCount uint32) {
	_ = parallel.ForEachIndex(int(nodeCount), func(ui int) error {
		u := uint32(ui)
		lo, hi := arr.offsets[u], arr.offsets[u+1]
		if hi <= lo {
			return nil
		}
		adj := arr.targets[lo:hi]
		sort.Slice(adj, func(i, j int) bool { return adj[i] < adj[j] })
		return nil
	})
}

// deduplicateAdjacency collapses adjacent duplicates and removes
// self-loops from each (already sorted) adjacency slice, then rebuilds
// offsets via a second prefix sum over the new per-node lengths.
func deduplicateAdjacency(arr csrArrays, nodeCount uint32) (csrArrays, error) {
	newLen := make([]uint64, nodeCount)

	_ = parallel.ForEachIndex(int(nodeCount), func(ui int) error {
		u := uint32(ui)
		lo, hi := arr.offsets[u], arr.offsets[u+1]
		if hi <= lo {
			return nil
		}
		adj := arr.targets[lo:hi]
		write := 0
		for read := 0; read < len(adj); read++ {
			v := adj[read]
			if v == u {
				continue // drop self-loop
			}
			if write > 0 && adj[write-1] == v {
				continue // drop duplicate
			}
			adj[write] = v
			write++
		}
		newLen[u] = uint64(write)
		return nil
	})

	newOffsets, err := safeMakeUint64(int(nodeCount) + 1)
	if err != nil {
		return csrArrays{}, err
	}
	copy(newOffsets[:nodeCount], newLen)
	total := prefixsum.ExclusiveInPlace(newOffsets[:nodeCount])
	newOffsets[nodeCount] = total

	newTargets, err := safeMakeUint32(int(total))
	if err != nil {
		return csrArrays{}, err
	}
	_ = parallel.ForEachIndex(int(nodeCount), func(ui int) error {
		u := uint32(ui)
		n := newLen[u]
		if n == 0 {
			return nil
		}
		oldLo := arr.offsets[u]
		newLo := newOffsets[u]
		copy(newTargets[newLo:newLo+n], arr.targets[oldLo:oldLo+n])
		return nil
	})

	return csrArrays{offsets: newOffsets, targets: newTargets}, nil
}

// safeMakeUint64 allocates a []uint64 of length n, converting an
// out-of-range makeslice panic into ErrAllocation.
func safeMakeUint64(n int) (s []uint64, err error) {
	defer func() {
		if r := recover(); r != nil {
			s, err = nil, fmt.Errorf("csr: %v: %w", r, ErrAllocation)
		}
	}()
	return make([]uint64, n), nil
}

// safeMakeUint32 is safeMakeUint64's counterpart for the targets array.
func safeMakeUint32(n int) (s []uint32, err error) {
	defer func() {
		if r := recover(); r != nil {
			s, err = nil, fmt.Errorf("csr: %v: %w", r, ErrAllocation)
		}
	}()
	return make([]uint32, n), nil
}
