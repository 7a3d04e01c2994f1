package csr_test

import (
	"errors"
	"testing"

	"github.com/csrgraph/csrgraph/csr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func edges(pairs ...[2]uint32) csr.SliceEdges {
	return csr.SliceEdges(pairs)
}

// S1: tiny directed CSR.
func TestBuildDirectedTinyScenario(t *testing.T) {
	e := edges([2]uint32{0, 1}, [2]uint32{0, 2}, [2]uint32{1, 2}, [2]uint32{1, 3}, [2]uint32{2, 3})

	g, err := csr.BuildDirected(e, csr.WithLayout(csr.Sorted))
	require.NoError(t, err)

	assert.EqualValues(t, 4, g.NodeCount())
	assert.Equal(t, 5, g.EdgeCount())
	assert.Equal(t, 2, g.OutDegree(1))
	assert.Equal(t, 1, g.InDegree(1))

	out, release := g.OutNeighbors(1)
	assert.Equal(t, []uint32{2, 3}, out)
	release()

	in, release2 := g.InNeighbors(1)
	assert.Equal(t, []uint32{0}, in)
	release2()
}

// S2: tiny undirected CSR.
func TestBuildUndirectedTinyScenario(t *testing.T) {
	e := edges([2]uint32{0, 1}, [2]uint32{0, 2}, [2]uint32{1, 2}, [2]uint32{1, 3}, [2]uint32{2, 3})

	g, err := csr.BuildUndirected(e, csr.WithLayout(csr.Sorted))
	require.NoError(t, err)

	assert.Equal(t, 3, g.Degree(1))
	assert.Equal(t, 5, g.EdgeCount())

	n, release := g.Neighbors(1)
	assert.Equal(t, []uint32{0, 2, 3}, n)
	release()
}

// S6: Deduplicated layout drops self-loops and parallel edges.
func TestBuildUndirectedDeduplicatedScenario(t *testing.T) {
	e := edges([2]uint32{0, 0}, [2]uint32{0, 1}, [2]uint32{0, 1}, [2]uint32{1, 0})

	g, err := csr.BuildUndirected(e, csr.WithLayout(csr.Deduplicated))
	require.NoError(t, err)

	n0 := g.CopyNeighbors(0)
	n1 := g.CopyNeighbors(1)
	assert.Equal(t, []uint32{1}, n0)
	assert.Equal(t, []uint32{0}, n1)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestBuildEmptyEdgeStreamIsValid(t *testing.T) {
	g, err := csr.BuildDirected(csr.SliceEdges(nil), csr.WithNodeCount(5))
	require.NoError(t, err)
	assert.EqualValues(t, 5, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
	for u := uint32(0); u < 5; u++ {
		assert.Equal(t, 0, g.OutDegree(u))
	}
}

func TestBuildRejectsOutOfRangeNodeID(t *testing.T) {
	e := edges([2]uint32{0, 9})
	_, err := csr.BuildDirected(e, csr.WithNodeCount(3))
	require.Error(t, err)
	assert.True(t, errors.Is(err, csr.ErrNodeIDOutOfRange))
}

func TestBuildRejectsNilEdges(t *testing.T) {
	_, err := csr.BuildDirected(nil)
	assert.ErrorIs(t, err, csr.ErrNilEdges)

	_, err = csr.BuildUndirected(nil)
	assert.ErrorIs(t, err, csr.ErrNilEdges)
}

func TestBuildInfersNodeCountFromMaxID(t *testing.T) {
	e := edges([2]uint32{0, 1}, [2]uint32{4, 2})
	g, err := csr.BuildDirected(e)
	require.NoError(t, err)
	assert.EqualValues(t, 5, g.NodeCount())
}

// Offset-array invariants, checked across layouts.
func TestOffsetsInvariantsHoldForEveryLayout(t *testing.T) {
	e := edges(
		[2]uint32{0, 1}, [2]uint32{0, 2}, [2]uint32{1, 2},
		[2]uint32{1, 3}, [2]uint32{2, 3}, [2]uint32{3, 0},
	)

	for _, layout := range []csr.Layout{csr.Unsorted, csr.Sorted, csr.Deduplicated} {
		g, err := csr.BuildDirected(e, csr.WithLayout(layout))
		require.NoError(t, err)

		n := g.NodeCount()
		total := 0
		for u := uint32(0); u < n; u++ {
			d := g.OutDegree(u)
			assert.GreaterOrEqual(t, d, 0)
			total += d
		}
		assert.Equal(t, g.EdgeCount(), total, "layout=%v", layout)
	}
}

func TestBuildSortedIsDeterministicAcrossRuns(t *testing.T) {
	e := edges(
		[2]uint32{3, 1}, [2]uint32{0, 5}, [2]uint32{2, 2}, [2]uint32{5, 0},
		[2]uint32{1, 3}, [2]uint32{4, 1}, [2]uint32{0, 0}, [2]uint32{5, 5},
	)

	g1, err := csr.BuildDirected(e, csr.WithLayout(csr.Sorted), csr.WithNodeCount(6))
	require.NoError(t, err)
	g2, err := csr.BuildDirected(e, csr.WithLayout(csr.Sorted), csr.WithNodeCount(6))
	require.NoError(t, err)

	for u := uint32(0); u < 6; u++ {
		assert.Equal(t, g1.CopyOutNeighbors(u), g2.CopyOutNeighbors(u), "node %d", u)
	}
}
